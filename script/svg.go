package script

import (
	"io"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"github.com/thiagovscoelho/geometrycanvas/construct"
)

// FromSVG turns the <line> and <circle> elements of a drawing into the clicks
// that would construct it. Elements are taken in document order and anything
// else is ignored. Transforms are not applied.
func FromSVG(r io.Reader) (*Script, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	s := &Script{Name: root.Attributes["id"]}
	var walkErr error
	walk(root, func(el *svgparser.Element) bool {
		switch el.Name {
		case "line":
			walkErr = s.addLine(el)
		case "circle":
			walkErr = s.addCircle(el)
		}
		return walkErr == nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return s, nil
}

// Depth first, in document order. Stops once visit returns false.
func walk(el *svgparser.Element, visit func(*svgparser.Element) bool) bool {
	if !visit(el) {
		return false
	}
	for _, child := range el.Children {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

func (s *Script) click(tool construct.Tool, x, y float64) {
	s.Steps = append(s.Steps, Step{Tool: tool.String(), X: x, Y: y})
}

func (s *Script) addLine(el *svgparser.Element) error {
	v, err := attrs(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	s.click(construct.ToolLine, v[0], v[1])
	s.click(construct.ToolLine, v[2], v[3])
	return nil
}

// A circle needs its center and a rim point to exist first. Each is dropped
// by starting a line there and abandoning it when the tool changes.
func (s *Script) addCircle(el *svgparser.Element) error {
	v, err := attrs(el, "cx", "cy", "r")
	if err != nil {
		return err
	}
	cx, cy, r := v[0], v[1], v[2]
	if r <= 0 {
		return errors.Errorf("circle at (%g, %g): radius %g", cx, cy, r)
	}
	s.click(construct.ToolLine, cx, cy)
	s.click(construct.ToolCircle, cx, cy)
	s.click(construct.ToolLine, cx+r, cy)
	s.click(construct.ToolCircle, cx, cy)
	s.click(construct.ToolCircle, cx+r, cy)
	return nil
}

// Missing attributes count as zero, as they do in SVG.
func attrs(el *svgparser.Element, names ...string) ([]float64, error) {
	result := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "<%s> attribute %s", el.Name, name)
		}
		result[i] = v
	}
	return result, nil
}
