// Package script stores sequences of canvas actions as YAML so a construction
// can be replayed, rendered, or checked into a test.
package script

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/thiagovscoelho/geometrycanvas/construct"
	"gopkg.in/yaml.v3"
)

// A Step is one click, or a clear. Exactly one of Tool and Clear is set.
type Step struct {
	Tool  string  `yaml:"tool,omitempty"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
	Clear bool    `yaml:"clear,omitempty"`
}

type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Anything actions can be replayed onto. *geometrycanvas.Canvas is one.
type Applier interface {
	ApplyAction(tool construct.Tool, x, y float64) error
	Clear()
}

func Parse(r io.Reader) (*Script, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var s Script
	if err := decoder.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty script")
		}
		return nil, errors.Wrap(err, "parsing script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading script")
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Steps are numbered from 1 in errors.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		switch {
		case step.Clear && step.Tool != "":
			return errors.Errorf("step %d: tool %q given with clear", i+1, step.Tool)
		case step.Clear:
		case step.Tool == "":
			return errors.Errorf("step %d: neither tool nor clear given", i+1)
		default:
			if _, err := construct.ParseTool(step.Tool); err != nil {
				return errors.Wrapf(err, "step %d", i+1)
			}
		}
	}
	return nil
}

func (s *Script) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encoding script")
	}
	return errors.Wrap(encoder.Close(), "encoding script")
}

// Replay every step onto a. A rejected click is logged and skipped, the same
// way an interactive user would just try again. Any other failure stops the
// replay.
func (s *Script) Replay(a Applier, logger *log.Logger) (rejected int, err error) {
	for i, step := range s.Steps {
		if step.Clear {
			a.Clear()
			continue
		}
		tool, err := construct.ParseTool(step.Tool)
		if err != nil {
			return rejected, errors.Wrapf(err, "step %d", i+1)
		}
		err = a.ApplyAction(tool, step.X, step.Y)
		if errors.Is(err, construct.ErrRejected) {
			rejected++
			if logger != nil {
				logger.Printf("step %d: %v", i+1, err)
			}
			continue
		}
		if err != nil {
			return rejected, errors.Wrapf(err, "step %d", i+1)
		}
	}
	return rejected, nil
}
