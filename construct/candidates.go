package construct

import (
	"sort"

	"github.com/thiagovscoelho/geometrycanvas/geom"
)

// An intersection that may become a point.
type candidate struct {
	at   geom.Vec
	kind Kind
}

// Intersections of a new segment with everything already in the store.
func (c *Controller) segmentCandidates(segment geom.Segment) []candidate {
	var result []candidate
	for _, l := range c.store.lines {
		if p, ok := geom.SegmentSegment(segment, c.store.Segment(l)); ok {
			result = append(result, candidate{p, KindLineLine})
		}
	}
	for _, circle := range c.store.circles {
		for _, p := range geom.SegmentCircle(segment, c.store.Shape(circle)) {
			result = append(result, candidate{p, KindLineCircle})
		}
	}
	return result
}

// Intersections of a new circle with everything already in the store.
func (c *Controller) circleCandidates(shape geom.Circle) []candidate {
	var result []candidate
	for _, circle := range c.store.circles {
		for _, p := range geom.CircleCircle(shape, c.store.Shape(circle)) {
			result = append(result, candidate{p, KindCircleCircle})
		}
	}
	for _, l := range c.store.lines {
		for _, p := range geom.SegmentCircle(c.store.Segment(l), shape) {
			result = append(result, candidate{p, KindLineCircle})
		}
	}
	return result
}

// Turn candidates into points in the batch. Candidates are visited left to
// right, then top to bottom, so labels come out in that order. A candidate
// rejected by keep, or sitting on top of a point that already exists (in the
// store or earlier in this batch), is dropped. A dropped candidate is not
// linked to the point it collided with.
func (c *Controller) addIntersections(b *Batch, candidates []candidate, keep func(geom.Vec) bool) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return geom.Less(candidates[i].at, candidates[j].at)
	})
	for _, cand := range candidates {
		if keep != nil && !keep(cand.at) {
			continue
		}
		if b.PointExists(cand.at, c.opts.DedupTolerance) {
			continue
		}
		b.AddPoint(cand.at, cand.kind)
	}
}
