package construct

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/thiagovscoelho/geometrycanvas/dbg"
)

func (c *Controller) tracef(format string, args ...interface{}) {
	if c.opts.Logger == nil {
		return
	}
	c.opts.Logger.Printf(format, args...)
}

// Commit a batch, tracing what it adds.
func (c *Controller) commit(b *Batch, what string) {
	if c.opts.Logger != nil {
		points := b.Points()
		var labels []string
		for _, p := range points {
			name := aurora.Cyan(p.Label)
			if p.Kind != KindNone {
				name = aurora.Green(p.Label)
			}
			labels = append(labels, name.String())
		}
		c.tracef("%s %s: +%d points [%s] +%d lines +%d circles",
			dbg.Name(b), what, len(points), strings.Join(labels, " "), len(b.Lines()), len(b.Circles()))
	}
	c.store.Commit(b)
}
