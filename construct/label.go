package construct

import "fmt"

// The label cursor walks A, B, ..., Z, A1, B1, ..., Z1, A2, ...
type LabelCursor struct {
	Letter byte
	Number int
}

var InitialCursor = LabelCursor{Letter: 'A'}

// The label the cursor currently points at.
func (c LabelCursor) String() string {
	if c.Number == 0 {
		return string(c.Letter)
	}
	return fmt.Sprintf("%c%d", c.Letter, c.Number)
}

// Next returns the current label together with the advanced cursor. The
// receiver is not modified, so a caller can stage several allocations and
// throw them away without consuming anything.
func (c LabelCursor) Next() (string, LabelCursor) {
	label := c.String()
	if c.Letter >= 'Z' {
		c.Letter = 'A'
		c.Number++
	} else {
		c.Letter++
	}
	return label, c
}
