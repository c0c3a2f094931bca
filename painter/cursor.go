package painter

// Direction is the way a Cursor is currently moving
type Direction int8

const (
	// Ascending moves the cursor towards the last palette colour
	Ascending Direction = iota
	// Descending moves the cursor back towards the first palette colour
	Descending
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Cursor walks the positions 0..steps and back again, one position per
// Advance. The direction flips as soon as an endpoint is reached, so no
// position is repeated at the turning points and the waveform has a
// period of exactly 2*steps.
//
// A Cursor is not safe for concurrent use; Painter guards its cursors.
type Cursor struct {
	position  int
	steps     int
	direction Direction
}

// NewCursor returns a cursor at position 0, ascending. steps below 1
// are treated as 1.
func NewCursor(steps int) Cursor {
	if steps < 1 {
		steps = 1
	}
	return Cursor{steps: steps}
}

// Position returns the position the next Advance will report
func (c *Cursor) Position() int { return c.position }

// Direction returns the current direction of travel
func (c *Cursor) Direction() Direction { return c.direction }

// Steps returns the number of ticks between the two endpoints
func (c *Cursor) Steps() int { return c.steps }

// Advance returns the current position and moves the cursor one tick
func (c *Cursor) Advance() int {
	if c.steps < 1 {
		*c = NewCursor(c.steps)
	}
	pos := c.position

	if c.direction == Ascending {
		c.position++
	} else {
		c.position--
	}

	switch {
	case c.position >= c.steps:
		c.position = c.steps
		c.direction = Descending
	case c.position <= 0:
		c.position = 0
		c.direction = Ascending
	}
	return pos
}
