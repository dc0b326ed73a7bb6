package record

import "github.com/gogpu/ggchart"

// Canvas records drawing operations as commands.
// It mirrors the ggchart.Canvas surface but generates commands instead of
// pixels. Use Finish to obtain an immutable Recording.
//
// The Canvas is not safe for concurrent use.
type Canvas struct {
	commands []Command
}

// Canvas implements ggchart.Canvas.
var _ ggchart.Canvas = (*Canvas)(nil)

// New creates an empty recording canvas.
func New() *Canvas {
	return &Canvas{commands: make([]Command, 0, 64)}
}

// Save records a Save command.
func (c *Canvas) Save() {
	c.commands = append(c.commands, Save{})
}

// Restore records a Restore command.
func (c *Canvas) Restore() {
	c.commands = append(c.commands, Restore{})
}

// ClipRect records a ClipRect command.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	c.commands = append(c.commands, ClipRect{X: x, Y: y, W: w, H: h})
}

// MoveTo records a MoveTo command.
func (c *Canvas) MoveTo(x, y float64) {
	c.commands = append(c.commands, MoveTo{X: x, Y: y})
}

// LineTo records a LineTo command.
func (c *Canvas) LineTo(x, y float64) {
	c.commands = append(c.commands, LineTo{X: x, Y: y})
}

// ClearPath records a ClearPath command.
func (c *Canvas) ClearPath() {
	c.commands = append(c.commands, ClearPath{})
}

// DrawCircle records a DrawCircle command.
func (c *Canvas) DrawCircle(x, y, r float64) {
	c.commands = append(c.commands, DrawCircle{X: x, Y: y, R: r})
}

// SetFillBrush records a SetFillBrush command.
func (c *Canvas) SetFillBrush(b ggchart.Brush) {
	c.commands = append(c.commands, SetFillBrush{Brush: b})
}

// SetStrokeBrush records a SetStrokeBrush command.
func (c *Canvas) SetStrokeBrush(b ggchart.Brush) {
	c.commands = append(c.commands, SetStrokeBrush{Brush: b})
}

// SetLineWidth records a SetLineWidth command.
func (c *Canvas) SetLineWidth(w float64) {
	c.commands = append(c.commands, SetLineWidth{Width: w})
}

// SetLineJoin records a SetLineJoin command.
func (c *Canvas) SetLineJoin(j ggchart.LineJoin) {
	c.commands = append(c.commands, SetLineJoin{Join: j})
}

// SetDash records a SetDash command. The lengths are copied so the caller
// may reuse its slice.
func (c *Canvas) SetDash(lengths ...float64) {
	cp := make([]float64, len(lengths))
	copy(cp, lengths)
	c.commands = append(c.commands, SetDash{Lengths: cp})
}

// ClearDash records a ClearDash command.
func (c *Canvas) ClearDash() {
	c.commands = append(c.commands, ClearDash{})
}

// Fill records a Fill command. It always succeeds.
func (c *Canvas) Fill() error {
	c.commands = append(c.commands, Fill{})
	return nil
}

// FillPreserve records a FillPreserve command. It always succeeds.
func (c *Canvas) FillPreserve() error {
	c.commands = append(c.commands, FillPreserve{})
	return nil
}

// Stroke records a Stroke command. It always succeeds.
func (c *Canvas) Stroke() error {
	c.commands = append(c.commands, Stroke{})
	return nil
}

// Len returns the number of commands recorded so far.
func (c *Canvas) Len() int {
	return len(c.commands)
}

// Reset discards all recorded commands, keeping the allocated capacity.
func (c *Canvas) Reset() {
	c.commands = c.commands[:0]
}

// Finish returns an immutable Recording of the commands captured so far.
// The canvas keeps recording; later commands do not show up in the
// returned Recording.
func (c *Canvas) Finish() *Recording {
	cp := make([]Command, len(c.commands))
	copy(cp, c.commands)
	return &Recording{commands: cp}
}
