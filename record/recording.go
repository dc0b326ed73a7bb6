package record

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggchart"
)

// Recording is an immutable sequence of drawing commands.
// Obtain one from Canvas.Finish.
type Recording struct {
	commands []Command
}

// Len returns the number of commands in the recording.
func (r *Recording) Len() int {
	return len(r.commands)
}

// At returns the i-th command. It panics if i is out of range, mirroring
// slice indexing.
func (r *Recording) At(i int) Command {
	return r.commands[i]
}

// Commands returns a copy of the command list.
func (r *Recording) Commands() []Command {
	cp := make([]Command, len(r.commands))
	copy(cp, r.commands)
	return cp
}

// Count returns how many commands of the given type were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// First returns the first command of the given type, or false if none was
// recorded.
func (r *Recording) First(t CommandType) (Command, bool) {
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			return cmd, true
		}
	}
	return nil, false
}

// String returns a compact listing of the command types, one per line.
// Useful in test failure messages.
func (r *Recording) String() string {
	var sb strings.Builder
	for i, cmd := range r.commands {
		fmt.Fprintf(&sb, "%3d %s\n", i, cmd.Type())
	}
	return sb.String()
}

// Playback replays the recording onto another canvas in order.
// It stops at the first paint error and returns it.
func (r *Recording) Playback(c ggchart.Canvas) error {
	for i, cmd := range r.commands {
		var err error
		switch cmd := cmd.(type) {
		case Save:
			c.Save()
		case Restore:
			c.Restore()
		case ClipRect:
			c.ClipRect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case MoveTo:
			c.MoveTo(cmd.X, cmd.Y)
		case LineTo:
			c.LineTo(cmd.X, cmd.Y)
		case ClearPath:
			c.ClearPath()
		case DrawCircle:
			c.DrawCircle(cmd.X, cmd.Y, cmd.R)
		case SetFillBrush:
			c.SetFillBrush(cmd.Brush)
		case SetStrokeBrush:
			c.SetStrokeBrush(cmd.Brush)
		case SetLineWidth:
			c.SetLineWidth(cmd.Width)
		case SetLineJoin:
			c.SetLineJoin(cmd.Join)
		case SetDash:
			c.SetDash(cmd.Lengths...)
		case ClearDash:
			c.ClearDash()
		case Fill:
			err = c.Fill()
		case FillPreserve:
			err = c.FillPreserve()
		case Stroke:
			err = c.Stroke()
		default:
			err = fmt.Errorf("record: unknown command %T", cmd)
		}
		if err != nil {
			return fmt.Errorf("record: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
