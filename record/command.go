package record

import "github.com/gogpu/ggchart"

// CommandType identifies the type of a command.
// Each command type corresponds to one ggchart.Canvas method.
type CommandType uint8

const (
	// State commands
	CmdSave     CommandType = iota // Save canvas state
	CmdRestore                     // Restore canvas state
	CmdClipRect                    // Intersect clip with a rectangle

	// Path commands
	CmdMoveTo     // Start a new subpath
	CmdLineTo     // Add a straight segment
	CmdClearPath  // Discard the current path
	CmdDrawCircle // Add a circle to the path

	// Style commands
	CmdSetFillBrush   // Set fill brush
	CmdSetStrokeBrush // Set stroke brush
	CmdSetLineWidth   // Set stroke line width
	CmdSetLineJoin    // Set stroke line join
	CmdSetDash        // Set dash pattern
	CmdClearDash      // Clear dash pattern

	// Paint commands
	CmdFill         // Fill the current path
	CmdFillPreserve // Fill, keeping the path
	CmdStroke       // Stroke the current path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdClipRect:       "ClipRect",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdClearPath:      "ClearPath",
	CmdDrawCircle:     "DrawCircle",
	CmdSetFillBrush:   "SetFillBrush",
	CmdSetStrokeBrush: "SetStrokeBrush",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetLineJoin:    "SetLineJoin",
	CmdSetDash:        "SetDash",
	CmdClearDash:      "ClearDash",
	CmdFill:           "Fill",
	CmdFillPreserve:   "FillPreserve",
	CmdStroke:         "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual drawing operations that can be inspected
// and replayed onto another canvas.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Save saves the canvas state.
type Save struct{}

// Restore restores the canvas state.
type Restore struct{}

// ClipRect intersects the clip region with a rectangle.
type ClipRect struct {
	X, Y, W, H float64
}

// MoveTo starts a new subpath.
type MoveTo struct {
	X, Y float64
}

// LineTo adds a straight segment.
type LineTo struct {
	X, Y float64
}

// ClearPath discards the current path.
type ClearPath struct{}

// DrawCircle adds a circle to the current path.
type DrawCircle struct {
	X, Y, R float64
}

// SetFillBrush sets the fill brush.
type SetFillBrush struct {
	Brush ggchart.Brush
}

// SetStrokeBrush sets the stroke brush.
type SetStrokeBrush struct {
	Brush ggchart.Brush
}

// SetLineWidth sets the stroke width.
type SetLineWidth struct {
	Width float64
}

// SetLineJoin sets the stroke join style.
type SetLineJoin struct {
	Join ggchart.LineJoin
}

// SetDash sets the dash pattern.
type SetDash struct {
	Lengths []float64
}

// ClearDash clears the dash pattern.
type ClearDash struct{}

// Fill fills the current path.
type Fill struct{}

// FillPreserve fills the current path, keeping it.
type FillPreserve struct{}

// Stroke strokes the current path.
type Stroke struct{}

func (Save) Type() CommandType           { return CmdSave }
func (Restore) Type() CommandType        { return CmdRestore }
func (ClipRect) Type() CommandType       { return CmdClipRect }
func (MoveTo) Type() CommandType         { return CmdMoveTo }
func (LineTo) Type() CommandType         { return CmdLineTo }
func (ClearPath) Type() CommandType      { return CmdClearPath }
func (DrawCircle) Type() CommandType     { return CmdDrawCircle }
func (SetFillBrush) Type() CommandType   { return CmdSetFillBrush }
func (SetStrokeBrush) Type() CommandType { return CmdSetStrokeBrush }
func (SetLineWidth) Type() CommandType   { return CmdSetLineWidth }
func (SetLineJoin) Type() CommandType    { return CmdSetLineJoin }
func (SetDash) Type() CommandType        { return CmdSetDash }
func (ClearDash) Type() CommandType      { return CmdClearDash }
func (Fill) Type() CommandType           { return CmdFill }
func (FillPreserve) Type() CommandType   { return CmdFillPreserve }
func (Stroke) Type() CommandType         { return CmdStroke }
