// Package record captures canvas drawing operations as typed commands.
//
// record.Canvas implements ggchart.Canvas but generates commands instead of
// pixels. Calling Finish yields an immutable Recording that can be
// inspected command by command or replayed onto any other ggchart.Canvas.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability rather than a binary serialization
// format.
//
// Recording a draw and replaying it decouples the renderer's paint-state
// mutations from the surface that finally executes them: a series can be
// recorded once and played back onto several backends, and tests can assert
// on the exact command stream a renderer produces.
//
// # Example
//
//	rec := record.New()
//	renderer.Draw(rec, points, nil, style)
//	r := rec.Finish()
//
//	if n := r.Count(record.CmdStroke); n != 1 {
//	    // ...
//	}
//	_ = r.Playback(otherCanvas)
package record
