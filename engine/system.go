package engine

// System is per-frame behaviour driven by the Scheduler. Implementations read
// the board through the frame and queue changes on frame.Commands; they may
// keep their own state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
