package app

// Message types for the bubbletea app.

// ClearStatusMsg clears the status line if it still shows the message with
// the same sequence number.
type ClearStatusMsg struct {
	Seq int
}
