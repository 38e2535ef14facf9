package session

import (
	"github.com/jonwraymond/vizexec/payload"
	"github.com/jonwraymond/vizexec/render"
)

// State is the transient state of one interactive session.
type State struct {
	// Language is the selected language.
	Language payload.Language `json:"language"`

	// OutputMode is the selected output mode.
	OutputMode payload.OutputMode `json:"output_mode"`

	// Code is the user's source.
	Code string `json:"code"`

	// Visualization is the artifact returned by the last successful submission.
	Visualization string `json:"visualization,omitempty"`

	// Error is the user-visible message of the last failed submission.
	Error string `json:"error,omitempty"`

	// Busy is true while a submission is in flight.
	Busy bool `json:"busy"`

	// Submission numbers the submission that produced this state.
	// Zero means nothing has been submitted.
	Submission uint64 `json:"submission"`
}

// NewState returns a state with the default selections and no code.
func NewState() State {
	return State{
		Language:   payload.DefaultLanguage,
		OutputMode: payload.DefaultOutputMode,
	}
}

// Request returns the generation request described by the state.
func (s State) Request() payload.Request {
	return payload.Request{
		Language:   s.Language,
		OutputMode: s.OutputMode,
		Code:       s.Code,
	}
}

// Begin returns a copy of s prepared for a new submission: the previous
// result and error are cleared and Busy is set.
func (s State) Begin() State {
	s.Visualization = ""
	s.Error = ""
	s.Busy = true
	return s
}

// Render returns the display instruction for the current visualization.
// It reports false when there is nothing to display.
func (s State) Render() (render.Instruction, bool) {
	return render.Render(s.Visualization)
}
