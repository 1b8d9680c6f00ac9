// Package input handles key presses: normalizing key combinations and
// dispatching presses to the processors bound to them.
package input

// Help maps input identifiers to explanations of what they do.
type Help = map[string]string

// SimpleInputProcessor can process the input it is configured for and provide
// help information for that configuration. It can also "capture" input to
// ensure its precedence over other processors.
type SimpleInputProcessor interface {

	// CapturesInput returns whether this processor "captures" input, i.E. whether
	// it ought to take priority in processing over other processors.
	CapturesInput() bool

	// ProcessInput attempts to process the provided input.
	// Returns whether the provided input "applied", i.E. the processor performed
	// an action based on the input. Applied input must not be handled further.
	ProcessInput(key Key) bool

	// GetHelp returns the input help map for this processor.
	GetHelp() Help
}
