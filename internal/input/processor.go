package input

// SimpleInputProcessor processes the input it is configured for and provides
// help for that configuration.
type SimpleInputProcessor interface {

	// CapturesInput returns whether this processor takes priority over other
	// processors, e.g. while it holds a partial key sequence or while it is an
	// overlay such as the go-to-year prompt, which takes all input.
	CapturesInput() bool

	// ProcessInput attempts to process the provided input.
	// Returns whether the provided input "applied", i.E. the processor performed
	// an action based on the input.
	ProcessInput(key Key) bool

	// GetHelp returns the input help map for this processor.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid with other processors (e.g. the prompt over the timeline), which
// are removed one by one from the top or down to a given index.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay applies an overlay to this processor.
	// The returned index can later be used to remove all overlays down to and
	// including this one.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay from this processor.
	PopModalOverlay() error

	// PopModalOverlays pops all overlays down to and including the one at the
	// specified index.
	PopModalOverlays(index uint)
}
