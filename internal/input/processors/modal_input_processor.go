package processors

import (
	"fmt"

	"github.com/ja-he/annales/internal/input"
)

// ModalInputProcessor is an input processor that can take any number of input
// overlays over its base input processor.
// It delegates all processing to the topmost overlay, or to the base if there
// is none.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base input.SimpleInputProcessor

	modalOverlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{
		base:          base,
		modalOverlays: make([]input.SimpleInputProcessor, 0),
	}
}

// CapturesInput returns whether the applicable processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicable().CapturesInput()
}

// ProcessInput delegates the input to the applicable processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.applicable().ProcessInput(key)
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the overlay's index, by which in the future, all overlays down
// to and including this overlay can be removed.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	p.modalOverlays = append(p.modalOverlays, overlay)
	return uint(len(p.modalOverlays) - 1)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.modalOverlays) < 1 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.modalOverlays = p.modalOverlays[:len(p.modalOverlays)-1]
	return nil
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.modalOverlays)) {
		p.modalOverlays = p.modalOverlays[:index]
	}
}

// HasOverlay returns whether any overlay is applied.
func (p *ModalInputProcessor) HasOverlay() bool {
	return len(p.modalOverlays) > 0
}

func (p *ModalInputProcessor) applicable() input.SimpleInputProcessor {
	if len(p.modalOverlays) > 0 {
		return p.modalOverlays[len(p.modalOverlays)-1]
	}
	return p.base
}

// GetHelp returns the input help map of the applicable processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.applicable().GetHelp()
}
