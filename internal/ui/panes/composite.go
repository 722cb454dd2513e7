package panes

import (
	"math"

	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// Composite is a generic wrapper pane without any rendering logic of its
// own. It draws its drawables in order and passes input to the focussed one
// of its focussables.
type Composite struct {
	ui.BasePane

	drawables   []ui.Pane
	focussables []ui.Pane

	FocussedPane ui.Pane
}

// Draw draws this pane by drawing all its subpanes.
// Absent subpanes this draws nothing.
func (p *Composite) Draw() {
	for _, drawable := range p.drawables {
		if drawable.IsVisible() {
			drawable.Draw()
		}
	}
}

// Undraw calls undraw on each drawable in the composite.
func (p *Composite) Undraw() {
	for _, drawable := range p.drawables {
		drawable.Undraw()
	}
}

// Dimensions gives the bounding box of all subpanes.
func (p *Composite) Dimensions() (x, y, w, h int) {
	if len(p.drawables) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := 0, 0
	for _, drawable := range p.drawables {
		dx, dy, dw, dh := drawable.Dimensions()
		minX = min(minX, dx)
		minY = min(minY, dy)
		maxX = max(maxX, dx+dw)
		maxY = max(maxY, dy+dh)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *Composite) GetPositionInfo(x, y int) ui.PositionInfo {
	for i := len(p.drawables) - 1; i >= 0; i-- {
		pane := p.drawables[i]
		if pane.IsVisible() && util.NewRect(pane.Dimensions()).Contains(x, y) {
			return pane.GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

// FocusNext focusses the next visible focussable, wrapping around.
func (p *Composite) FocusNext() { p.cycleFocus(1) }

// FocusPrev focusses the previous visible focussable, wrapping around.
func (p *Composite) FocusPrev() { p.cycleFocus(-1) }

func (p *Composite) cycleFocus(step int) {
	n := len(p.focussables)
	current := 0
	for i := range p.focussables {
		if p.focussables[i] == p.FocussedPane {
			current = i
		}
	}
	for i := 1; i < n; i++ {
		candidate := p.focussables[((current+i*step)%n+n)%n]
		if candidate.IsVisible() {
			p.FocussedPane = candidate
			return
		}
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *Composite) CapturesInput() bool {
	childCaptures := p.FocussedPane != nil && p.FocussedPane.CapturesInput()
	selfCaptures := p.InputProcessor != nil && p.InputProcessor.CapturesInput()
	return childCaptures || selfCaptures
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// The focussed subpane gets the first try unless this pane captures input.
func (p *Composite) ProcessInput(key input.Key) bool {
	switch {
	case p.InputProcessor != nil && p.InputProcessor.CapturesInput():
		return p.InputProcessor.ProcessInput(key)
	case p.FocussedPane != nil && p.FocussedPane.CapturesInput():
		return p.FocussedPane.ProcessInput(key)
	default:
		return (p.FocussedPane != nil && p.FocussedPane.ProcessInput(key)) ||
			(p.InputProcessor != nil && p.InputProcessor.ProcessInput(key))
	}
}

// HasFocus indicates, whether this composite pane has focus.
func (p *Composite) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns the ID of the pane focussed by this composite.
func (p *Composite) Focusses() ui.PaneID {
	if p.FocussedPane == nil {
		return ui.NonePaneID
	}
	return p.FocussedPane.Identify()
}

// ApplyModalOverlay applies an overlay to this processor.
func (p *Composite) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.InputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *Composite) PopModalOverlay() error {
	return p.InputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *Composite) PopModalOverlays(index uint) {
	p.InputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help of this pane and its focussed subpane.
func (p *Composite) GetHelp() input.Help {
	result := input.Help{}
	if p.InputProcessor != nil {
		for k, v := range p.InputProcessor.GetHelp() {
			result[k] = v
		}
	}
	if p.FocussedPane != nil {
		for k, v := range p.FocussedPane.GetHelp() {
			result[k] = v
		}
	}
	return result
}

// NewComposite constructs and returns a new Composite. The first focussable
// starts out focussed.
func NewComposite(
	drawables []ui.Pane,
	focussables []ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *Composite {
	p := &Composite{
		focussables: focussables,
		drawables:   drawables,
		BasePane: ui.BasePane{
			InputProcessor: inputProcessor,
			ID:             ui.GeneratePaneID(),
		},
	}
	if len(p.focussables) > 0 {
		p.FocussedPane = p.focussables[0]
	}
	for _, drawable := range p.drawables {
		drawable.SetParent(p)
	}
	return p
}
