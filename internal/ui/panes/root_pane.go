package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
//
// Its subpanes are the main pane (timeline, status and detail) and the
// overlays drawn over it: the log, the help and the prompt, in that order.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	mainPane   ui.Pane
	logPane    ui.Pane
	helpPane   ui.Pane
	promptPane ui.Pane

	drawMtx sync.Mutex

	inputProcessor input.ModalInputProcessor

	preDrawStackMtx sync.Mutex
	preDrawStack    []func()

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// GetPositionInfo returns information on a requested position in this pane,
// as given by the topmost visible subpane containing it.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	active, _ := p.panesInOrder()
	for i := len(active) - 1; i >= 0; i-- {
		if util.NewRect(active[i].Dimensions()).Contains(x, y) {
			return active[i].GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

// panesInOrder returns the visible and invisible subpanes, each in drawing
// order (bottom first).
func (p *RootPane) panesInOrder() (active []ui.Pane, inactive []ui.Pane) {
	for _, pane := range []ui.Pane{p.mainPane, p.logPane, p.helpPane, p.promptPane} {
		if pane.IsVisible() {
			active = append(active, pane)
		} else {
			inactive = append(inactive, pane)
		}
	}
	return active, inactive
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.preDrawStackMtx.Lock()
	for _, f := range p.preDrawStack {
		f()
	}
	p.preDrawStack = nil
	p.preDrawStackMtx.Unlock()

	p.drawMtx.Lock()
	defer p.drawMtx.Unlock()

	p.renderer.Clear()

	active, inactive := p.panesInOrder()
	for _, pane := range inactive {
		pane.Undraw()
	}
	for _, pane := range active {
		p.log.Trace().Uint("pane", uint(pane.Identify())).Msg("drawing")
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()

	active, inactive := p.panesInOrder()
	for _, pane := range append(active, inactive...) {
		pane.Undraw()
	}

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	return p.focussedPane().CapturesInput() || p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {
	switch {
	case p.inputProcessor.CapturesInput():
		return p.inputProcessor.ProcessInput(key)
	case p.focussedPane().CapturesInput():
		return p.focussedPane().ProcessInput(key)
	default:
		if p.focussedPane().ProcessInput(key) {
			return true
		}
		return p.inputProcessor.ProcessInput(key)
	}
}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID { return p.focussedPane().Identify() }

// focussedPane is the topmost visible overlay, if any, else the main pane.
func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.promptPane.IsVisible():
		return p.promptPane
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return p.mainPane
	}
}

// SetParent panics, the root pane has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// DeferPreDraw attaches a function to the pre-draw stack, which is executed
// before the next draw.
func (p *RootPane) DeferPreDraw(f func()) {
	p.preDrawStackMtx.Lock()
	p.preDrawStack = append(p.preDrawStack, f)
	p.preDrawStackMtx.Unlock()
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}
	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}
	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	mainPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	promptPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		mainPane:       mainPane,
		logPane:        logPane,
		helpPane:       helpPane,
		promptPane:     promptPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Uint("id", uint(rootPane.Identify())).Msg("created root pane")

	mainPane.SetParent(rootPane)
	logPane.SetParent(rootPane)
	helpPane.SetParent(rootPane)
	promptPane.SetParent(rootPane)

	return rootPane
}
