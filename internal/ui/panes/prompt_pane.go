package panes

import (
	"github.com/ja-he/annales/internal/control/editor"
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
)

const promptRequester = "prompt-pane"

// PromptPane visualizes a prompt (as seen by a PromptView): its label, the
// content with the text cursor, and the error of a rejected submit.
type PromptPane struct {
	ui.LeafPane

	view editor.PromptView

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws the prompt popup.
func (p *PromptPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Prompt)

	label := p.view.Label() + ": "
	labelWidth := len([]rune(label))
	p.Renderer.DrawText(x+1, y, labelWidth, 1, p.Stylesheet.Prompt.DefaultEmphasized().Bolded(), label)
	contentX := x + 1 + labelWidth
	p.Renderer.DrawText(contentX, y, w-labelWidth-2, 1, p.Stylesheet.Prompt, p.view.Content())
	p.cursorController.Put(ui.CursorLocation{X: contentX + p.view.CursorPos(), Y: y}, promptRequester)

	if msg := p.view.ErrorMessage(); msg != "" && h > 1 {
		p.Renderer.DrawBox(x, y+1, w, h-1, p.Stylesheet.PromptError)
		p.Renderer.DrawText(x+1, y+1, w-2, h-1, p.Stylesheet.PromptError, msg)
	}
}

// Undraw withdraws the cursor request.
func (p *PromptPane) Undraw() {
	p.cursorController.Delete(promptRequester)
}

// NewPromptPane creates a new PromptPane, visible while the prompt is active.
func NewPromptPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	view editor.PromptView,
	cursorController ui.CursorLocationRequestHandler,
) *PromptPane {
	return &PromptPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        view.Active,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:             view,
		cursorController: cursorController,
	}
}
