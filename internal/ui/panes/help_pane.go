package panes

import (
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
)

// A HelpPane is a pane that displays a help popup, listing the key mappings
// currently applicable and their actions.
type HelpPane struct {
	ui.LeafPane

	content func() input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 20
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	for row, entry := range input.SortedHelp(p.content()) {
		if row >= h-2*border {
			break
		}
		keysWidth := len([]rune(entry.Keys))
		p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, y+border+row, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), entry.Keys)
		p.Renderer.DrawText(descriptionOffset, y+border+row, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), entry.Explanation)
	}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		content: content,
	}
}
