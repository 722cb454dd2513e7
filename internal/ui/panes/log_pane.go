package panes

import (
	"sort"

	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/memlog"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader memlog.Reader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LogTitleBox, title)

	const levelLen = len(" error ")
	const indent = levelLen + 1

	entries := p.logReader.Get()
	row := 2
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		level := memlog.Field(entry, "level")
		message := memlog.Field(entry, "message")
		caller := memlog.Field(entry, "caller")

		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := x + indent
		p.Renderer.DrawText(col, y+row, w-indent, 1, p.Stylesheet.LogDefault, message)
		col += len([]rune(message)) + 1
		p.Renderer.DrawText(col, y+row, x+w-col, 1, p.Stylesheet.LogEntryLocation, caller)
		col += len([]rune(caller)) + 1
		p.Renderer.DrawText(col, y+row, x+w-col, 1, p.Stylesheet.LogEntryTime, memlog.Field(entry, "time"))
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				return
			}
			p.Renderer.DrawText(x+indent, y+row, len(k), 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(x+indent+len(k)+2, y+row, w-indent-len(k)-2, 1, p.Stylesheet.LogEntryLocation, memlog.Field(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
	titleString func() string,
	logReader memlog.Reader,
) *LogPane {
	return &LogPane{
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
		titleString: titleString,
		logReader:   logReader,
	}
}
