package ui

import (
	"fmt"

	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/styling"
)

// Pane is a UI pane.
//
// Panes are structured as a tree: the root pane holds the timeline, status
// and detail panes and overlays such as the prompt. Any pane in the tree can
// be asked whether it HasFocus; to answer that it consults its parent, which
// is set with SetParent (the root being the only pane without one).
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneType is the type of a UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI Pane, perhaps in
	// padding space.
	NoPane
	// TimelinePaneType represents the timeline with its lanes and axis.
	TimelinePaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// DetailPaneType represents the pane showing the selected event.
	DetailPaneType
	// PromptPaneType represents a (popup) text prompt.
	PromptPaneType
	// HelpPaneType represents the help popup.
	HelpPaneType
	// LogPaneType represents a log pane.
	LogPaneType
)

// ToString returns the name of this pane type as a string, primarily for
// debugging and logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case TimelinePaneType:
		return "TimelinePaneType"
	case StatusPaneType:
		return "StatusPaneType"
	case DetailPaneType:
		return "DetailPaneType"
	case PromptPaneType:
		return "PromptPaneType"
	case HelpPaneType:
		return "HelpPaneType"
	case LogPaneType:
		return "LogPaneType"
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Renderer draws boxes and text.
type Renderer interface {
	// DrawBox draws a box of the indicated dimensions at the indicated location.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text within the box described by the given coordinates and
	// dimensions.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is a terminal cell the text cursor can be placed on.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
