package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/control"
	"github.com/ja-he/annales/internal/control/action"
	"github.com/ja-he/annales/internal/control/editor"
	"github.com/ja-he/annales/internal/input"
	"github.com/ja-he/annales/internal/input/processors"
	"github.com/ja-he/annales/internal/memlog"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/tui"
	"github.com/ja-he/annales/internal/ui"
	"github.com/ja-he/annales/internal/ui/panes"
)

const (
	statusHeight = 1
	detailHeight = 8
	helpWidth    = 64
	promptWidth  = 64
	promptHeight = 2
)

// defaultUIBindings bind the keys for the actions the controller adds to the
// timeline actions.
var defaultUIBindings = map[input.Keyspec]string{
	"g":     "go-to-year",
	"/":     "search",
	"?":     "toggle-help",
	"W":     "toggle-log",
	"d":     "toggle-detail",
	"<tab>": "focus-next",
	"q":     "quit",
}

// Controller is the struct for the TUI controller.
type Controller struct {
	data     *control.ControlData
	rootPane *panes.RootPane
	mainPane *panes.Composite
	detail   *panes.DetailPane

	grid   ui.Grid
	prompt *editor.Prompt

	controllerEvents chan controllerEvent

	screen       *tui.ScreenHandler
	screenEvents tui.EventPollable
}

// NewController creates a new Controller, initializing the screen.
func NewController(
	data *control.ControlData,
	stylesheet styling.Stylesheet,
	lanes *styling.LaneStyling,
	grid ui.Grid,
	keys map[string]string,
	logReader memlog.Reader,
) (*Controller, error) {
	controller := &Controller{
		data:             data,
		grid:             grid,
		controllerEvents: make(chan controllerEvent, 32),
	}

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return nil, err
	}
	controller.screen = screen
	controller.screenEvents = screen.GetEventPollable()
	cursorWrangler := ui.NewCursorWrangler(screen)

	screenDimensions := screen.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		_, _, w, _ = screenDimensions()
		return 0, 0, w, statusHeight
	}
	detailDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, h - detailHeight, w, detailHeight
	}
	timelineDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		h -= statusHeight
		if data.ShowDetail {
			h -= detailHeight
		}
		return 0, statusHeight, w, h
	}
	helpDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		w = min(helpWidth, sw)
		return (sw - w) / 2, statusHeight, w, sh - 2*statusHeight
	}
	promptDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		w = min(promptWidth, sw)
		return (sw - w) / 2, (sh - promptHeight) / 2, w, promptHeight
	}

	constrained := func(dimensions func() (x, y, w, h int)) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screen, dimensions)
	}

	var rootProcessor *processors.ModalInputProcessor
	var promptOverlayIndex uint
	controller.prompt = editor.NewPrompt(func() {
		rootProcessor.PopModalOverlays(promptOverlayIndex)
		controller.requestRender()
	})
	promptProcessor, err := processors.NewTextInputProcessor(
		map[input.Keyspec]action.Action{
			"<esc>":   action.NewSimple(func() string { return "cancel" }, controller.prompt.Cancel),
			"<cr>":    action.NewSimple(func() string { return "submit" }, controller.prompt.Submit),
			"<bs>":    action.NewSimple(func() string { return "delete previous character" }, controller.prompt.BackspaceRune),
			"<c-bs>":  action.NewSimple(func() string { return "delete previous character" }, controller.prompt.BackspaceRune),
			"<del>":   action.NewSimple(func() string { return "delete character" }, controller.prompt.DeleteRune),
			"<c-u>":   action.NewSimple(func() string { return "delete to beginning" }, controller.prompt.BackspaceToBeginning),
			"<left>":  action.NewSimple(func() string { return "move cursor left" }, controller.prompt.MoveCursorLeft),
			"<right>": action.NewSimple(func() string { return "move cursor right" }, controller.prompt.MoveCursorRight),
			"<home>":  action.NewSimple(func() string { return "move cursor to beginning" }, controller.prompt.MoveCursorToBeginning),
			"<end>":   action.NewSimple(func() string { return "move cursor to end" }, controller.prompt.MoveCursorPastEnd),
		},
		controller.prompt.AddRune,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct prompt input processor (%w)", err)
	}
	openPrompt := func(label string, onSubmit func(string) error) {
		controller.prompt.Open(label, onSubmit)
		promptOverlayIndex = rootProcessor.ApplyModalOverlay(promptProcessor)
	}

	registry := control.TimelineActions(data)
	simple := func(explanation string, f func()) action.Action {
		return action.NewSimple(func() string { return explanation }, f)
	}
	registry["go-to-year"] = simple("go to year", func() { openPrompt("Go to year", data.GoToYearText) })
	registry["search"] = simple("search titles and summaries", func() { openPrompt("Search", data.Search) })
	var helpContent input.Help
	registry["toggle-help"] = simple("toggle help", func() {
		helpContent = controller.mainPane.GetHelp()
		data.ShowHelp = !data.ShowHelp
	})
	registry["toggle-log"] = simple("toggle log", func() { data.ShowLog = !data.ShowLog })
	registry["toggle-detail"] = simple("toggle detail pane", func() {
		data.ShowDetail = !data.ShowDetail
		if !data.ShowDetail && controller.mainPane.FocussedPane == ui.Pane(controller.detail) {
			controller.mainPane.FocusNext()
		}
	})
	registry["focus-next"] = simple("switch focus between timeline and detail", func() { controller.mainPane.FocusNext() })
	registry["quit"] = simple("exit program", func() { controller.controllerEvents <- controllerEventExit })

	defaults := make(map[input.Keyspec]string, len(control.DefaultTimelineBindings)+len(defaultUIBindings))
	for spec, name := range control.DefaultTimelineBindings {
		defaults[spec] = name
	}
	for spec, name := range defaultUIBindings {
		defaults[spec] = name
	}
	bound, err := control.Bind(registry, defaults, keys)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings (%w)", err)
	}
	mainTree, err := input.ConstructInputTree(bound)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for timeline (%w)", err)
	}

	timelinePane := panes.NewTimelinePane(
		constrained(timelineDimensions),
		timelineDimensions,
		stylesheet,
		nil,
		data.Frame,
		grid,
		lanes,
	)
	statusPane := panes.NewStatusPane(
		constrained(statusDimensions),
		statusDimensions,
		stylesheet,
		data.Store.Snapshot,
		data.Bundle,
	)

	detailTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"j":      simple("scroll detail down", func() { controller.detail.ScrollDown() }),
		"k":      simple("scroll detail up", func() { controller.detail.ScrollUp() }),
		"<down>": simple("scroll detail down", func() { controller.detail.ScrollDown() }),
		"<up>":   simple("scroll detail up", func() { controller.detail.ScrollUp() }),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for detail pane (%w)", err)
	}
	controller.detail = panes.NewDetailPane(
		constrained(detailDimensions),
		detailDimensions,
		stylesheet,
		processors.NewModalInputProcessor(detailTree),
		func() bool { return data.ShowDetail },
		data.Store.Snapshot,
		data.Bundle,
	)

	controller.mainPane = panes.NewComposite(
		[]ui.Pane{timelinePane, statusPane, controller.detail},
		[]ui.Pane{timelinePane, controller.detail},
		processors.NewModalInputProcessor(mainTree),
	)

	closeHelp := simple("close help", func() { data.ShowHelp = false })
	helpTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"?": closeHelp, "<esc>": closeHelp, "q": closeHelp})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for help pane (%w)", err)
	}
	helpPane := panes.NewHelpPane(
		constrained(helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return data.ShowHelp },
		processors.NewModalInputProcessor(helpTree),
		func() input.Help { return helpContent },
	)
	closeLog := simple("close log", func() { data.ShowLog = false })
	logTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"W": closeLog, "<esc>": closeLog, "q": closeLog})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for log pane (%w)", err)
	}
	logPane := panes.NewLogPane(
		constrained(screenDimensions),
		screenDimensions,
		stylesheet,
		func() bool { return data.ShowLog },
		processors.NewModalInputProcessor(logTree),
		func() string { return "LOG" },
		logReader,
	)

	promptPane := panes.NewPromptPane(
		constrained(promptDimensions),
		promptDimensions,
		stylesheet,
		nil,
		controller.prompt,
		cursorWrangler,
	)

	rootProcessor = processors.NewModalInputProcessor(input.EmptyTree())
	controller.rootPane = panes.NewRootPane(
		screen,
		cursorWrangler,
		screenDimensions,
		controller.mainPane,
		logPane,
		helpPane,
		promptPane,
		rootProcessor,
	)

	return controller, nil
}

// pushViewportWidth sets the store's viewport width to the timeline pane's
// width in pixels.
func (c *Controller) pushViewportWidth() {
	_, _, w, _ := c.screen.Dimensions()
	c.data.Store.SetViewportWidth(c.grid.Width(w))
}

// requestRender queues a render without blocking.
func (c *Controller) requestRender() {
	select {
	case c.controllerEvents <- controllerEventRender:
	default:
	}
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	x, y := e.Position()
	info, ok := c.rootPane.GetPositionInfo(x, y).(ui.TimelinePanePositionInfo)
	if !ok {
		return
	}
	px := c.grid.ColumnCenter(x)

	switch e.Buttons() {
	case tcell.Button1:
		if info.EventID != "" {
			c.data.Store.SelectEvent(info.EventID)
		} else {
			c.data.Store.ClearSelection()
		}
	case tcell.ButtonSecondary:
		if info.EraID != "" {
			c.data.SelectEra(info.EraID)
		}
	case tcell.ButtonMiddle:
		c.data.Store.ScrubTo(info.Year)
	case tcell.WheelUp:
		c.data.Store.ZoomInAround(px)
	case tcell.WheelDown:
		c.data.Store.ZoomOutAround(px)
	case tcell.WheelLeft:
		c.data.Store.PanBy(c.data.PanStep, 0)
	case tcell.WheelRight:
		c.data.Store.PanBy(-c.data.PanStep, 0)
	}
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			if bufferedEvent == controllerEventExit {
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until it is exited.
func (c *Controller) Run() {
	log.Info().Int("events", len(c.data.Bundle.Events)).Msg("annales TUI started")

	var lastSelected string
	unsubscribe := c.data.Store.Subscribe(func(snap state.Snapshot) {
		if snap.SelectedEventID != lastSelected {
			lastSelected = snap.SelectedEventID
			c.detail.ResetScroll()
		}
		c.requestRender()
	})
	defer unsubscribe()

	c.pushViewportWidth()

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.screen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				start := time.Now()

				// empty all further render events before rendering
				if emptyRenderEvents(c.controllerEvents) {
					return
				}
				c.data.Refresh()
				c.rootPane.Draw()

				log.Trace().Dur("took", time.Since(start)).Msg("rendered")

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msg("unhandled controller event")
			}
		}
	}()

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				if !c.rootPane.ProcessInput(key) {
					log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventMouse:
				c.handleMouseEvent(e)

			case *tcell.EventResize:
				c.screen.NeedsSync()
				c.pushViewportWidth()
			}

			c.requestRender()
		}
	}()

	c.controllerEvents <- controllerEventRender
	wg.Wait()
}
