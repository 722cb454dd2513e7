package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/control"
	"github.com/ja-he/annales/internal/memlog"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/ui"
)

// TUICommand is the command to explore the timeline interactively.
type TUICommand struct {
	DataOpts
	FilterOpts

	Theme           string  `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	Year            string  `short:"y" long:"year" description:"year to center initially, e.g. '44 BCE'" value-name:"<year>"`
	Tour            string  `long:"tour" description:"start the tour with this ID" value-name:"<tour-id>"`
	Step            int     `long:"step" description:"tour step to start at (with --tour)" default:"1" value-name:"<n>"`
	PixelsPerColumn float64 `long:"width-px-per-column" description:"timeline pixels per terminal column (default from config)" value-name:"<px>"`
	LogOutputFile   string  `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty       bool    `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the TUI.
func (command *TUICommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	memoryLog := memlog.New(0)
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, memoryLog)
	} else {
		logWriter = memoryLog
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := themeFromString(command.Theme)
	env := envData(command.DataOpts)

	configData, err := loadConfig(env, theme)
	if err != nil {
		return err
	}
	bundle, lanes, err := loadBundle(env, configData)
	if err != nil {
		return err
	}

	grid := ui.Grid{PixelsPerColumn: configData.Timeline.PixelsPerColumn, RowsPerLane: ui.DefaultRowsPerLane}
	if command.PixelsPerColumn > 0 {
		grid.PixelsPerColumn = command.PixelsPerColumn
	}

	store, err := newStore(configData.Timeline, ViewOpts{Year: command.Year}, command.FilterOpts.Filter())
	if err != nil {
		return err
	}

	data := control.NewControlData(env, bundle, store, configData.Timeline.PanStep)
	if command.Tour != "" {
		if err := data.StartTourAt(command.Tour, command.Step-1); err != nil {
			return err
		}
	}
	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	controller, err := NewController(data, *stylesheet, lanes, grid, configData.Keys, memoryLog)
	if err != nil {
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
