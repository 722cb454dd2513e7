// Package cli provides the command-line interface for annales.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/config"
	"github.com/ja-he/annales/internal/control"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
	"github.com/ja-he/annales/internal/storage/providers"
	"github.com/ja-he/annales/internal/styling"
	"github.com/ja-he/annales/internal/viewport"
)

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TUICommand     `command:"tui" subcommands-optional:"true" description:"Explore the timeline interactively"`
	RenderCommand  RenderCommand  `command:"render" description:"Render the timeline to SVG or PNG"`
	LayoutCommand  LayoutCommand  `command:"layout" description:"Print the laid out timeline as JSON"`
	EventsCommand  EventsCommand  `command:"events" description:"List events in date order"`
	YearCommand    YearCommand    `command:"year" description:"Parse a year as entered in the go-to-year prompt"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

var Opts CommandLineOpts

// DataOpts selects the data directory.
type DataOpts struct {
	Data string `short:"d" long:"data" description:"directory holding the timeline data files (default: $ANNALES_HOME/data)" value-name:"<dir>"`
}

// FilterOpts restricts the events shown.
type FilterOpts struct {
	Eras       []string `long:"era" description:"only events overlapping this era (repeatable)" value-name:"<era-id>"`
	Categories []string `long:"category" description:"only events in this lane (repeatable)" value-name:"<lane-id>"`
	Tags       []string `long:"tag" description:"only events with this tag (repeatable)" value-name:"<tag>"`
	People     []string `long:"person" description:"only events involving this person (repeatable)" value-name:"<person-id>"`
	Places     []string `long:"place" description:"only events at this place (repeatable)" value-name:"<place-id>"`
	Search     string   `short:"s" long:"search" description:"only events whose title or summary contains this text" value-name:"<text>"`
}

// Filter returns the filter the options describe.
func (o *FilterOpts) Filter() model.Filter {
	return model.Filter{
		Eras:       o.Eras,
		Categories: o.Categories,
		Tags:       o.Tags,
		People:     o.People,
		Places:     o.Places,
		Query:      o.Search,
	}
}

// ViewOpts place the viewport for the non-interactive renderings.
type ViewOpts struct {
	Width float64 `short:"w" long:"width" description:"viewport width in pixels (default from config)" value-name:"<px>"`
	Zoom  float64 `short:"z" long:"zoom" description:"zoom factor" default:"1" value-name:"<k>"`
	Year  string  `short:"y" long:"year" description:"year to center, e.g. '44 BCE' (default: as fully zoomed out)" value-name:"<year>"`
	Theme string  `short:"t" long:"theme" choice:"light" choice:"dark" default:"light" description:"default theme the config augments"`
}

// homeDir is $ANNALES_HOME or, if unset, ~/.config/annales.
func homeDir() string {
	home := os.Getenv("ANNALES_HOME")
	if home == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "annales")
	}
	return strings.TrimRight(home, "/")
}

func envData(data DataOpts) control.EnvData {
	env := control.EnvData{BaseDirPath: homeDir()}
	if data.Data != "" {
		env.DataDirPath = data.Data
	} else {
		env.DataDirPath = filepath.Join(env.BaseDirPath, "data")
	}
	return env
}

func themeFromString(s string) config.ColorschemeType {
	if s == "dark" {
		return config.Dark
	}
	return config.Light
}

// loadConfig reads the config file from the home directory and augments the
// theme's defaults with it. A missing config file is not an error.
func loadConfig(env control.EnvData, theme config.ColorschemeType) (config.Config, error) {
	path := filepath.Join(env.BaseDirPath, "config.yaml")
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = nil
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config file '%s' (%w)", path, err)
	}
	return configData, nil
}

// loadBundle loads the timeline data and applies the configured lane colors.
func loadBundle(env control.EnvData, configData config.Config) (*model.Bundle, *styling.LaneStyling, error) {
	bundle, err := providers.NewFilesDataProvider(env.DataDirPath).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load timeline data (%w)", err)
	}
	lanes := styling.NewLaneStyling(bundle.Lanes, configData.Lanes, styling.StyleFromConfig(configData.Stylesheet.Normal))
	lanes.Apply(bundle.Lanes)
	return bundle, lanes, nil
}

// newStore returns a store as configured, with the view options applied.
func newStore(timeline config.Timeline, view ViewOpts, filter model.Filter) (*state.Store, error) {
	width := timeline.ViewportWidth
	if view.Width > 0 {
		width = view.Width
	}
	store := state.NewStore(viewport.NewEngine(timeline.MinScale, timeline.MaxScale, timeline.ZoomFactor), width)
	store.SetFilter(filter)
	if view.Zoom > 0 {
		store.ZoomTo(0, 0, view.Zoom)
	}
	if view.Year != "" {
		year, err := model.ParseYear(view.Year)
		if err != nil {
			return nil, fmt.Errorf("%s (%w)", control.InvalidYearMessage, err)
		}
		store.ScrubTo(float64(year))
	} else if view.Zoom > 1 {
		store.Recenter()
	}
	return store, nil
}
