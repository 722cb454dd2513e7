package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/util"
)

// EventsCommand lists the events in date order with their formatted dates.
type EventsCommand struct {
	DataOpts
	FilterOpts

	Daylight bool `long:"daylight" description:"add sunrise and sunset at the event's place, where date and coordinates are known"`
	Verbose  bool `long:"verbose" description:"add each event's narrative and sources"`
}

// Execute lists the events.
// (This gets called by `go-flags` when `events` is provided on the command
// line)
func (command *EventsCommand) Execute(args []string) error {
	env := envData(command.DataOpts)
	configData, err := loadConfig(env, themeFromString(""))
	if err != nil {
		return err
	}
	bundle, _, err := loadBundle(env, configData)
	if err != nil {
		return err
	}
	listEvents(os.Stdout, bundle, command.Filter(), listOptions{Daylight: command.Daylight, Verbose: command.Verbose})
	return nil
}

const (
	dateColumnWidth = 28
	laneColumnWidth = 16
	detailWidth     = 72
)

type listOptions struct {
	Daylight bool
	Verbose  bool
}

func listEvents(w io.Writer, bundle *model.Bundle, filter model.Filter, opts listOptions) {
	for _, e := range bundle.SortedEvents(filter) {
		lane := e.CategoryID
		if l := bundle.LaneByID(e.CategoryID); l != nil {
			lane = l.Label
		}
		fmt.Fprintf(w, "%-*s %-*s %s\n",
			dateColumnWidth, util.TruncateAt(e.FormattedDate(), dateColumnWidth),
			laneColumnWidth, util.TruncateAt(lane, laneColumnWidth),
			e.Title,
		)
		if opts.Daylight {
			for _, ref := range e.Places {
				place := bundle.PlaceByID(ref.PlaceID)
				if sun, ok := model.SunTimesAt(e.Date, place); ok {
					fmt.Fprintf(w, "%*s at %s: %s\n", dateColumnWidth, "", place.Name, sun)
					break
				}
			}
		}
		if opts.Verbose {
			for _, line := range util.Wrap(e.Narrative, detailWidth) {
				if line != "" {
					fmt.Fprintf(w, "%*s %s\n", dateColumnWidth, "", line)
				}
			}
			for i := range e.Sources {
				fmt.Fprintf(w, "%*s [%d] %s\n", dateColumnWidth, "", i+1, e.Sources[i].Citation())
				if e.Sources[i].URL != "" {
					fmt.Fprintf(w, "%*s     %s\n", dateColumnWidth, "", e.Sources[i].URL)
				}
			}
		}
	}
}
