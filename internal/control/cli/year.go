package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ja-he/annales/internal/control"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/scale"
)

// YearCommand parses year text the way the go-to-year prompt does.
type YearCommand struct {
	Args struct {
		Text []string `positional-arg-name:"year" description:"year text, e.g. '44 BCE' or '79 AD'"`
	} `positional-args:"true" required:"true"`
}

// Execute parses and prints the year.
// (This gets called by `go-flags` when `year` is provided on the command
// line)
func (command *YearCommand) Execute(args []string) error {
	return printYear(os.Stdout, strings.Join(command.Args.Text, " "))
}

func printYear(w io.Writer, text string) error {
	year, err := model.ParseYear(text)
	if err != nil {
		return fmt.Errorf("%s (%w)", control.InvalidYearMessage, err)
	}
	fmt.Fprintf(w, "astronomical: %d\n", year)
	fmt.Fprintf(w, "display:      %s\n", model.FormatYear(year))
	if clamped := scale.ClampYear(float64(year)); clamped != float64(year) {
		fmt.Fprintf(w, "clamped:      %s\n", model.FormatYear(int(clamped)))
	}
	return nil
}
