package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ja-he/annales/internal/frame"
)

// LayoutCommand prints the composed frame (ticks, bands, lanes and their
// shapes) as JSON.
type LayoutCommand struct {
	DataOpts
	FilterOpts
	ViewOpts

	Indent bool `short:"i" long:"indent" description:"indent the JSON output"`
}

// Execute prints the layout.
// (This gets called by `go-flags` when `layout` is provided on the command
// line)
func (command *LayoutCommand) Execute(args []string) error {
	env := envData(command.DataOpts)
	configData, err := loadConfig(env, themeFromString(command.Theme))
	if err != nil {
		return err
	}
	bundle, _, err := loadBundle(env, configData)
	if err != nil {
		return err
	}
	store, err := newStore(configData.Timeline, command.ViewOpts, command.Filter())
	if err != nil {
		return err
	}
	f := frame.Compose(store.Snapshot(), bundle)

	encoder := json.NewEncoder(os.Stdout)
	if command.Indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("could not encode layout (%w)", err)
	}
	return nil
}
