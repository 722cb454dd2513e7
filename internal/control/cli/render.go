package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/config"
	"github.com/ja-he/annales/internal/export"
	"github.com/ja-he/annales/internal/frame"
)

// RenderCommand writes the timeline as an image.
type RenderCommand struct {
	DataOpts
	FilterOpts
	ViewOpts

	Out    string `short:"o" long:"out" description:"output file ('-' for stdout)" default:"-" value-name:"<file>"`
	Format string `short:"f" long:"format" choice:"svg" choice:"png" description:"output format (default: from the output file's extension, else svg)"`
}

// Execute renders the timeline.
// (This gets called by `go-flags` when `render` is provided on the command
// line)
func (command *RenderCommand) Execute(args []string) error {
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

	format := command.Format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(command.Out)), ".")
		if format != "png" {
			format = "svg"
		}
	}

	opts := exportOptions(configData.Export)
	if command.Out == "-" {
		err = renderTo(os.Stdout, format, f, opts)
	} else {
		err = renderToFile(command.Out, format, f, opts)
	}
	if err != nil {
		return err
	}

	log.Info().Str("format", format).Str("out", command.Out).Int("events", len(f.Shown)).Msg("rendered timeline")
	return nil
}

func renderTo(w io.Writer, format string, f frame.Frame, opts export.Options) error {
	var err error
	switch format {
	case "png":
		err = export.PNG(w, f, opts)
	default:
		err = export.SVG(w, f, opts)
	}
	if err != nil {
		return fmt.Errorf("could not render %s (%w)", format, err)
	}
	return nil
}

// renderToFile renders into the file at path. The file is closed before
// returning so that a failed flush is reported.
func renderToFile(path, format string, f frame.Frame, opts export.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file (%w)", err)
	}
	if err := renderTo(file, format, f, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not write output file '%s' (%w)", path, err)
	}
	return nil
}

func exportOptions(c config.Export) export.Options {
	return export.Options{
		Background: c.Background,
		AxisColor:  c.AxisColor,
		TextColor:  c.TextColor,
		FontSize:   c.FontSize,
	}
}
