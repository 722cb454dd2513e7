package providers

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/storage"
)

// FilesDataProvider loads the timeline data from one file per collection in a
// directory.
type FilesDataProvider struct {
	BasePath string
}

// NewFilesDataProvider returns a provider reading from basePath.
func NewFilesDataProvider(basePath string) *FilesDataProvider {
	return &FilesDataProvider{BasePath: basePath}
}

type collection struct {
	name     string
	required bool
	target   any
}

// Load reads all collections concurrently. The events and lanes collections
// are required; any other missing collection is left empty.
func (p *FilesDataProvider) Load() (*model.Bundle, error) {
	bundle := &model.Bundle{}
	collections := []collection{
		{name: "events", required: true, target: &bundle.Events},
		{name: "lanes", required: true, target: &bundle.Lanes},
		{name: "eras", target: &bundle.Eras},
		{name: "tags", target: &bundle.Tags},
		{name: "people", target: &bundle.People},
		{name: "places", target: &bundle.Places},
		{name: "tours", target: &bundle.Tours},
	}

	errs := make([]error, len(collections))
	wg := sync.WaitGroup{}
	for i := range collections {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := collections[i]
			found, err := newFileHandler(p.BasePath, c.name).readInto(c.target)
			switch {
			case err != nil:
				errs[i] = fmt.Errorf("could not load %s (%w)", c.name, err)
			case !found && c.required:
				errs[i] = fmt.Errorf("no %s file in '%s' (%w)", c.name, p.BasePath, storage.ErrMissingFile)
			case !found:
				log.Debug().Str("collection", c.name).Str("path", p.BasePath).Msg("no file for optional collection")
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for _, problem := range storage.Validate(bundle) {
		log.Warn().Str("path", p.BasePath).Msg(problem)
	}
	log.Debug().
		Int("events", len(bundle.Events)).
		Int("lanes", len(bundle.Lanes)).
		Int("eras", len(bundle.Eras)).
		Int("tours", len(bundle.Tours)).
		Msg("loaded timeline data")
	return bundle, nil
}
