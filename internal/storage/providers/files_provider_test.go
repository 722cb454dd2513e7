package providers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/storage"
	"github.com/ja-he/annales/internal/storage/providers"
)

const eventsYAML = `
- id: founding
  type: point
  title: Founding of the Republic
  date: { year: -508, precision: year }
  categoryId: politics
- id: punic-war
  type: range
  title: First Punic War
  date: { year: -263, precision: year }
  endDate: { year: -240, precision: year }
  categoryId: war
  tags: [carthage]
`

const lanesJSON = `[
  {"id": "politics", "label": "Politics", "color": "#8B0000", "order": 1},
  {"id": "war", "label": "War", "color": "#2F4F4F", "order": 2}
]`

const toursYAML = `
- id: rise
  title: The Rise of Rome
  steps:
    - eventId: founding
      narration: It begins.
      zoomLevel: 4
    - eventId: missing
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("yaml and json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "events.yaml", eventsYAML)
		writeFile(t, dir, "lanes.json", lanesJSON)
		writeFile(t, dir, "tours.yml", toursYAML)

		bundle, err := providers.NewFilesDataProvider(dir).Load()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(bundle.Events) != 2 || len(bundle.Lanes) != 2 || len(bundle.Tours) != 1 {
			t.Fatalf("unexpected bundle sizes %d events, %d lanes, %d tours", len(bundle.Events), len(bundle.Lanes), len(bundle.Tours))
		}
		if len(bundle.Eras) != 0 || len(bundle.People) != 0 {
			t.Error("expected optional collections to be empty")
		}

		war := bundle.EventByID("punic-war")
		if war == nil || war.EndDate == nil || war.EndDate.Year != -240 || war.Type != model.EventRange {
			t.Errorf("unexpected event %+v", war)
		}
		if !war.HasTag("carthage") {
			t.Error("expected tags to be loaded")
		}
		if lane := bundle.LaneByID("war"); lane == nil || lane.Color != "#2F4F4F" || lane.Order != 2 {
			t.Errorf("unexpected lane %+v", lane)
		}
		step := bundle.Tours[0].Steps[0]
		if step.ZoomLevel == nil || *step.ZoomLevel != 4 {
			t.Errorf("unexpected tour step %+v", step)
		}
	})

	t.Run("required file missing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "lanes.yaml", lanesJSON)

		_, err := providers.NewFilesDataProvider(dir).Load()
		if !errors.Is(err, storage.ErrMissingFile) {
			t.Errorf("expected missing file error, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "events.yaml", "- id: [unclosed")
		writeFile(t, dir, "lanes.yaml", lanesJSON)

		_, err := providers.NewFilesDataProvider(dir).Load()
		if err == nil || errors.Is(err, storage.ErrMissingFile) {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	early := model.HistoricalDate{Year: -300}
	bundle := &model.Bundle{
		Lanes: []model.Lane{{ID: "politics"}},
		Events: []model.Event{
			{ID: "a", Type: model.EventPoint, CategoryID: "politics"},
			{ID: "a", Type: model.EventPoint, CategoryID: "politics"},
			{ID: "b", Type: "battle", CategoryID: "politics"},
			{ID: "c", Type: model.EventRange, Date: model.HistoricalDate{Year: -200}, EndDate: &early, CategoryID: "politics"},
			{ID: "d", Type: model.EventPoint, CategoryID: "war"},
		},
		Tours: []model.Tour{{ID: "t", Steps: []model.TourStep{{EventID: "nothing"}}}},
	}

	problems := storage.Validate(bundle)
	if len(problems) != 5 {
		t.Errorf("expected 5 problems, got %d: %v", len(problems), problems)
	}
	if len(bundle.Events) != 5 {
		t.Error("validation modified the bundle")
	}
}
