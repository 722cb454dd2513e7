package export_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/ja-he/annales/internal/export"
	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
)

func year(y int) model.HistoricalDate {
	return model.HistoricalDate{Year: y, Precision: model.PrecisionYear}
}

func testFrame() frame.Frame {
	end := year(1453)
	short := year(-26)
	bundle := &model.Bundle{
		Lanes: []model.Lane{{ID: "politics", Label: "Politics & War", Color: "#8B0000", Order: 1}},
		Eras:  []model.EraBand{{ID: "rome", Label: "Rome", Start: year(-508), End: year(476), Color: "#aa0000"}},
		Events: []model.Event{
			{ID: "all", Type: model.EventRange, Title: "Everything", Date: year(-508), EndDate: &end, CategoryID: "politics"},
			{ID: "actium", Type: model.EventPoint, Title: "Actium <31 BCE>", Date: year(-30), CategoryID: "politics"},
			{ID: "blip", Type: model.EventRange, Title: "Blip", Date: year(-27), EndDate: &short, CategoryID: "politics"},
		},
	}
	store := state.NewStore(nil, 1220)
	store.SelectEvent("actium")
	return frame.Compose(store.Snapshot(), bundle)
}

func TestSVG(t *testing.T) {
	f := testFrame()
	var buf bytes.Buffer
	if err := export.SVG(&buf, f, export.Options{}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	svg := buf.String()

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("expected a complete svg document")
	}
	if n := strings.Count(svg, `class="marker"`); n != 2 {
		t.Errorf("expected 2 markers, got %d", n)
	}
	if n := strings.Count(svg, `class="span"`); n != 1 {
		t.Errorf("expected 1 span, got %d", n)
	}
	if n := strings.Count(svg, `class="tick"`); n != len(f.Ticks) {
		t.Errorf("expected %d ticks, got %d", len(f.Ticks), n)
	}
	if !strings.Contains(svg, `width="1120"`) {
		t.Error("expected the full span to be 1120 wide")
	}
	if !strings.Contains(svg, "Actium &lt;31 BCE&gt;") || !strings.Contains(svg, "Politics &amp; War") {
		t.Error("expected text to be escaped")
	}
	if !strings.Contains(svg, `stroke="#000000"`) {
		t.Error("expected the selected marker to be outlined")
	}
	if !strings.Contains(svg, `fill="#8b0000"`) {
		t.Error("expected the lane color to be normalized")
	}
}

func TestPNG(t *testing.T) {
	f := testFrame()
	var buf bytes.Buffer
	if err := export.PNG(&buf, f, export.Options{}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("could not decode png: %s", err)
	}
	if b := img.Bounds(); b.Dx() != 1220 || b.Dy() != int(f.TotalHeight) {
		t.Errorf("unexpected image size %dx%d", b.Dx(), b.Dy())
	}

	f.Width = 0
	if err := export.PNG(&buf, f, export.Options{}); err == nil {
		t.Error("expected error for empty frame")
	}
}
