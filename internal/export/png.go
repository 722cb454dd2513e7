package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/layout"
)

// PNG draws the frame with the software rasterizer and encodes it as PNG.
func PNG(w io.Writer, f frame.Frame, opts Options) error {
	opts = opts.withDefaults()

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("could not load font (%w)", err)
	}
	face := source.Face(opts.FontSize)

	width, height := int(math.Ceil(f.Width)), int(math.Ceil(f.TotalHeight))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("cannot draw frame of size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(opts.Background))
	dc.SetFont(face)

	for i := range f.Bands {
		if err := drawBand(dc, &f.Bands[i], opts); err != nil {
			return err
		}
	}
	for i := range f.Rows {
		if err := drawLane(dc, &f.Rows[i], f.Width, opts); err != nil {
			return err
		}
	}
	if err := drawAxis(dc, &f, opts); err != nil {
		return err
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("could not encode png (%w)", err)
	}
	return nil
}

func drawBand(dc *gg.Context, b *layout.Band, opts Options) error {
	c := gg.Hex(laneColor(b.Era.Color))
	dc.SetRGBA(c.R, c.G, c.B, 0.1)
	dc.DrawRectangle(b.X, 0, b.Width, b.Height)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("could not fill era band '%s' (%w)", b.Era.ID, err)
	}
	dc.SetHexColor(opts.TextColor)
	dc.DrawStringAnchored(b.Era.Label, b.LabelX(), b.Height-8, 0.5, 0)
	return nil
}

func drawLane(dc *gg.Context, row *layout.LaneRow, width float64, opts Options) error {
	dc.SetHexColor("#e0e0e0")
	dc.SetLineWidth(1)
	dc.DrawLine(0, row.Y+layout.LaneHeight, width, row.Y+layout.LaneHeight)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("could not draw lane separator (%w)", err)
	}
	dc.SetHexColor(opts.TextColor)
	dc.DrawStringAnchored(row.Lane.Label, 4, row.Y+14, 0, 0)

	for i := range row.Shapes {
		if err := drawShape(dc, &row.Shapes[i], opts); err != nil {
			return fmt.Errorf("could not draw event '%s' (%w)", row.Shapes[i].EventID, err)
		}
	}
	return nil
}

func drawShape(dc *gg.Context, s *layout.Shape, opts Options) error {
	stroke := "#ffffff"
	if s.Style.Selected {
		stroke = "#000000"
	}

	switch s.Kind {
	case layout.Marker:
		dc.DrawCircle(s.X, s.Y, s.Style.Radius)
	case layout.Span:
		dc.DrawRoundedRectangle(s.X, s.Y, s.Width, s.Height, layout.SpanCornerRadius)
	default:
		return nil
	}
	dc.SetHexColor(laneColor(s.Style.Color))
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetHexColor(stroke)
	dc.SetLineWidth(s.Style.StrokeWidth)
	if err := dc.Stroke(); err != nil {
		return err
	}

	if s.Kind == layout.Span && s.ShowLabel {
		dc.SetHexColor(opts.TextColor)
		dc.DrawStringAnchored(s.Title, s.X+4, s.Y+s.Height/2, 0, 0.5)
	}
	return nil
}

func drawAxis(dc *gg.Context, f *frame.Frame, opts Options) error {
	y := axisLine(f)
	dc.SetHexColor(opts.AxisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(0, y, f.Width, y)
	for _, t := range f.Ticks {
		dc.DrawLine(t.X, y, t.X, y+tickLength)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("could not draw axis (%w)", err)
	}

	dc.SetHexColor(opts.TextColor)
	for _, t := range f.Ticks {
		dc.DrawStringAnchored(t.Label, t.X, y+tickLength+opts.FontSize+2, 0.5, 0)
	}
	return nil
}
