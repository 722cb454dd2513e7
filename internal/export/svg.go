package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/layout"
)

// SVG writes the frame as an SVG document.
func SVG(w io.Writer, f frame.Frame, opts Options) error {
	opts = opts.withDefaults()

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" xmlns="http://www.w3.org/2000/svg" data-zoom="%s" data-center-year="%s">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.lane-label { font-family: sans-serif; font-size: %spx; font-weight: bold; fill: %s; }
.event-label { font-family: sans-serif; font-size: %spx; fill: %s; }
.tick-label { font-family: sans-serif; font-size: %spx; fill: %s; }
.era-label { font-family: sans-serif; font-size: %spx; font-style: italic; fill: %s; }
</style>
</defs>
`, num(f.Width), num(f.TotalHeight), num(f.Transform.K), num(f.CenterYear),
		opts.Background,
		num(opts.FontSize), opts.TextColor,
		num(opts.FontSize-1), opts.TextColor,
		num(opts.FontSize-1), opts.TextColor,
		num(opts.FontSize), opts.TextColor))

	for i := range f.Bands {
		writeBand(&svg, &f.Bands[i])
	}
	for i := range f.Rows {
		writeLane(&svg, &f.Rows[i], f.Width)
	}
	writeAxis(&svg, &f, opts)

	svg.WriteString("</svg>\n")

	if _, err := io.WriteString(w, svg.String()); err != nil {
		return fmt.Errorf("could not write svg (%w)", err)
	}
	return nil
}

func writeBand(svg *strings.Builder, b *layout.Band) {
	color := laneColor(b.Era.Color)
	svg.WriteString(fmt.Sprintf(`<rect class="era" x="%s" y="0" width="%s" height="%s" fill="%s" fill-opacity="0.1"/>`+"\n",
		num(b.X), num(b.Width), num(b.Height), color))
	svg.WriteString(fmt.Sprintf(`<text class="era-label" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
		num(b.LabelX()), num(b.Height-8), escapeXML(b.Era.Label)))
}

func writeLane(svg *strings.Builder, row *layout.LaneRow, width float64) {
	svg.WriteString(fmt.Sprintf(`<g class="lane" data-lane="%s">`+"\n", escapeXML(row.Lane.ID)))
	svg.WriteString(fmt.Sprintf(`<line x1="0" y1="%s" x2="%s" y2="%s" stroke="#e0e0e0" stroke-width="1"/>`+"\n",
		num(row.Y+layout.LaneHeight), num(width), num(row.Y+layout.LaneHeight)))
	svg.WriteString(fmt.Sprintf(`<text class="lane-label" x="4" y="%s">%s</text>`+"\n",
		num(row.Y+14), escapeXML(row.Lane.Label)))

	for i := range row.Shapes {
		writeShape(svg, &row.Shapes[i])
	}
	svg.WriteString("</g>\n")
}

func writeShape(svg *strings.Builder, s *layout.Shape) {
	color := laneColor(s.Style.Color)
	stroke := "#ffffff"
	if s.Style.Selected {
		stroke = "#000000"
	}

	switch s.Kind {
	case layout.Marker:
		svg.WriteString(fmt.Sprintf(`<circle class="marker" data-event="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"><title>%s</title></circle>`+"\n",
			escapeXML(s.EventID), num(s.X), num(s.Y), num(s.Style.Radius), color, stroke, num(s.Style.StrokeWidth), escapeXML(s.Title)))
	case layout.Span:
		svg.WriteString(fmt.Sprintf(`<rect class="span" data-event="%s" x="%s" y="%s" width="%s" height="%s" rx="%d" fill="%s" fill-opacity="0.7" stroke="%s" stroke-width="%s"><title>%s</title></rect>`+"\n",
			escapeXML(s.EventID), num(s.X), num(s.Y), num(s.Width), num(s.Height), layout.SpanCornerRadius, color, stroke, num(s.Style.StrokeWidth), escapeXML(s.Title)))
		if s.ShowLabel {
			svg.WriteString(fmt.Sprintf(`<text class="event-label" x="%s" y="%s">%s</text>`+"\n",
				num(s.X+4), num(s.Y+s.Height/2+4), escapeXML(s.Title)))
		}
	}
}

func writeAxis(svg *strings.Builder, f *frame.Frame, opts Options) {
	y := axisLine(f)
	svg.WriteString(fmt.Sprintf(`<g class="axis" transform="translate(0,%s)">`+"\n", num(y)))
	svg.WriteString(fmt.Sprintf(`<line x1="0" y1="0" x2="%s" y2="0" stroke="%s" stroke-width="1"/>`+"\n",
		num(f.Width), opts.AxisColor))
	for _, t := range f.Ticks {
		svg.WriteString(fmt.Sprintf(`<line class="tick" x1="%s" y1="0" x2="%s" y2="%d" stroke="%s"/>`+"\n",
			num(t.X), num(t.X), tickLength, opts.AxisColor))
		svg.WriteString(fmt.Sprintf(`<text class="tick-label" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			num(t.X), num(tickLength+opts.FontSize+2), escapeXML(t.Label)))
	}
	svg.WriteString("</g>\n")
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// escapeXML escapes the XML special characters of s.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
