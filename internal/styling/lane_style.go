package styling

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/annales/internal/model"
)

var colorGray = colorful.Color{R: 0.53, G: 0.53, B: 0.53}

// LaneStyling holds the color of every lane, as given by the data with
// optional overrides from the config.
type LaneStyling struct {
	colors   map[string]colorful.Color
	base     DrawStyling
	fallback colorful.Color
}

// NewLaneStyling builds the lane styling for the given lanes. Overrides map
// lane IDs to hex colors and take precedence over the lanes' own colors.
// base provides the attributes shared by all lanes.
func NewLaneStyling(lanes []model.Lane, overrides map[string]string, base DrawStyling) *LaneStyling {
	ls := &LaneStyling{
		colors:   make(map[string]colorful.Color, len(lanes)),
		base:     base,
		fallback: colorGray,
	}
	for _, lane := range lanes {
		hex := lane.Color
		if override, ok := overrides[lane.ID]; ok {
			hex = override
		}
		color, err := colorful.Hex(hex)
		if err != nil {
			log.Warn().Str("lane", lane.ID).Str("color", hex).Msg("invalid lane color, using fallback")
			continue
		}
		ls.colors[lane.ID] = color
	}
	return ls
}

// Color returns the lane's color as "#rrggbb".
func (ls *LaneStyling) Color(laneID string) string {
	return ls.color(laneID).Hex()
}

func (ls *LaneStyling) color(laneID string) colorful.Color {
	if c, ok := ls.colors[laneID]; ok {
		return c
	}
	return ls.fallback
}

// Get returns the styling for shapes in the given lane.
func (ls *LaneStyling) Get(laneID string) DrawStyling {
	return ls.base.WithBG(ls.color(laneID))
}

// Apply rewrites the lane colors in place to the styled ones.
func (ls *LaneStyling) Apply(lanes []model.Lane) {
	for i := range lanes {
		if _, ok := ls.colors[lanes[i].ID]; ok {
			lanes[i].Color = ls.Color(lanes[i].ID)
		}
	}
}
