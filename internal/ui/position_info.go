package ui

import (
	"github.com/ja-he/annales/internal/model"
)

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// TimelinePanePositionInfo provides information on a position in the
// timeline pane: the year under the column and, if any, the era band, lane
// and event drawn there.
type TimelinePanePositionInfo struct {
	Year    float64
	EraID   string
	LaneID  string
	EventID model.EventID
}
