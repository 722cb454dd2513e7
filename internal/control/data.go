// Package control holds the data of an interactive timeline session and the
// actions that can be taken on it.
package control

import (
	"sync"

	"github.com/ja-he/annales/internal/frame"
	"github.com/ja-he/annales/internal/model"
	"github.com/ja-he/annales/internal/state"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	DataDirPath string
}

// ControlData is the data of a session: the loaded bundle, the state store
// and what the UI shows besides the timeline.
type ControlData struct {
	EnvData EnvData

	Bundle *model.Bundle
	Store  *state.Store

	// PanStep is the horizontal pan distance in pixels.
	PanStep float64

	ShowHelp   bool
	ShowLog    bool
	ShowDetail bool

	frameMtx sync.RWMutex
	frame    *frame.Frame
}

// NewControlData returns the data of a fresh session.
func NewControlData(env EnvData, bundle *model.Bundle, store *state.Store, panStep float64) *ControlData {
	return &ControlData{
		EnvData:    env,
		Bundle:     bundle,
		Store:      store,
		PanStep:    panStep,
		ShowDetail: true,
	}
}

// Refresh composes the frame for the store's current snapshot and keeps it
// as the current frame.
func (d *ControlData) Refresh() *frame.Frame {
	f := frame.Compose(d.Store.Snapshot(), d.Bundle)
	d.frameMtx.Lock()
	d.frame = &f
	d.frameMtx.Unlock()
	return &f
}

// Frame returns the most recently composed frame, composing one if there is
// none yet.
func (d *ControlData) Frame() *frame.Frame {
	d.frameMtx.RLock()
	f := d.frame
	d.frameMtx.RUnlock()
	if f == nil {
		return d.Refresh()
	}
	return f
}

// ShownIDs returns the IDs of the events passing the current filter, in date
// order.
func (d *ControlData) ShownIDs() []model.EventID {
	snap := d.Store.Snapshot()
	shown := d.Bundle.SortedEvents(snap.Filter)
	ids := make([]model.EventID, 0, len(shown))
	for _, e := range shown {
		ids = append(ids, e.ID)
	}
	return ids
}

// SelectedEvent returns the selected event or nil.
func (d *ControlData) SelectedEvent() *model.Event {
	snap := d.Store.Snapshot()
	if snap.SelectedEventID == "" {
		return nil
	}
	return d.Bundle.EventByID(snap.SelectedEventID)
}
