package entities

import (
	"time"

	"hangar-next/mxops/internal/constants"
)

// LifecycleEvent is one append-only history entry. History is never
// rewritten; the current pointer and the append happen together.
type LifecycleEvent struct {
	Stage       constants.Stage `json:"stage"`
	Timestamp   time.Time       `json:"timestamp"`
	PerformedBy string          `json:"performedBy"`
	Notes       string          `json:"notes,omitempty"`
}

// LifecycleStage tracks where a squawk or work order sits in the repair
// workflow, with the full audit trail of how it got there.
type LifecycleStage struct {
	Current constants.Stage  `json:"current"`
	History []LifecycleEvent `json:"history"`
}

// Clone returns a deep copy so stored history can never be mutated through
// a returned view.
func (ls LifecycleStage) Clone() LifecycleStage {
	out := LifecycleStage{Current: ls.Current}
	out.History = make([]LifecycleEvent, len(ls.History))
	copy(out.History, ls.History)
	return out
}

// StageEnteredAt returns the timestamp of the most recent entry into the
// given stage, or zero time when the stage was never entered.
func (ls LifecycleStage) StageEnteredAt(stage constants.Stage) time.Time {
	for i := len(ls.History) - 1; i >= 0; i-- {
		if ls.History[i].Stage == stage {
			return ls.History[i].Timestamp
		}
	}
	return time.Time{}
}
