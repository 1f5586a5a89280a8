package store

import (
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// stageOrder positions the ordered workflow stages. Deferred sits outside
// the chain as a side branch.
var stageOrder = map[constants.Stage]int{
	constants.StageReported:            0,
	constants.StageWOCreated:           1,
	constants.StageAssigned:            2,
	constants.StageInProgress:          3,
	constants.StageInspectionRequired:  4,
	constants.StageInspectionCompleted: 5,
	constants.StageCompleted:           6,
}

func newLifecycle(initial constants.Stage, actor string, now time.Time) entities.LifecycleStage {
	return entities.LifecycleStage{
		Current: initial,
		History: []entities.LifecycleEvent{{
			Stage:       initial,
			Timestamp:   now,
			PerformedBy: actor,
		}},
	}
}

// canTransition applies the ordering rules: forward-only within the chain,
// deferred reachable from any open stage, and any ordered stage resumable
// from deferred.
func canTransition(from, to constants.Stage) bool {
	if from == to {
		return false
	}
	if to == constants.StageDeferred {
		return from != constants.StageCompleted && from != constants.StageDeferred
	}
	toIdx, ok := stageOrder[to]
	if !ok {
		return false
	}
	if from == constants.StageDeferred {
		return true
	}
	fromIdx, ok := stageOrder[from]
	if !ok {
		return false
	}
	return toIdx > fromIdx
}

// advanceLifecycle appends a history entry and moves the current pointer in
// one step. History is append-only.
func advanceLifecycle(ls entities.LifecycleStage, to constants.Stage, actor, notes string, now time.Time) (entities.LifecycleStage, error) {
	if !canTransition(ls.Current, to) {
		return entities.LifecycleStage{}, &InvalidTransitionError{From: ls.Current, To: to}
	}
	out := ls.Clone()
	out.Current = to
	out.History = append(out.History, entities.LifecycleEvent{
		Stage:       to,
		Timestamp:   now,
		PerformedBy: actor,
		Notes:       notes,
	})
	return out, nil
}

// advanceIfForward advances when the move is legal and leaves the lifecycle
// untouched otherwise. Used for side effects of linked entities, where a
// squawk may already be ahead of the triggering work order.
func advanceIfForward(ls entities.LifecycleStage, to constants.Stage, actor, notes string, now time.Time) entities.LifecycleStage {
	out, err := advanceLifecycle(ls, to, actor, notes, now)
	if err != nil {
		return ls
	}
	return out
}

func terminalStage(stage constants.Stage) bool {
	return stage == constants.StageCompleted
}
