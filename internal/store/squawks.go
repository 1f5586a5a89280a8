package store

import (
	"fmt"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// SquawkDraft carries the caller-supplied fields for a new squawk.
type SquawkDraft struct {
	AircraftID         string
	AircraftTail       string
	LogbookPage        int
	ReportedBy         string
	FlightNumber       string
	SquawkType         constants.SquawkType
	Priority           constants.Priority
	ATAChapter         string
	Description        string
	PilotAction        string
	Category           constants.SquawkCategory
	RequiresInspection bool
	Attachments        []string
}

func (d SquawkDraft) validate() error {
	switch {
	case d.AircraftTail == "":
		return &ValidationError{Field: "aircraftTail", Reason: "required"}
	case d.ReportedBy == "":
		return &ValidationError{Field: "reportedBy", Reason: "required"}
	case d.Description == "":
		return &ValidationError{Field: "description", Reason: "required"}
	case d.ATAChapter == "":
		return &ValidationError{Field: "ataChapter", Reason: "required"}
	}
	if _, err := constants.ParsePriority(string(d.Priority)); err != nil {
		return &ValidationError{Field: "priority", Reason: err.Error()}
	}
	if _, err := constants.ParseSquawkType(string(d.SquawkType)); err != nil {
		return &ValidationError{Field: "squawkType", Reason: err.Error()}
	}
	if _, err := constants.ParseSquawkCategory(string(d.Category)); err != nil {
		return &ValidationError{Field: "category", Reason: err.Error()}
	}
	return nil
}

// AddSquawk records a new discrepancy in the reported stage.
func (s *Store) AddSquawk(draft SquawkDraft) (entities.Squawk, error) {
	if err := draft.validate(); err != nil {
		return entities.Squawk{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sq := entities.Squawk{
		ID:                 newID("SQ"),
		AircraftID:         draft.AircraftID,
		AircraftTail:       draft.AircraftTail,
		LogbookPage:        draft.LogbookPage,
		ReportedBy:         draft.ReportedBy,
		ReportedAt:         now,
		FlightNumber:       draft.FlightNumber,
		SquawkType:         draft.SquawkType,
		Priority:           draft.Priority,
		Status:             constants.SquawkOpen,
		ATAChapter:         draft.ATAChapter,
		Description:        draft.Description,
		PilotAction:        draft.PilotAction,
		Category:           draft.Category,
		RequiresInspection: draft.RequiresInspection,
		PartsUsed:          []entities.PartUsed{},
		Attachments:        append([]string(nil), draft.Attachments...),
		Lifecycle:          newLifecycle(constants.StageReported, draft.ReportedBy, now),
	}
	checkSquawkInvariants(sq)

	s.squawks = append(s.squawks, sq)
	s.recompute()
	return sq.Clone(), nil
}

// SquawkUpdate is a partial update; nil fields are left untouched.
type SquawkUpdate struct {
	Priority           *constants.Priority
	Status             *constants.SquawkStatus
	Description        *string
	PilotAction        *string
	RequiresInspection *bool
	Notes              *string
	PartsUsed          *[]entities.PartUsed
	Attachments        *[]string
	Stage              *constants.Stage
	StageNotes         string
}

// UpdateSquawk applies a partial update. Status may not be set to deferred
// here (that is the deferral engine's job), and a squawk with an active
// deferral can only leave it via ClearDeferral. Closing requires an actor
// and stamps the closure fields plus a terminal lifecycle stage.
func (s *Store) UpdateSquawk(id string, upd SquawkUpdate, actor string) (entities.Squawk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findSquawk(id)
	if !ok {
		return entities.Squawk{}, &NotFoundError{Entity: "squawk", ID: id}
	}
	cur := s.squawks[i]
	if cur.Status == constants.SquawkClosed {
		return entities.Squawk{}, &ValidationError{Field: "status", Reason: "squawk is closed"}
	}

	now := s.now()
	next := cur.Clone()

	if upd.Priority != nil {
		if _, err := constants.ParsePriority(string(*upd.Priority)); err != nil {
			return entities.Squawk{}, &ValidationError{Field: "priority", Reason: err.Error()}
		}
		next.Priority = *upd.Priority
	}
	if upd.Description != nil {
		if *upd.Description == "" {
			return entities.Squawk{}, &ValidationError{Field: "description", Reason: "required"}
		}
		next.Description = *upd.Description
	}
	if upd.PilotAction != nil {
		next.PilotAction = *upd.PilotAction
	}
	if upd.RequiresInspection != nil {
		next.RequiresInspection = *upd.RequiresInspection
	}
	if upd.Notes != nil {
		next.Notes = *upd.Notes
	}
	if upd.PartsUsed != nil {
		next.PartsUsed = append([]entities.PartUsed(nil), (*upd.PartsUsed)...)
	}
	if upd.Attachments != nil {
		next.Attachments = append([]string(nil), (*upd.Attachments)...)
	}

	if upd.Stage != nil {
		// The deferred branch carries a MEL/CDL record; only the deferral
		// engine may enter it.
		if *upd.Stage == constants.StageDeferred {
			return entities.Squawk{}, &ValidationError{Field: "stage", Reason: "defer through the deferral engine"}
		}
		ls, err := advanceLifecycle(next.Lifecycle, *upd.Stage, actor, upd.StageNotes, now)
		if err != nil {
			return entities.Squawk{}, err
		}
		next.Lifecycle = ls
	}

	if upd.Status != nil {
		switch *upd.Status {
		case constants.SquawkDeferred:
			return entities.Squawk{}, &ValidationError{Field: "status", Reason: "defer through the deferral engine"}
		case constants.SquawkClosed:
			if cur.Deferral != nil {
				return entities.Squawk{}, &ValidationError{Field: "status", Reason: "clear the deferral to close this squawk"}
			}
			if actor == "" {
				return entities.Squawk{}, &ValidationError{Field: "closedBy", Reason: "required"}
			}
			if !terminalStage(next.Lifecycle.Current) {
				ls, err := advanceLifecycle(next.Lifecycle, constants.StageCompleted, actor, "", now)
				if err != nil {
					return entities.Squawk{}, err
				}
				next.Lifecycle = ls
			}
			next.Status = constants.SquawkClosed
			next.ClosedBy = actor
			next.ClosedAt = &now
		case constants.SquawkOpen:
			if cur.Status != constants.SquawkOpen {
				return entities.Squawk{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("cannot reopen from %s", cur.Status)}
			}
		case constants.SquawkDuplicate:
			next.Status = constants.SquawkDuplicate
		default:
			return entities.Squawk{}, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", *upd.Status)}
		}
	}

	s.commitSquawk(i, next)
	return next.Clone(), nil
}

// commitSquawk replaces one squawk copy-on-write and refreshes the derived
// views. Caller holds the write lock and has fully validated next.
func (s *Store) commitSquawk(i int, next entities.Squawk) {
	checkSquawkInvariants(next)
	updated := make([]entities.Squawk, len(s.squawks))
	copy(updated, s.squawks)
	updated[i] = next
	s.squawks = updated
	s.recompute()
}

// checkSquawkInvariants guards the store's consistency rules. A failure
// here is a programming defect, not caller input.
func checkSquawkInvariants(sq entities.Squawk) {
	if (sq.Status == constants.SquawkDeferred) != (sq.Deferral != nil) {
		panic(fmt.Sprintf("invariant broken: squawk %s status %q with deferral=%v", sq.ID, sq.Status, sq.Deferral != nil))
	}
	if sq.Status == constants.SquawkClosed {
		if sq.ClosedAt == nil || sq.ClosedBy == "" {
			panic(fmt.Sprintf("invariant broken: closed squawk %s missing closure fields", sq.ID))
		}
		if !terminalStage(sq.Lifecycle.Current) {
			panic(fmt.Sprintf("invariant broken: closed squawk %s in stage %q", sq.ID, sq.Lifecycle.Current))
		}
	}
}
