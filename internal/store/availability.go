package store

import (
	"sort"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

// returnToServiceEstimate is the planning figure quoted for a grounded
// aircraft until a real repair estimate exists.
const returnToServiceEstimate = 12 * time.Hour

// computeAvailability derives the per-aircraft fleet view. Every tail seen
// on a squawk or work order gets a row, even when all its discrepancies are
// closed. An aircraft is grounded while any unresolved critical squawk
// exists, limited while it flies under deferrals, and available otherwise.
func computeAvailability(squawks []entities.Squawk, workOrders []entities.WorkOrder, now time.Time) []entities.AircraftAvailability {
	byTail := map[string]*entities.AircraftAvailability{}
	row := func(tail, aircraftID string) *entities.AircraftAvailability {
		if tail == "" {
			return nil
		}
		a, ok := byTail[tail]
		if !ok {
			a = &entities.AircraftAvailability{
				Tail:   tail,
				Status: constants.AircraftAvailable,
			}
			byTail[tail] = a
		}
		if a.AircraftID == "" {
			a.AircraftID = aircraftID
		}
		return a
	}

	for i := range squawks {
		sq := &squawks[i]
		a := row(sq.AircraftTail, sq.AircraftID)
		if a == nil {
			continue
		}
		switch sq.Status {
		case constants.SquawkClosed:
			continue
		case constants.SquawkOpen:
			a.OpenSquawks++
		case constants.SquawkDeferred:
			a.DeferredSquawks++
			if sq.Deferral != nil {
				a.CurrentLimitations = append(a.CurrentLimitations, sq.Deferral.OperationalLimitations...)
			}
		}
		// Everything not closed counts toward grounding, duplicates
		// included: the discrepancy is still on the aircraft.
		if sq.Priority == constants.PriorityCritical {
			a.CriticalSquawks++
		}
	}

	for i := range workOrders {
		row(workOrders[i].TailNumber, "")
	}

	out := make([]entities.AircraftAvailability, 0, len(byTail))
	for _, a := range byTail {
		switch {
		case a.CriticalSquawks > 0:
			a.Status = constants.AircraftGrounded
			eta := now.Add(returnToServiceEstimate)
			a.EstimatedReturnToService = &eta
		case a.DeferredSquawks > 0:
			a.Status = constants.AircraftLimited
		}
		a.CurrentLimitations = dedupeStrings(a.CurrentLimitations)
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tail < out[j].Tail })
	return out
}

// dedupeStrings removes duplicates preserving first-seen order.
func dedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
