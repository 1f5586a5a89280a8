package store

import (
	"fmt"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/entities"
)

const (
	patternWindow    = 30 * day
	patternThreshold = 3
	longRunningAfter = 48 * time.Hour
	overdueCritical  = 3 * day
)

// detectPatterns flags recurring discrepancies: three or more unresolved
// squawks on the same ATA chapter and tail reported inside a 30 day window.
// A squawk already flagged keeps its original detection record.
func (s *Store) detectPatterns(now time.Time) {
	type group struct {
		indexes []int
		ids     []string
	}
	groups := map[string]*group{}
	for i := range s.squawks {
		sq := &s.squawks[i]
		if sq.Status == constants.SquawkClosed {
			continue
		}
		if now.Sub(sq.ReportedAt) > patternWindow {
			continue
		}
		key := sq.ATAChapter + "|" + sq.AircraftTail
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.indexes = append(g.indexes, i)
		g.ids = append(g.ids, sq.ID)
	}

	var updated []entities.Squawk
	for _, g := range groups {
		if len(g.indexes) < patternThreshold {
			continue
		}
		for _, i := range g.indexes {
			if s.squawks[i].PatternDetected {
				continue
			}
			if updated == nil {
				updated = make([]entities.Squawk, len(s.squawks))
				copy(updated, s.squawks)
			}
			next := updated[i].Clone()
			next.PatternDetected = true
			next.PatternInfo = &entities.PatternInfo{
				DetectedAt:     now,
				SimilarSquawks: append([]string(nil), g.ids...),
				ATAChapter:     next.ATAChapter,
				Aircraft:       next.AircraftTail,
				Frequency:      len(g.ids),
				Recommendation: "Recommend deeper investigation - recurring issue detected",
			}
			updated[i] = next
		}
	}
	if updated != nil {
		s.squawks = updated
	}
}

// generateAlerts rescans the collections and rebuilds the alert list from
// scratch. IDs are derived from the triggering entity so an external read
// marker keyed by alert ID survives regeneration.
func generateAlerts(squawks []entities.Squawk, workOrders []entities.WorkOrder, now time.Time) []entities.Notification {
	var alerts []entities.Notification
	add := func(id string, typ constants.AlertType, message, entity, entityID, action string) {
		alerts = append(alerts, entities.Notification{
			ID:              id,
			Type:            typ,
			Message:         message,
			RelatedEntity:   entity,
			RelatedEntityID: entityID,
			SentAt:          now,
			ActionRequired:  action,
		})
	}

	seenPatterns := map[string]bool{}
	for i := range squawks {
		sq := &squawks[i]
		// Only closed squawks drop out. A duplicate critical still grounds
		// the aircraft, so its alert stays to explain the grounding.
		if sq.Status == constants.SquawkClosed {
			continue
		}

		if sq.Priority == constants.PriorityCritical {
			add("sq-"+sq.ID, constants.AlertCritical,
				fmt.Sprintf("Critical squawk on %s: %s", sq.AircraftTail, sq.Description),
				"squawk", sq.ID, "Immediate attention required")
		}

		if sq.Deferral != nil {
			remaining := DaysRemaining(sq.Deferral.ExpiryDate, now)
			switch DeferralAlertStatus(remaining) {
			case constants.AlertLevelExpired:
				add("def-expired-"+sq.ID, constants.AlertCritical,
					fmt.Sprintf("Deferral %s on %s has expired", sq.Deferral.MELReference, sq.AircraftTail),
					"squawk", sq.ID, "Repair or re-defer before next flight")
			case constants.AlertLevelCritical:
				add("def-expiring-"+sq.ID, constants.AlertWarning,
					fmt.Sprintf("Deferral %s on %s expires in %d day(s)", sq.Deferral.MELReference, sq.AircraftTail, remaining),
					"squawk", sq.ID, "Schedule repair before expiry")
			}
		}

		if sq.PatternDetected && sq.PatternInfo != nil {
			key := sq.PatternInfo.ATAChapter + "|" + sq.PatternInfo.Aircraft
			if !seenPatterns[key] {
				seenPatterns[key] = true
				add("pattern-"+sq.PatternInfo.ATAChapter+"-"+sq.PatternInfo.Aircraft, constants.AlertWarning,
					fmt.Sprintf("Recurring issue pattern detected: %d similar squawks on ATA %s (%s)",
						sq.PatternInfo.Frequency, sq.PatternInfo.ATAChapter, sq.PatternInfo.Aircraft),
					"pattern", key, "Investigate root cause")
			}
		}
	}

	for i := range workOrders {
		wo := &workOrders[i]
		if !wo.IsOpen() {
			continue
		}

		if wo.DueDate.Before(now) {
			overdue := now.Sub(wo.DueDate)
			typ := constants.AlertWarning
			if overdue >= overdueCritical {
				typ = constants.AlertCritical
			}
			add("wo-overdue-"+wo.ID, typ,
				fmt.Sprintf("Work order %s on %s is %d day(s) overdue", wo.ID, wo.TailNumber, int(overdue/day)),
				"workorder", wo.ID, "Reschedule or escalate")
		}

		if wo.Status == constants.WorkOrderInProgress {
			started := wo.Lifecycle.StageEnteredAt(constants.StageInProgress)
			if started.IsZero() && wo.StartDate != nil {
				started = *wo.StartDate
			}
			if !started.IsZero() && now.Sub(started) > longRunningAfter {
				add("wo-long-"+wo.ID, constants.AlertInfo,
					fmt.Sprintf("Work order %s has been in progress for %.0f hours", wo.ID, now.Sub(started).Hours()),
					"workorder", wo.ID, "")
			}
		}
	}

	return alerts
}
