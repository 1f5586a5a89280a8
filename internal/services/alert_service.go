package services

import (
	"context"
	"time"

	"hangar-next/mxops/internal/constants"
	"hangar-next/mxops/internal/models/dtos"
	"hangar-next/mxops/internal/store"
)

// Read markers outlive any plausible alert; stale ones age out on TTL.
const readMarkerTTL = 7 * 24 * time.Hour

// AlertService decorates the store's regenerated alert list with read
// markers. Alert IDs are stable across regeneration, so a read marker in
// the cache survives until the underlying condition clears and takes the
// alert with it.
type AlertService struct {
	store *store.Store
	books *Bookkeeper
}

func NewAlertService(st *store.Store, books *Bookkeeper) *AlertService {
	return &AlertService{
		store: st,
		books: books,
	}
}

func (s *AlertService) ListAlerts() []dtos.AlertView {
	alerts := s.store.Notifications()
	views := make([]dtos.AlertView, 0, len(alerts))
	for _, alert := range alerts {
		read := false
		if v, ok := s.books.cache.Get(readMarkerKey(alert.ID)); ok {
			read, _ = v.(bool)
		}
		views = append(views, dtos.AlertView{
			Notification: alert,
			Read:         read,
		})
	}
	return views
}

// MarkRead flips the read marker for one alert. The alert must currently
// exist; markers for vanished alerts would otherwise pile up forever.
func (s *AlertService) MarkRead(ctx context.Context, alertID string, read bool) error {
	found := false
	for _, alert := range s.store.Notifications() {
		if alert.ID == alertID {
			found = true
			break
		}
	}
	if !found {
		return &store.NotFoundError{Entity: "alert", ID: alertID}
	}

	if read {
		s.books.cache.Set(readMarkerKey(alertID), true, readMarkerTTL)
	} else {
		s.books.cache.Delete(readMarkerKey(alertID))
	}
	return nil
}

func readMarkerKey(alertID string) string {
	return string(constants.CachePrefixAlertRead) + alertID
}
