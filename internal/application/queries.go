package application

import (
	"fmt"

	"github.com/bnema/toll-backoffice/internal/domain"
)

// Dashboard is the read-side snapshot of one owner, consumed by render
// adapters. The engine signals that something changed; adapters pull this
// projection and serialize it themselves.
type Dashboard struct {
	Owner         *domain.Owner
	Transits      []*domain.Transit
	Notifications []domain.Notification
}

func (e *Engine) OwnerDashboard(id string) (Dashboard, error) {
	owner, err := e.Owners.Find(id)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load owner dashboard: %w", err)
	}

	return Dashboard{
		Owner:         owner,
		Transits:      e.Transits.TransitsForOwner(owner),
		Notifications: e.Notifications.For(owner),
	}, nil
}
