package application

import (
	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
	"github.com/bnema/toll-backoffice/internal/ports"
)

// BonificationService validates and records discount-to-station assignments.
type BonificationService struct {
	strategies []domain.Strategy

	log   *zap.Logger
	clock ports.Clock
}

func NewBonificationService(log *zap.Logger, clock ports.Clock) *BonificationService {
	return &BonificationService{
		strategies: domain.Strategies(),
		log:        log,
		clock:      clock,
	}
}

func (s *BonificationService) Strategies() []domain.Strategy {
	out := make([]domain.Strategy, len(s.strategies))
	copy(out, s.strategies)
	return out
}

// Assign records the binding without validation; callers that need the
// business checks go through AssignWithValidation.
func (s *BonificationService) Assign(owner *domain.Owner, station *domain.Station, strategy domain.Strategy) {
	if owner == nil || station == nil || strategy == nil {
		return
	}

	owner.AddAssignment(domain.Assignment{
		Strategy:   strategy,
		Station:    station,
		AssignedAt: s.clock.Now(),
	})

	s.log.Info("bonification assigned",
		zap.String("owner_id", owner.ID),
		zap.String("station", station.Name),
		zap.String("strategy", strategy.Name()))
}

// AssignWithValidation applies the business checks in order: owner,
// strategy, station present; owner state admits assignments; no existing
// assignment for the station.
func (s *BonificationService) AssignWithValidation(owner *domain.Owner, strategy domain.Strategy, station *domain.Station) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}
	if strategy == nil {
		return domain.ErrStrategyRequired
	}
	if station == nil {
		return domain.ErrStationRequired
	}
	if !owner.CanBeAssignedDiscount() {
		return domain.ErrAssignmentsForbidden
	}
	if s.HasAssignment(owner, station) {
		return &domain.DuplicateAssignmentError{Station: station.Name}
	}

	s.Assign(owner, station, strategy)
	return nil
}

func (s *BonificationService) AssignmentFor(owner *domain.Owner, station *domain.Station) *domain.Assignment {
	if owner == nil || station == nil {
		return nil
	}
	return owner.AssignmentFor(station)
}

func (s *BonificationService) HasAssignment(owner *domain.Owner, station *domain.Station) bool {
	return s.AssignmentFor(owner, station) != nil
}
