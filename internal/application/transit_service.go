package application

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
)

// TransitService owns the station registry and the append-only transit
// ledger, and orchestrates the crossing flow: state check, fare resolution,
// payment, record, notifications.
type TransitService struct {
	mu       sync.Mutex
	stations []*domain.Station
	ledger   []*domain.Transit

	bus *domain.Observable
	log *zap.Logger
}

func NewTransitService(bus *domain.Observable, log *zap.Logger) *TransitService {
	return &TransitService{bus: bus, log: log}
}

func (s *TransitService) AddStation(station *domain.Station) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = append(s.stations, station)
}

func (s *TransitService) Stations() []*domain.Station {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Station, len(s.stations))
	copy(out, s.stations)
	return out
}

func (s *TransitService) FindStation(name string) (*domain.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, station := range s.stations {
		if station.Name == name {
			return station, nil
		}
	}
	return nil, domain.ErrStationNotFound
}

func (s *TransitService) Fares(station *domain.Station) []domain.Fare {
	return station.Fares()
}

// Register processes one crossing. Nothing is recorded and no notification
// fires unless every step up to the payment succeeded.
func (s *TransitService) Register(station *domain.Station, vehicle *domain.Vehicle, owner *domain.Owner, at time.Time) (*domain.Transit, error) {
	if station == nil {
		return nil, domain.ErrStationRequired
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleRequired
	}
	if owner == nil {
		return nil, domain.ErrOwnerRequired
	}

	if !owner.CanTransit() {
		return nil, &domain.ForbiddenTransitError{State: owner.State()}
	}

	fare := vehicle.FareAt(station)
	if fare == nil {
		return nil, domain.ErrNoFareDefined
	}

	paid, err := owner.ProcessPayment(station, fare.Amount)
	if err != nil {
		return nil, err
	}

	// Recomputed post-payment for record keeping; payment never alters
	// assignments, so the value is stable.
	assignment := owner.ApplicableAssignment(station)

	transit := &domain.Transit{
		ID:         uuid.NewString(),
		Station:    station,
		Vehicle:    vehicle,
		Owner:      owner,
		Assignment: assignment,
		AmountPaid: paid,
		At:         at,
	}

	s.mu.Lock()
	s.ledger = append(s.ledger, transit)
	s.mu.Unlock()

	owner.NotifyTransit(station, vehicle, at)
	if owner.BelowAlertThreshold() {
		owner.NotifyLowBalance(at)
	}

	// System-wide broadcast happens regardless of the owner's notification
	// eligibility.
	s.bus.Notify(domain.EventTransitRegistered)

	s.log.Info("transit registered",
		zap.String("transit_id", transit.ID),
		zap.String("station", station.Name),
		zap.String("plate", vehicle.Plate),
		zap.String("owner_id", owner.ID),
		zap.String("paid", paid.StringFixed(2)))

	return transit, nil
}

// TransitsForOwner returns the owner's crossings newest first.
func (s *TransitService) TransitsForOwner(owner *domain.Owner) []*domain.Transit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Transit, 0)
	for _, transit := range s.ledger {
		if transit.Owner == owner {
			out = append(out, transit)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.After(out[j].At)
	})
	return out
}

func (s *TransitService) CountForVehicle(owner *domain.Owner, vehicle *domain.Vehicle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, transit := range s.ledger {
		if transit.Owner == owner && transit.Vehicle == vehicle {
			count++
		}
	}
	return count
}

func (s *TransitService) TotalSpentForVehicle(owner *domain.Owner, vehicle *domain.Vehicle) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, transit := range s.ledger {
		if transit.Owner == owner && transit.Vehicle == vehicle {
			total = total.Add(transit.AmountPaid)
		}
	}
	return total
}
