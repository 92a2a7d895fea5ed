package application

import (
	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
	"github.com/bnema/toll-backoffice/internal/ports"
)

// Engine aggregates the five back-office services behind one composition
// root, constructed once at process start and passed by reference. System
// level events (TransitRegistered) fan out on the engine-wide bus; per-owner
// events fan out on each owner's own observer list.
type Engine struct {
	Owners        *OwnerService
	Vehicles      *VehicleService
	Transits      *TransitService
	Bonifications *BonificationService
	Notifications *NotificationService

	bus *domain.Observable
}

func NewEngine(log *zap.Logger, clock ports.Clock) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	bus := &domain.Observable{}

	return &Engine{
		Owners:        NewOwnerService(log, clock),
		Vehicles:      NewVehicleService(log),
		Transits:      NewTransitService(bus, log),
		Bonifications: NewBonificationService(log, clock),
		Notifications: NewNotificationService(log),
		bus:           bus,
	}
}

// Subscribe registers an observer for system-wide events.
func (e *Engine) Subscribe(obs domain.Observer) { e.bus.Subscribe(obs) }

func (e *Engine) Unsubscribe(obs domain.Observer) { e.bus.Unsubscribe(obs) }
