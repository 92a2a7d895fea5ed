package application

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
)

// VehicleService keeps the system-wide vehicle registry. Plates are unique
// case-insensitively.
type VehicleService struct {
	mu       sync.Mutex
	vehicles []*domain.Vehicle

	log *zap.Logger
}

func NewVehicleService(log *zap.Logger) *VehicleService {
	return &VehicleService{log: log}
}

func (s *VehicleService) Register(owner *domain.Owner, vehicle *domain.Vehicle) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}
	if vehicle == nil {
		return domain.ErrVehicleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.vehicles {
		if strings.EqualFold(existing.Plate, vehicle.Plate) {
			return domain.ErrDuplicatePlate
		}
	}

	owner.AddVehicle(vehicle)
	s.vehicles = append(s.vehicles, vehicle)

	s.log.Info("vehicle registered",
		zap.String("plate", vehicle.Plate),
		zap.String("owner_id", owner.ID))
	return nil
}

func (s *VehicleService) FindByPlate(plate string) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vehicle := range s.vehicles {
		if strings.EqualFold(vehicle.Plate, plate) {
			return vehicle, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (s *VehicleService) Vehicles() []*domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}
