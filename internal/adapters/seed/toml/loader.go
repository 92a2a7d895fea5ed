package toml

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/bnema/toll-backoffice/internal/application"
	"github.com/bnema/toll-backoffice/internal/domain"
)

// Load reads and decodes a seed file.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	return &seed, nil
}

// Apply feeds the seed into the engine through its regular operations, so
// every registration invariant holds for seeded data too. Duplicate fare
// categories per station are rejected here: the engine's fare lookup is
// first-match and relies on loaders keeping the table clean.
func Apply(engine *application.Engine, seed *Seed) error {
	for _, entry := range seed.Administrators {
		admin := domain.NewAdministrator(entry.ID, entry.Secret, entry.Name)
		if err := engine.Owners.RegisterAdministrator(admin); err != nil {
			return fmt.Errorf("seed administrator %q: %w", entry.ID, err)
		}
	}

	for _, entry := range seed.Stations {
		station := domain.NewStation(entry.Name, entry.Address)
		seen := make(map[string]struct{}, len(entry.Fares))
		for _, fare := range entry.Fares {
			if _, dup := seen[fare.Category]; dup {
				return fmt.Errorf("seed station %q: duplicate fare for category %q", entry.Name, fare.Category)
			}
			seen[fare.Category] = struct{}{}

			amount, err := decimal.NewFromString(fare.Amount)
			if err != nil {
				return fmt.Errorf("seed station %q: parse fare amount %q: %w", entry.Name, fare.Amount, err)
			}
			station.AddFare(domain.Category{Name: fare.Category}, amount)
		}
		engine.Transits.AddStation(station)
	}

	for _, entry := range seed.Owners {
		if err := applyOwner(engine, entry); err != nil {
			return err
		}
	}

	return nil
}

func applyOwner(engine *application.Engine, entry OwnerSchema) error {
	balance, err := decimal.NewFromString(entry.Balance)
	if err != nil {
		return fmt.Errorf("seed owner %q: parse balance %q: %w", entry.ID, entry.Balance, err)
	}
	threshold, err := decimal.NewFromString(entry.AlertThreshold)
	if err != nil {
		return fmt.Errorf("seed owner %q: parse alert threshold %q: %w", entry.ID, entry.AlertThreshold, err)
	}

	owner := domain.NewOwner(entry.ID, entry.Secret, entry.Name, balance, threshold)
	if err := engine.Owners.RegisterOwner(owner); err != nil {
		return fmt.Errorf("seed owner %q: %w", entry.ID, err)
	}

	// Owners start Enabled; a differing seed state goes through the regular
	// transition, state-change notification included.
	if entry.State != "" {
		state, err := domain.ParseState(entry.State)
		if err != nil {
			return fmt.Errorf("seed owner %q: %w", entry.ID, err)
		}
		if state != domain.StateEnabled {
			if err := engine.Owners.ChangeState(owner, state); err != nil {
				return fmt.Errorf("seed owner %q: %w", entry.ID, err)
			}
		}
	}

	for _, v := range entry.Vehicles {
		vehicle := domain.NewVehicle(v.Plate, v.Model, v.Color, domain.Category{Name: v.Category})
		if err := engine.Vehicles.Register(owner, vehicle); err != nil {
			return fmt.Errorf("seed vehicle %q: %w", v.Plate, err)
		}
	}

	for _, a := range entry.Assignments {
		station, err := engine.Transits.FindStation(a.Station)
		if err != nil {
			return fmt.Errorf("seed assignment for owner %q: %w", entry.ID, err)
		}
		strategy, err := domain.ParseStrategy(a.Strategy)
		if err != nil {
			return fmt.Errorf("seed assignment for owner %q: %w", entry.ID, err)
		}
		if err := engine.Bonifications.AssignWithValidation(owner, strategy, station); err != nil {
			return fmt.Errorf("seed assignment for owner %q: %w", entry.ID, err)
		}
	}

	return nil
}
