package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy is a pluggable fare-reduction rule. Adding a new strategy only
// requires implementing these three operations; no other component changes.
type Strategy interface {
	// Apply returns the amount the owner pays for a crossing at the station
	// given the base fare.
	Apply(station *Station, baseFare decimal.Decimal) decimal.Decimal
	Name() string
	// Percentage is the discount size as shown to users, e.g. "50%".
	Percentage() string
}

type Exempt struct{}

func (Exempt) Apply(_ *Station, _ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

func (Exempt) Name() string       { return "Exonerado" }
func (Exempt) Percentage() string { return "100%" }

// Frequent halves the fare. Eligibility ("second crossing of the day") is a
// caller-side policy; the strategy applies unconditionally once assigned.
type Frequent struct{}

func (Frequent) Apply(_ *Station, baseFare decimal.Decimal) decimal.Decimal {
	return baseFare.Mul(decimal.NewFromFloat(0.5))
}

func (Frequent) Name() string       { return "Frecuente" }
func (Frequent) Percentage() string { return "50%" }

// Worker leaves 20% of the fare to pay, an 80% discount. Like Frequent, it
// applies unconditionally once assigned.
type Worker struct{}

func (Worker) Apply(_ *Station, baseFare decimal.Decimal) decimal.Decimal {
	return baseFare.Mul(decimal.NewFromFloat(0.20))
}

func (Worker) Name() string       { return "Trabajador" }
func (Worker) Percentage() string { return "80%" }

// Strategies lists the catalog in presentation order.
func Strategies() []Strategy {
	return []Strategy{Exempt{}, Frequent{}, Worker{}}
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown discount strategy %q", name)
}
