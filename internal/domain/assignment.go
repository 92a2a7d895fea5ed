package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Assignment binds one discount strategy to one owner for one station. An
// owner never holds two assignments for the same station.
type Assignment struct {
	Strategy   Strategy
	Station    *Station
	AssignedAt time.Time
}

func (a Assignment) Apply(baseFare decimal.Decimal) decimal.Decimal {
	return a.Strategy.Apply(a.Station, baseFare)
}

// Label renders the strategy for display, e.g. "Exonerado (100%)".
func (a Assignment) Label() string {
	return a.Strategy.Name() + " (" + a.Strategy.Percentage() + ")"
}
