package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transit is the immutable record of a single toll crossing. AmountPaid is
// the fare after discount, zero exactly when the applied strategy is Exempt.
type Transit struct {
	ID         string
	Station    *Station
	Vehicle    *Vehicle
	Owner      *Owner
	Assignment *Assignment
	AmountPaid decimal.Decimal
	At         time.Time
}

// BaseFare looks the station fare back up from the vehicle category. Returns
// zero when the fare has since been removed from the table.
func (t *Transit) BaseFare() decimal.Decimal {
	if fare := t.Vehicle.FareAt(t.Station); fare != nil {
		return fare.Amount
	}
	return decimal.Zero
}

// DiscountAmount is how much the applied assignment saved on this crossing.
func (t *Transit) DiscountAmount() decimal.Decimal {
	return t.BaseFare().Sub(t.AmountPaid)
}

// DiscountLabel renders the applied assignment for display.
func (t *Transit) DiscountLabel() string {
	if t.Assignment == nil {
		return "Sin bonificación"
	}
	return t.Assignment.Label()
}
