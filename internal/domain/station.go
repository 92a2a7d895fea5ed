package domain

import "github.com/shopspring/decimal"

// Category classifies vehicles for fare lookup ("A/Auto", "B/Camioneta",
// "C/Camión"). Value-like, compared by name.
type Category struct {
	Name string
}

func (c Category) Equal(other Category) bool {
	return c.Name == other.Name
}

type Fare struct {
	Category Category
	Amount   decimal.Decimal
}

// Station is a toll station with its per-category fare table.
type Station struct {
	Name    string
	Address string
	fares   []Fare
}

func NewStation(name, address string) *Station {
	return &Station{Name: name, Address: address}
}

// AddFare appends to the fare table. Duplicate categories are permitted by
// construction; keeping the table free of them is a loader responsibility.
func (s *Station) AddFare(category Category, amount decimal.Decimal) {
	s.fares = append(s.fares, Fare{Category: category, Amount: amount})
}

// FareFor returns the first fare matching the category, or nil when none is
// defined.
func (s *Station) FareFor(category Category) *Fare {
	for i := range s.fares {
		if s.fares[i].Category.Equal(category) {
			return &s.fares[i]
		}
	}
	return nil
}

func (s *Station) Fares() []Fare {
	out := make([]Fare, len(s.fares))
	copy(out, s.fares)
	return out
}
