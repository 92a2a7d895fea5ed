package domain

// Vehicle is created once and immutable thereafter. OwnerID is a non-owning
// back-reference; the owner holds the vehicle, never the other way around.
type Vehicle struct {
	Plate    string
	Model    string
	Color    string
	Category Category
	OwnerID  string
}

func NewVehicle(plate, model, color string, category Category) *Vehicle {
	return &Vehicle{Plate: plate, Model: model, Color: color, Category: category}
}

// FareAt resolves the vehicle's fare at a station by its category.
func (v *Vehicle) FareAt(station *Station) *Fare {
	return station.FareFor(v.Category)
}
