package toml

// Seed is the on-disk TOML layout for bootstrapping an engine run. Money
// amounts are strings so they survive decimal parsing untouched.
type Seed struct {
	Administrators []AdministratorSchema `toml:"administrators"`
	Stations       []StationSchema       `toml:"stations"`
	Owners         []OwnerSchema         `toml:"owners"`
	Transits       []TransitSchema       `toml:"transits"`
}

type AdministratorSchema struct {
	ID     string `toml:"id"`
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type StationSchema struct {
	Name    string       `toml:"name"`
	Address string       `toml:"address"`
	Fares   []FareSchema `toml:"fares"`
}

type FareSchema struct {
	Category string `toml:"category"`
	Amount   string `toml:"amount"`
}

type OwnerSchema struct {
	ID             string             `toml:"id"`
	Secret         string             `toml:"secret"`
	Name           string             `toml:"name"`
	Balance        string             `toml:"balance"`
	AlertThreshold string             `toml:"alert_threshold"`
	State          string             `toml:"state"`
	Vehicles       []VehicleSchema    `toml:"vehicles"`
	Assignments    []AssignmentSchema `toml:"assignments"`
}

type VehicleSchema struct {
	Plate    string `toml:"plate"`
	Model    string `toml:"model"`
	Color    string `toml:"color"`
	Category string `toml:"category"`
}

type AssignmentSchema struct {
	Station  string `toml:"station"`
	Strategy string `toml:"strategy"`
}

// TransitSchema is a scripted crossing consumed by `toll simulate`.
type TransitSchema struct {
	Station string `toml:"station"`
	Plate   string `toml:"plate"`
	At      string `toml:"at"`
}
