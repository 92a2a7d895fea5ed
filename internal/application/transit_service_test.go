package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toll-backoffice/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(nil, fixedClock{now: testNow})
}

type fixture struct {
	engine   *Engine
	stationX *domain.Station
	stationY *domain.Station
	owner    *domain.Owner
	vehicle  *domain.Vehicle
}

// newFixture builds a seeded engine: two stations with Auto fares of 120 and
// 144, one enabled owner with balance 2000, alert threshold 500, one Auto.
func newFixture(t *testing.T) fixture {
	t.Helper()
	engine := newTestEngine(t)

	stationX := domain.NewStation("Puesto X", "Ruta 1 km 20")
	stationX.AddFare(domain.Category{Name: "Auto"}, decimal.NewFromInt(120))
	engine.Transits.AddStation(stationX)

	stationY := domain.NewStation("Puesto Y", "Ruta 5 km 80")
	stationY.AddFare(domain.Category{Name: "Auto"}, decimal.NewFromInt(144))
	engine.Transits.AddStation(stationY)

	owner := domain.NewOwner("100", "pw", "Ana García",
		decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	vehicle := domain.NewVehicle("ABC123", "Corolla", "Gris", domain.Category{Name: "Auto"})
	require.NoError(t, engine.Vehicles.Register(owner, vehicle))

	return fixture{
		engine:   engine,
		stationX: stationX,
		stationY: stationY,
		owner:    owner,
		vehicle:  vehicle,
	}
}

func TestRegisterTransitWithExemptDiscount(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.engine.Bonifications.AssignWithValidation(f.owner, domain.Exempt{}, f.stationX))

	transit, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)

	require.NoError(t, err)
	assert.True(t, transit.AmountPaid.IsZero())
	assert.Equal(t, "2000.00", f.owner.Balance().StringFixed(2))
	assert.Equal(t, "Exonerado (100%)", transit.DiscountLabel())
	assert.Equal(t, "120.00", transit.DiscountAmount().StringFixed(2))
	assert.NotEmpty(t, transit.ID)

	notifications := f.owner.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Pasaste por el puesto Puesto X con el vehículo ABC123", notifications[0].Message)
}

func TestRegisterTransitWithoutDiscount(t *testing.T) {
	f := newFixture(t)

	transit, err := f.engine.Transits.Register(f.stationY, f.vehicle, f.owner, testNow)

	require.NoError(t, err)
	assert.Equal(t, "144.00", transit.AmountPaid.StringFixed(2))
	assert.Equal(t, "1856.00", f.owner.Balance().StringFixed(2))
	assert.Equal(t, "Sin bonificación", transit.DiscountLabel())

	// 1856 is still above the alert threshold; only the crossing is recorded.
	notifications := f.owner.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Pasaste por el puesto Puesto Y con el vehículo ABC123", notifications[0].Message)
}

func TestRegisterTransitLowBalanceReminder(t *testing.T) {
	f := newFixture(t)
	owner := domain.NewOwner("200", "pw", "Bruno Díaz",
		decimal.NewFromInt(200), decimal.NewFromInt(500))
	require.NoError(t, f.engine.Owners.RegisterOwner(owner))
	vehicle := domain.NewVehicle("XYZ789", "Gol", "Rojo", domain.Category{Name: "Auto"})
	require.NoError(t, f.engine.Vehicles.Register(owner, vehicle))

	_, err := f.engine.Transits.Register(f.stationX, vehicle, owner, testNow)

	require.NoError(t, err)
	assert.Equal(t, "80.00", owner.Balance().StringFixed(2))

	notifications := owner.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "Pasaste por el puesto Puesto X con el vehículo XYZ789", notifications[0].Message)
	assert.Equal(t, "Tu saldo actual es de $ 80.00 Te recomendamos hacer una recarga", notifications[1].Message)
}

func TestRegisterTransitInsufficientBalance(t *testing.T) {
	f := newFixture(t)
	owner := domain.NewOwner("200", "pw", "Bruno Díaz",
		decimal.NewFromInt(50), decimal.NewFromInt(100))
	require.NoError(t, f.engine.Owners.RegisterOwner(owner))
	vehicle := domain.NewVehicle("XYZ789", "Gol", "Rojo", domain.Category{Name: "Auto"})
	require.NoError(t, f.engine.Vehicles.Register(owner, vehicle))

	_, err := f.engine.Transits.Register(f.stationX, vehicle, owner, testNow)

	var insufficient *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Saldo insuficiente: 50.00", err.Error())
	assert.Equal(t, "50.00", owner.Balance().StringFixed(2))
	assert.Empty(t, f.engine.Transits.TransitsForOwner(owner))
	assert.Empty(t, owner.Notifications())
}

func TestRegisterTransitForbiddenStates(t *testing.T) {
	tests := []struct {
		name  string
		state domain.State
	}{
		{name: "disabled", state: domain.StateDisabled},
		{name: "suspended", state: domain.StateSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.engine.Owners.ChangeState(f.owner, tt.state))

			_, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)

			var forbidden *domain.ForbiddenTransitError
			require.ErrorAs(t, err, &forbidden)
			assert.Equal(t, tt.state, forbidden.State)
			assert.Equal(t, "2000.00", f.owner.Balance().StringFixed(2))
			assert.Empty(t, f.engine.Transits.TransitsForOwner(f.owner))
		})
	}
}

func TestRegisterTransitPenalizedPaysFullFareSilently(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.engine.Bonifications.AssignWithValidation(f.owner, domain.Exempt{}, f.stationX))
	require.NoError(t, f.engine.Owners.ChangeState(f.owner, domain.StatePenalized))
	// Drop the state-change notification to observe the crossing in isolation.
	f.owner.ClearNotifications()

	transit, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)

	require.NoError(t, err)
	assert.Equal(t, "120.00", transit.AmountPaid.StringFixed(2))
	assert.Equal(t, "1880.00", f.owner.Balance().StringFixed(2))
	assert.Nil(t, transit.Assignment)
	assert.Empty(t, f.owner.Notifications())
	require.Len(t, f.engine.Transits.TransitsForOwner(f.owner), 1)
}

func TestRegisterTransitNoFareDefined(t *testing.T) {
	f := newFixture(t)
	truck := domain.NewVehicle("TRK001", "Scania", "Azul", domain.Category{Name: "Camión"})
	require.NoError(t, f.engine.Vehicles.Register(f.owner, truck))

	_, err := f.engine.Transits.Register(f.stationX, truck, f.owner, testNow)

	assert.ErrorIs(t, err, domain.ErrNoFareDefined)
}

func TestRegisterTransitValidatesArguments(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.Transits.Register(nil, f.vehicle, f.owner, testNow)
	assert.ErrorIs(t, err, domain.ErrStationRequired)

	_, err = f.engine.Transits.Register(f.stationX, nil, f.owner, testNow)
	assert.ErrorIs(t, err, domain.ErrVehicleRequired)

	_, err = f.engine.Transits.Register(f.stationX, f.vehicle, nil, testNow)
	assert.ErrorIs(t, err, domain.ErrOwnerRequired)
}

func TestRegisterTransitBroadcastsOnBus(t *testing.T) {
	f := newFixture(t)
	var events []domain.Event
	f.engine.Subscribe(domain.NewObserverFunc(func(event domain.Event) {
		events = append(events, event)
	}))

	_, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)

	require.NoError(t, err)
	assert.Equal(t, []domain.Event{domain.EventTransitRegistered}, events)
}

func TestTransitsForOwnerNewestFirst(t *testing.T) {
	f := newFixture(t)

	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		_, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow.Add(offset))
		require.NoError(t, err)
	}

	transits := f.engine.Transits.TransitsForOwner(f.owner)
	require.Len(t, transits, 3)
	assert.Equal(t, testNow.Add(2*time.Hour), transits[0].At)
	assert.Equal(t, testNow.Add(time.Hour), transits[1].At)
	assert.Equal(t, testNow, transits[2].At)
}

func TestPerVehicleTotals(t *testing.T) {
	f := newFixture(t)
	second := domain.NewVehicle("DEF456", "Gol", "Rojo", domain.Category{Name: "Auto"})
	require.NoError(t, f.engine.Vehicles.Register(f.owner, second))

	_, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)
	require.NoError(t, err)
	_, err = f.engine.Transits.Register(f.stationY, f.vehicle, f.owner, testNow.Add(time.Hour))
	require.NoError(t, err)
	_, err = f.engine.Transits.Register(f.stationX, second, f.owner, testNow.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, f.engine.Transits.CountForVehicle(f.owner, f.vehicle))
	assert.Equal(t, "264.00", f.engine.Transits.TotalSpentForVehicle(f.owner, f.vehicle).StringFixed(2))
	assert.Equal(t, 1, f.engine.Transits.CountForVehicle(f.owner, second))
	assert.Equal(t, "120.00", f.engine.Transits.TotalSpentForVehicle(f.owner, second).StringFixed(2))
}

func TestFindStation(t *testing.T) {
	f := newFixture(t)

	station, err := f.engine.Transits.FindStation("Puesto Y")
	require.NoError(t, err)
	assert.Same(t, f.stationY, station)

	_, err = f.engine.Transits.FindStation("Puesto Z")
	assert.ErrorIs(t, err, domain.ErrStationNotFound)
}

func TestOwnerDashboardProjection(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Transits.Register(f.stationX, f.vehicle, f.owner, testNow)
	require.NoError(t, err)

	board, err := f.engine.OwnerDashboard("100")
	require.NoError(t, err)
	assert.Same(t, f.owner, board.Owner)
	assert.Len(t, board.Transits, 1)
	assert.Len(t, board.Notifications, 1)

	_, err = f.engine.OwnerDashboard("999")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}
