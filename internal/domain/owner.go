package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Owner is the account holder: the information expert for its own state,
// balance, vehicles, discount assignments and notifications. All balance
// mutation goes through ProcessPayment or Credit.
type Owner struct {
	ID   string
	Name string

	secret string

	mu             sync.Mutex
	balance        decimal.Decimal
	alertThreshold decimal.Decimal
	state          State
	vehicles       []*Vehicle
	assignments    []Assignment
	notifications  []Notification

	observers Observable
}

// NewOwner creates an owner in the Enabled state.
func NewOwner(id, secret, name string, balance, alertThreshold decimal.Decimal) *Owner {
	return &Owner{
		ID:             id,
		Name:           name,
		secret:         secret,
		balance:        balance,
		alertThreshold: alertThreshold,
		state:          StateEnabled,
	}
}

// CheckSecret compares the login credential. Plain equality on the stored
// secret; credential transport is an adapter concern.
func (o *Owner) CheckSecret(secret string) bool {
	return o.secret == secret
}

func (o *Owner) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Owner) Balance() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.balance
}

func (o *Owner) AlertThreshold() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.alertThreshold
}

func (o *Owner) CanEnter() bool                { return o.State().CanEnter() }
func (o *Owner) CanTransit() bool              { return o.State().CanTransit() }
func (o *Owner) CanBeAssignedDiscount() bool   { return o.State().CanBeAssignedDiscount() }
func (o *Owner) CanReceiveNotifications() bool { return o.State().CanReceiveNotifications() }
func (o *Owner) DiscountsApply() bool          { return o.State().DiscountsApply() }

// SetState is the caller-initiated state change: requesting the current
// state is rejected with AlreadyInStateError. The state-change notification
// is always recorded, independent of CanReceiveNotifications.
func (o *Owner) SetState(target State, at time.Time) error {
	if !target.Valid() {
		return ErrStateRequired
	}

	o.mu.Lock()
	if o.state == target {
		state := o.state
		o.mu.Unlock()
		return &AlreadyInStateError{State: state}
	}
	o.state = target
	message := fmt.Sprintf("Se ha cambiado tu estado en el sistema. Tu estado actual es %s", target.DisplayName())
	o.notifications = append(o.notifications, Notification{At: at, Message: message})
	o.mu.Unlock()

	o.observers.Notify(EventNotificationAdded)
	o.observers.Notify(EventStateChanged)
	return nil
}

// The verb transitions silently no-op when the owner is already in the
// target state; only an explicit SetState rejects a same-state request.

func (o *Owner) Enable(at time.Time) error   { return o.transitionTo(StateEnabled, at) }
func (o *Owner) Disable(at time.Time) error  { return o.transitionTo(StateDisabled, at) }
func (o *Owner) Suspend(at time.Time) error  { return o.transitionTo(StateSuspended, at) }
func (o *Owner) Penalize(at time.Time) error { return o.transitionTo(StatePenalized, at) }

func (o *Owner) transitionTo(target State, at time.Time) error {
	if o.State() == target {
		return nil
	}
	return o.SetState(target, at)
}

// ApplicableAssignment returns the assignment covering the station, or nil
// when none exists or the owner's state suspends discounts.
func (o *Owner) ApplicableAssignment(station *Station) *Assignment {
	if !o.DiscountsApply() {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.assignments {
		if o.assignments[i].Station == station {
			return &o.assignments[i]
		}
	}
	return nil
}

// AmountDue is the fare after the applicable discount, or the base fare
// unchanged when no assignment applies.
func (o *Owner) AmountDue(station *Station, baseFare decimal.Decimal) decimal.Decimal {
	if assignment := o.ApplicableAssignment(station); assignment != nil {
		return assignment.Apply(baseFare)
	}
	return baseFare
}

// ProcessPayment debits the amount due for a crossing. The sufficiency check
// and the debit happen under one lock: on InsufficientBalanceError the
// balance is untouched. A zero due (exempt crossing) mutates nothing.
func (o *Owner) ProcessPayment(station *Station, baseFare decimal.Decimal) (decimal.Decimal, error) {
	due := o.AmountDue(station, baseFare)
	if !due.IsPositive() {
		return due, nil
	}

	o.mu.Lock()
	if o.balance.LessThan(due) {
		balance := o.balance
		o.mu.Unlock()
		return decimal.Zero, &InsufficientBalanceError{Balance: balance}
	}
	o.balance = o.balance.Sub(due)
	o.mu.Unlock()

	o.observers.Notify(EventBalanceChanged)
	return due, nil
}

// Credit adds funds to the balance. The amount must be positive.
func (o *Owner) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	o.mu.Lock()
	o.balance = o.balance.Add(amount)
	o.mu.Unlock()

	o.observers.Notify(EventBalanceChanged)
	return nil
}

// BelowAlertThreshold reports whether the balance dropped under the
// configured alert line.
func (o *Owner) BelowAlertThreshold() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.balance.LessThan(o.alertThreshold)
}

// RecordNotification appends a message if the owner's state admits
// notifications; Penalized owners receive nothing.
func (o *Owner) RecordNotification(at time.Time, message string) {
	if !o.CanReceiveNotifications() {
		return
	}

	o.mu.Lock()
	o.notifications = append(o.notifications, Notification{At: at, Message: message})
	o.mu.Unlock()

	o.observers.Notify(EventNotificationAdded)
}

// NotifyTransit records the crossing message for the owner.
func (o *Owner) NotifyTransit(station *Station, vehicle *Vehicle, at time.Time) {
	message := fmt.Sprintf("Pasaste por el puesto %s con el vehículo %s", station.Name, vehicle.Plate)
	o.RecordNotification(at, message)
}

// NotifyLowBalance records the recharge reminder with the current balance.
func (o *Owner) NotifyLowBalance(at time.Time) {
	message := fmt.Sprintf("Tu saldo actual es de $ %s Te recomendamos hacer una recarga", o.Balance().StringFixed(2))
	o.RecordNotification(at, message)
}

// ClearNotifications removes every notification in bulk. Returns false when
// there was nothing to remove, in which case no event fires.
func (o *Owner) ClearNotifications() bool {
	o.mu.Lock()
	if len(o.notifications) == 0 {
		o.mu.Unlock()
		return false
	}
	o.notifications = nil
	o.mu.Unlock()

	o.observers.Notify(EventNotificationsCleared)
	return true
}

func (o *Owner) Notifications() []Notification {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Notification, len(o.notifications))
	copy(out, o.notifications)
	return out
}

// AddVehicle attaches the vehicle to this owner and sets the back-reference.
func (o *Owner) AddVehicle(vehicle *Vehicle) {
	vehicle.OwnerID = o.ID

	o.mu.Lock()
	o.vehicles = append(o.vehicles, vehicle)
	o.mu.Unlock()
}

func (o *Owner) Vehicles() []*Vehicle {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]*Vehicle, len(o.vehicles))
	copy(out, o.vehicles)
	return out
}

// AddAssignment appends the discount binding. Uniqueness per station is the
// bonification service's validation; this only records and signals.
func (o *Owner) AddAssignment(assignment Assignment) {
	o.mu.Lock()
	o.assignments = append(o.assignments, assignment)
	o.mu.Unlock()

	o.observers.Notify(EventBonificationAssigned)
}

// AssignmentFor returns the assignment bound to the station regardless of
// whether the owner's state lets it apply.
func (o *Owner) AssignmentFor(station *Station) *Assignment {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.assignments {
		if o.assignments[i].Station == station {
			return &o.assignments[i]
		}
	}
	return nil
}

func (o *Owner) Assignments() []Assignment {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Assignment, len(o.assignments))
	copy(out, o.assignments)
	return out
}

// Subscribe registers an observer for this owner's change events, typically
// one per live session.
func (o *Owner) Subscribe(obs Observer)   { o.observers.Subscribe(obs) }
func (o *Owner) Unsubscribe(obs Observer) { o.observers.Unsubscribe(obs) }
