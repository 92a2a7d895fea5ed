package domain

// State is an owner's account state. Every behavioral difference between
// states is expressed through the capability methods below; callers never
// switch on the state value itself.
type State string

const (
	StateEnabled   State = "enabled"
	StateDisabled  State = "disabled"
	StateSuspended State = "suspended"
	StatePenalized State = "penalized"
)

// DisplayName is the user-facing Spanish name of the state.
func (s State) DisplayName() string {
	switch s {
	case StateEnabled:
		return "Habilitado"
	case StateDisabled:
		return "Deshabilitado"
	case StateSuspended:
		return "Suspendido"
	case StatePenalized:
		return "Penalizado"
	default:
		return string(s)
	}
}

func (s State) Valid() bool {
	_, ok := stateCapabilities[s]
	return ok
}

type capabilities struct {
	canEnter                bool
	canTransit              bool
	canBeAssignedDiscount   bool
	canReceiveNotifications bool
	discountsApply          bool
}

// Penalized is deliberately opaque to the owner: transits proceed at full
// fare and no notifications are recorded, so nothing observable changes
// from the owner's side.
var stateCapabilities = map[State]capabilities{
	StateEnabled: {
		canEnter:                true,
		canTransit:              true,
		canBeAssignedDiscount:   true,
		canReceiveNotifications: true,
		discountsApply:          true,
	},
	StateDisabled: {
		canReceiveNotifications: true,
	},
	StateSuspended: {
		canEnter:                true,
		canBeAssignedDiscount:   true,
		canReceiveNotifications: true,
		discountsApply:          true,
	},
	StatePenalized: {
		canEnter:              true,
		canTransit:            true,
		canBeAssignedDiscount: true,
	},
}

func (s State) CanEnter() bool                { return stateCapabilities[s].canEnter }
func (s State) CanTransit() bool              { return stateCapabilities[s].canTransit }
func (s State) CanBeAssignedDiscount() bool   { return stateCapabilities[s].canBeAssignedDiscount }
func (s State) CanReceiveNotifications() bool { return stateCapabilities[s].canReceiveNotifications }
func (s State) DiscountsApply() bool          { return stateCapabilities[s].discountsApply }

// States lists every valid state in presentation order.
func States() []State {
	return []State{StateEnabled, StateDisabled, StateSuspended, StatePenalized}
}

// ParseState accepts either the internal value or the display name.
func ParseState(name string) (State, error) {
	for _, s := range States() {
		if string(s) == name || s.DisplayName() == name {
			return s, nil
		}
	}
	return "", ErrStateRequired
}
