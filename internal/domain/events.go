package domain

import "sync"

// Event is a transient change signal broadcast to observers. Events carry no
// payload: subscribers re-read whatever snapshot they need.
type Event string

const (
	EventStateChanged         Event = "state_changed"
	EventBonificationAssigned Event = "bonification_assigned"
	EventBalanceChanged       Event = "balance_changed"
	EventNotificationAdded    Event = "notification_added"
	EventNotificationsCleared Event = "notifications_cleared"
	EventTransitRegistered    Event = "transit_registered"
)

type Observer interface {
	Update(event Event)
}

// Observable fans events out to subscribers. Membership is set-like and
// Notify iterates a snapshot of the list, so an observer that unsubscribes
// itself mid-notification neither corrupts iteration nor skips peers.
type Observable struct {
	mu        sync.Mutex
	observers []Observer
}

func (o *Observable) Subscribe(obs Observer) {
	if obs == nil {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, existing := range o.observers {
		if existing == obs {
			return
		}
	}
	o.observers = append(o.observers, obs)
}

func (o *Observable) Unsubscribe(obs Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, existing := range o.observers {
		if existing == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

func (o *Observable) Notify(event Event) {
	o.mu.Lock()
	snapshot := make([]Observer, len(o.observers))
	copy(snapshot, o.observers)
	o.mu.Unlock()

	for _, obs := range snapshot {
		obs.Update(event)
	}
}

// NewObserverFunc adapts a plain function to the Observer interface. The
// returned value is a pointer so set-like membership keeps working (func
// values themselves are not comparable).
func NewObserverFunc(f func(event Event)) Observer {
	return &funcObserver{f: f}
}

type funcObserver struct {
	f func(event Event)
}

func (o *funcObserver) Update(event Event) { o.f(event) }
