package application

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
	"github.com/bnema/toll-backoffice/internal/ports"
)

// OwnerService keeps the owner and administrator registries and drives the
// owner state machine.
type OwnerService struct {
	mu             sync.Mutex
	owners         []*domain.Owner
	administrators []*domain.Administrator
	loggedIn       map[string]*domain.Administrator

	log   *zap.Logger
	clock ports.Clock
}

func NewOwnerService(log *zap.Logger, clock ports.Clock) *OwnerService {
	return &OwnerService{
		loggedIn: map[string]*domain.Administrator{},
		log:      log,
		clock:    clock,
	}
}

func (s *OwnerService) RegisterOwner(owner *domain.Owner) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.owners {
		if existing.ID == owner.ID {
			return domain.ErrDuplicateIdentity
		}
	}
	s.owners = append(s.owners, owner)

	s.log.Info("owner registered", zap.String("owner_id", owner.ID))
	return nil
}

func (s *OwnerService) RegisterAdministrator(admin *domain.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.administrators {
		if existing.ID == admin.ID {
			return domain.ErrDuplicateAdmin
		}
	}
	s.administrators = append(s.administrators, admin)
	return nil
}

// LoginOwner checks the credential and the CanEnter capability of the
// owner's current state.
func (s *OwnerService) LoginOwner(id, secret string) (*domain.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, owner := range s.owners {
		if owner.ID == id && owner.CheckSecret(secret) {
			if !owner.CanEnter() {
				return nil, domain.ErrLoginForbidden
			}
			return owner, nil
		}
	}
	return nil, domain.ErrAccessDenied
}

// LoginAdministrator rejects a second login for an already-active
// administrator session.
func (s *OwnerService) LoginAdministrator(id, secret string) (*domain.Administrator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, admin := range s.administrators {
		if admin.ID == id && admin.CheckSecret(secret) {
			if _, active := s.loggedIn[admin.ID]; active {
				return nil, domain.ErrAlreadyLoggedIn
			}
			s.loggedIn[admin.ID] = admin
			return admin, nil
		}
	}
	return nil, domain.ErrAccessDenied
}

func (s *OwnerService) LogoutAdministrator(admin *domain.Administrator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, active := s.loggedIn[admin.ID]; !active {
		return domain.ErrNotLoggedIn
	}
	delete(s.loggedIn, admin.ID)
	return nil
}

func (s *OwnerService) Find(id string) (*domain.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidIdentity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, owner := range s.owners {
		if owner.ID == id {
			return owner, nil
		}
	}
	return nil, domain.ErrOwnerNotFound
}

func (s *OwnerService) Owners() []*domain.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Owner, len(s.owners))
	copy(out, s.owners)
	return out
}

// ChangeState is the explicit caller-initiated state change; requesting the
// current state surfaces AlreadyInStateError from the owner.
func (s *OwnerService) ChangeState(owner *domain.Owner, target domain.State) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}
	if !target.Valid() {
		return domain.ErrStateRequired
	}

	if err := owner.SetState(target, s.clock.Now()); err != nil {
		return err
	}

	s.log.Info("owner state changed",
		zap.String("owner_id", owner.ID),
		zap.String("state", string(target)))
	return nil
}

func (s *OwnerService) Credit(owner *domain.Owner, amount decimal.Decimal) error {
	if owner == nil {
		return domain.ErrOwnerRequired
	}
	if err := owner.Credit(amount); err != nil {
		return err
	}

	s.log.Info("balance credited",
		zap.String("owner_id", owner.ID),
		zap.String("amount", amount.StringFixed(2)))
	return nil
}

// States lists the states an administrator can move an owner into.
func (s *OwnerService) States() []domain.State {
	return domain.States()
}
