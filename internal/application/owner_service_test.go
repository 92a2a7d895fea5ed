package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toll-backoffice/internal/domain"
)

func TestRegisterOwnerRejectsDuplicateIdentity(t *testing.T) {
	engine := newTestEngine(t)

	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	twin := domain.NewOwner("100", "other", "Otra Persona", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, engine.Owners.RegisterOwner(twin), domain.ErrDuplicateIdentity)

	assert.ErrorIs(t, engine.Owners.RegisterOwner(nil), domain.ErrOwnerRequired)
	assert.Len(t, engine.Owners.Owners(), 1)
}

func TestLoginOwner(t *testing.T) {
	engine := newTestEngine(t)
	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	got, err := engine.Owners.LoginOwner("100", "pw")
	require.NoError(t, err)
	assert.Same(t, owner, got)

	_, err = engine.Owners.LoginOwner("100", "wrong")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = engine.Owners.LoginOwner("999", "pw")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestLoginOwnerGatedByState(t *testing.T) {
	engine := newTestEngine(t)
	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))
	require.NoError(t, engine.Owners.ChangeState(owner, domain.StateDisabled))

	_, err := engine.Owners.LoginOwner("100", "pw")
	assert.ErrorIs(t, err, domain.ErrLoginForbidden)

	// Suspended and penalized owners may still enter.
	require.NoError(t, engine.Owners.ChangeState(owner, domain.StateSuspended))
	_, err = engine.Owners.LoginOwner("100", "pw")
	assert.NoError(t, err)

	require.NoError(t, engine.Owners.ChangeState(owner, domain.StatePenalized))
	_, err = engine.Owners.LoginOwner("100", "pw")
	assert.NoError(t, err)
}

func TestAdministratorSessionLifecycle(t *testing.T) {
	engine := newTestEngine(t)
	admin := domain.NewAdministrator("900", "admin-pw", "Root")
	require.NoError(t, engine.Owners.RegisterAdministrator(admin))

	twin := domain.NewAdministrator("900", "other", "Impostor")
	assert.ErrorIs(t, engine.Owners.RegisterAdministrator(twin), domain.ErrDuplicateAdmin)

	assert.ErrorIs(t, engine.Owners.LogoutAdministrator(admin), domain.ErrNotLoggedIn)

	got, err := engine.Owners.LoginAdministrator("900", "admin-pw")
	require.NoError(t, err)
	assert.Same(t, admin, got)

	_, err = engine.Owners.LoginAdministrator("900", "admin-pw")
	assert.ErrorIs(t, err, domain.ErrAlreadyLoggedIn)

	require.NoError(t, engine.Owners.LogoutAdministrator(admin))
	_, err = engine.Owners.LoginAdministrator("900", "admin-pw")
	assert.NoError(t, err)
}

func TestFindOwnerTrimsAndValidates(t *testing.T) {
	engine := newTestEngine(t)
	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	got, err := engine.Owners.Find("  100 ")
	require.NoError(t, err)
	assert.Same(t, owner, got)

	_, err = engine.Owners.Find("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentity)

	_, err = engine.Owners.Find("999")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestChangeStateValidation(t *testing.T) {
	engine := newTestEngine(t)
	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	assert.ErrorIs(t, engine.Owners.ChangeState(nil, domain.StateDisabled), domain.ErrOwnerRequired)
	assert.ErrorIs(t, engine.Owners.ChangeState(owner, domain.State("banned")), domain.ErrStateRequired)

	var alreadyInState *domain.AlreadyInStateError
	err := engine.Owners.ChangeState(owner, domain.StateEnabled)
	require.ErrorAs(t, err, &alreadyInState)

	require.NoError(t, engine.Owners.ChangeState(owner, domain.StateSuspended))
	assert.Equal(t, domain.StateSuspended, owner.State())

	notifications := owner.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, testNow, notifications[0].At)
}

func TestCreditThroughService(t *testing.T) {
	engine := newTestEngine(t)
	owner := domain.NewOwner("100", "pw", "Ana García", decimal.NewFromInt(2000), decimal.NewFromInt(500))
	require.NoError(t, engine.Owners.RegisterOwner(owner))

	assert.ErrorIs(t, engine.Owners.Credit(nil, decimal.NewFromInt(10)), domain.ErrOwnerRequired)
	assert.ErrorIs(t, engine.Owners.Credit(owner, decimal.Zero), domain.ErrAmountNotPositive)

	require.NoError(t, engine.Owners.Credit(owner, decimal.NewFromInt(500)))
	assert.Equal(t, "2500.00", owner.Balance().StringFixed(2))
}

func TestStatesCatalog(t *testing.T) {
	engine := newTestEngine(t)
	assert.Equal(t, domain.States(), engine.Owners.States())
}
