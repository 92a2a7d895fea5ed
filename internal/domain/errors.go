package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Business error messages keep the original Spanish wording shown to end
// users; the strings are part of the observable contract.
var (
	ErrAccessDenied      = errors.New("Acceso denegado")
	ErrAlreadyLoggedIn   = errors.New("Ud. ya está logueado")
	ErrNotLoggedIn       = errors.New("El administrador no está logueado")
	ErrLoginForbidden    = errors.New("Usuario deshabilitado, no puede ingresar al sistema")
	ErrOwnerNotFound     = errors.New("no existe el propietario")
	ErrVehicleNotFound   = errors.New("No existe el vehículo")
	ErrStationNotFound   = errors.New("No existe el puesto")
	ErrDuplicateIdentity = errors.New("Ya existe un propietario con la misma cédula")
	ErrDuplicateAdmin    = errors.New("Ya existe un administrador con la misma cédula")
	ErrDuplicatePlate    = errors.New("Ya existe un vehículo con esa matrícula")
	ErrNoFareDefined     = errors.New("No se encontró una tarifa para la categoría del vehículo")
	ErrInvalidIdentity   = errors.New("Cédula inválida")

	ErrOwnerRequired    = errors.New("Debe especificar un propietario")
	ErrStateRequired    = errors.New("Debe especificar un estado")
	ErrStrategyRequired = errors.New("Debe especificar una bonificación")
	ErrStationRequired  = errors.New("Debe especificar un puesto")
	ErrVehicleRequired  = errors.New("Debe especificar un vehículo")

	ErrAmountNotPositive    = errors.New("El monto debe ser positivo")
	ErrAssignmentsForbidden = errors.New("El propietario esta deshabilitado. No se pueden asignar bonificaciones")
)

// InsufficientBalanceError carries the current balance so the adapter layer
// can compose the user-facing message.
type InsufficientBalanceError struct {
	Balance decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Saldo insuficiente: %s", e.Balance.StringFixed(2))
}

// ForbiddenTransitError names the owner state that blocks the crossing.
type ForbiddenTransitError struct {
	State State
}

func (e *ForbiddenTransitError) Error() string {
	return fmt.Sprintf("El propietario del vehículo está %s, no puede realizar tránsitos", e.State.DisplayName())
}

// AlreadyInStateError rejects a caller-initiated change to the state the
// owner is already in. Verb transitions (Enable on an enabled owner) no-op
// instead of returning this.
type AlreadyInStateError struct {
	State State
}

func (e *AlreadyInStateError) Error() string {
	return fmt.Sprintf("El propietario ya esta en estado %s", e.State.DisplayName())
}

// DuplicateAssignmentError rejects a second discount for the same station.
type DuplicateAssignmentError struct {
	Station string
}

func (e *DuplicateAssignmentError) Error() string {
	return "Ya tiene una bonificación asignada para ese puesto"
}
