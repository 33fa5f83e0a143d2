package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Motor de ventas/stock.
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidAmount     = errors.New("monto de pago inválido")
	ErrOverPayment       = errors.New("el pago excede el saldo pendiente")
	ErrEmptySale         = errors.New("la venta no tiene líneas válidas")
)

// Variantes de "no encontrado" que conservan errors.Is(err, ErrNotFound)
// para que los handlers puedan mapear todas a 404 sin listar cada una.
var (
	ErrProductNotFound  = &notFoundError{"producto no encontrado"}
	ErrSaleNotFound     = &notFoundError{"venta no encontrada"}
	ErrMovementNotFound = &notFoundError{"movimiento no encontrado"}
)

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
