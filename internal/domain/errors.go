package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidQuantity       = errors.New("la cantidad debe ser mayor que 0")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInsufficientStock     = errors.New("stock insuficiente")
)

// InsufficientStockError indica que un decremento dejaría el stock en negativo.
// Lleva el stock actual y la cantidad solicitada para el mensaje al usuario;
// errors.Is(err, ErrInsufficientStock) sigue funcionando para el mapeo HTTP.
type InsufficientStockError struct {
	Current   int // stock actual del producto
	Requested int // cantidad que se intentó descontar
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: actual %d, solicitado %d", e.Current, e.Requested)
}

// Is permite comparar contra el centinela ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
