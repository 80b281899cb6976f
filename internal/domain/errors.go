package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del motor de inventario y documentos.
	ErrNotEditable     = errors.New("el documento está proveído y no es editable")
	ErrAlreadyPosted   = errors.New("el documento ya fue proveído")
	ErrInvalidQuantity = errors.New("la cantidad debe ser un decimal distinto de cero")
	ErrEmptyCart       = errors.New("el carrito está vacío")
)
