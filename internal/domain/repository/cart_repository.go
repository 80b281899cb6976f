package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// CartRepository puerto para el carrito del sitio, por session ID.
// Get devuelve un carrito vacío (no nil) si la sesión aún no tiene filas.
type CartRepository interface {
	Get(sessionID string) (*entity.Cart, error)
	// SetItem fija la cantidad de un producto; qty <= 0 elimina la línea.
	SetItem(sessionID, productID string, qty int) error
	Clear(sessionID string) error
}
