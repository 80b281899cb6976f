package entity

import "time"

// Cart es el carrito del sitio público, identificado por el session ID de la
// cookie del visitante. Reemplaza al estado de sesión global: es un objeto
// explícito que viaja por el contexto de la petición.
type Cart struct {
	SessionID string
	UpdatedAt time.Time
	Items     []*CartItem
}

// CartItem producto y cantidad dentro del carrito.
type CartItem struct {
	SessionID string
	ProductID string
	Qty       int
}
