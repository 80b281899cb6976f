package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de entrega.
const (
	DeliveryStatusNew        = "new"
	DeliveryStatusInProgress = "in_progress"
	DeliveryStatusDone       = "done"
	DeliveryStatusCancelled  = "cancelled"
)

// Orígenes y métodos de recepción.
const (
	DeliverySourcePhone = "phone"
	DeliverySourceSite  = "site"

	ReceiveDelivery = "delivery"
	ReceivePickup   = "pickup"
	ReceiveDineIn   = "dinein"
)

// DeliveryOrder es un pedido de entrega (teléfono o tienda en línea).
type DeliveryOrder struct {
	ID            string
	Status        string // new, in_progress, done, cancelled
	Source        string // phone, site
	Phone         string
	CustomerName  string
	Street        string
	House         string
	Flat          string
	Entrance      string
	Floor         string
	Comment       string
	PlannedAt     *time.Time
	ReceiveMethod string // delivery, pickup, dinein
	PaymentType   string // cash, card, online
	Total         decimal.Decimal
	CreatedAt     time.Time
	CourierID     string // Employee.ID del repartidor
	UserID        string // cuenta del portal, si el cliente inició sesión
	Items         []*DeliveryOrderItem
}

// DeliveryOrderItem línea del pedido; snapshot de nombre y precio.
type DeliveryOrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Qty         int
	UnitPrice   decimal.Decimal
	Sum         decimal.Decimal
}
