package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAssigned  OrderStatus = "ASSIGNED"
	StatusPickedUp  OrderStatus = "PICKED_UP"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID         string `json:"id" gorm:"primaryKey"`
	CustomerID string `json:"customerId" gorm:"not null;index"`
	Customer   *User  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	// Snapshot of the customer's contact details at checkout. Profile edits
	// after the fact must not rewrite order history.
	CustomerName string      `json:"customerName" gorm:"not null"`
	Phone        string      `json:"phone" gorm:"not null"`
	Address      string      `json:"address"`
	Notes        string      `json:"notes"`
	TotalPrice   float64     `json:"totalPrice"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	DriverID     *string     `json:"driverId" gorm:"index"`
	Driver       *User       `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	// Version guards concurrent lifecycle updates (two admins assigning at
	// once): mutations apply with WHERE version = ? and bump it.
	Version   int         `json:"version" gorm:"not null;default:1"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderItem is one product line, snapshotted at checkout. ProductID is a
// reference only — the product may have been deleted since.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	OrderID   string  `json:"orderId" gorm:"not null;index"`
	ProductID string  `json:"productId" gorm:"not null"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price" gorm:"not null"`
	ImageURL  *string `json:"imageUrl"`
	Qty       int     `json:"qty" gorm:"not null"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
