package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order counts as active until it is completed.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}

// ActiveOrderStatus reports whether s counts as active (not yet completed).
func ActiveOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady:
		return true
	}
	return false
}

// ClothItems is the per-category breakdown of a laundry drop-off.
type ClothItems struct {
	Tshirt      int `bson:"tshirt" json:"tshirt"`
	Trousers    int `bson:"trousers" json:"trousers"`
	Bedsheet    int `bson:"bedsheet" json:"bedsheet"`
	Shirt       int `bson:"shirt" json:"shirt"`
	Pillowcover int `bson:"pillowcover" json:"pillowcover"`
	Kurti       int `bson:"kurti" json:"kurti"`
	Other       int `bson:"other" json:"other"`
}

// Total sums the breakdown across all categories.
func (c ClothItems) Total() int {
	return c.Tshirt + c.Trousers + c.Bedsheet + c.Shirt + c.Pillowcover + c.Kurti + c.Other
}

// LaundryOrder represents a customer's laundry drop-off
type LaundryOrder struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID                  string             `bson:"userId" json:"userId"`
	UserEmail               string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Items                   int                `bson:"items" json:"items"`
	Status                  string             `bson:"status" json:"status"` // e.g., "pending", "ready"
	Progress                int                `bson:"progress" json:"progress"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
	CompletedAt             *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	EstimatedCompletionTime *time.Time         `bson:"estimatedCompletionTime,omitempty" json:"estimatedCompletionTime,omitempty"`
	Notes                   string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Cost                    float64            `bson:"cost,omitempty" json:"cost,omitempty"`
	ClothItems              *ClothItems        `bson:"clothItems,omitempty" json:"clothItems,omitempty"`
	BagCode                 string             `bson:"bagCode,omitempty" json:"bagCode,omitempty"` // 4-digit laundry bag code
}

// OrderUpdate is a field-merge patch for an order. Nil fields are left
// untouched by the store.
type OrderUpdate struct {
	UserEmail               *string     `json:"userEmail,omitempty"`
	Items                   *int        `json:"items,omitempty"`
	Status                  *string     `json:"status,omitempty"`
	Progress                *int        `json:"progress,omitempty"`
	CompletedAt             *time.Time  `json:"completedAt,omitempty"`
	EstimatedCompletionTime *time.Time  `json:"estimatedCompletionTime,omitempty"`
	Notes                   *string     `json:"notes,omitempty"`
	Cost                    *float64    `json:"cost,omitempty"`
	ClothItems              *ClothItems `json:"clothItems,omitempty"`
	BagCode                 *string     `json:"bagCode,omitempty"`
	UpdatedAt               *time.Time  `json:"-"`
}
