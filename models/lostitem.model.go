package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lost item statuses. Only staff advance a report past "reported".
const (
	LostItemStatusReported = "reported"
	LostItemStatusFound    = "found"
	LostItemStatusClaimed  = "claimed"
)

// ValidLostItemStatus reports whether s is one of the known lost-item statuses.
func ValidLostItemStatus(s string) bool {
	switch s {
	case LostItemStatusReported, LostItemStatusFound, LostItemStatusClaimed:
		return true
	}
	return false
}

// LostItemTypes is the fixed vocabulary offered on the report form.
var LostItemTypes = []string{"shirt", "pants", "dress", "sweater", "socks", "underwear", "other"}

// ValidLostItemType reports whether t is one of the report form's item types.
func ValidLostItemType(t string) bool {
	for _, known := range LostItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// LostItem represents a customer-reported missing garment
type LostItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ItemType    string             `bson:"itemType" json:"itemType"`
	Color       string             `bson:"color" json:"color"`
	Brand       string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Description string             `bson:"description" json:"description"`
	LastSeen    string             `bson:"lastSeen" json:"lastSeen"`
	OrderID     string             `bson:"orderId,omitempty" json:"orderId,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ReportedBy  string             `bson:"reportedBy" json:"reportedBy"`
	ReportedAt  time.Time          `bson:"reportedAt" json:"reportedAt"`
	Status      string             `bson:"status" json:"status"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
