package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	FullName    string             `bson:"fullName" json:"fullName"`
	StudentID   string             `bson:"studentId" json:"studentId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	IsAdmin     bool               `bson:"isAdmin" json:"isAdmin"`
	ContactInfo string             `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
}

// UserUpdate is a field-merge patch for the settings screen and admin grants.
type UserUpdate struct {
	FullName    *string `json:"fullName,omitempty"`
	ContactInfo *string `json:"contactInfo,omitempty"`
	IsAdmin     *bool   `json:"isAdmin,omitempty"`
}
