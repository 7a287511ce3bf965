package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Complaint statuses: submitted -> in-progress -> resolved, staff-driven.
const (
	ComplaintStatusSubmitted  = "submitted"
	ComplaintStatusInProgress = "in-progress"
	ComplaintStatusResolved   = "resolved"
)

// ValidComplaintStatus reports whether s is one of the known complaint statuses.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusSubmitted, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// ComplaintIssueTypes is the fixed vocabulary offered on the support form.
var ComplaintIssueTypes = []string{"damaged", "missing", "late", "quality", "other"}

// ValidComplaintIssueType reports whether t is one of the support form's
// issue types.
func ValidComplaintIssueType(t string) bool {
	for _, known := range ComplaintIssueTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Complaint represents a customer-submitted service issue
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	IssueType   string             `bson:"issueType" json:"issueType"`
	Description string             `bson:"description" json:"description"`
	OrderID     string             `bson:"orderId,omitempty" json:"orderId,omitempty"`
	SubmittedBy string             `bson:"submittedBy" json:"submittedBy"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
	Status      string             `bson:"status" json:"status"`
	Response    string             `bson:"response,omitempty" json:"response,omitempty"`
	ResolvedAt  *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ComplaintUpdate is a field-merge patch applied by a staff status change.
type ComplaintUpdate struct {
	Status     *string    `json:"status,omitempty"`
	Response   *string    `json:"response,omitempty"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	UpdatedAt  *time.Time `json:"-"`
}
