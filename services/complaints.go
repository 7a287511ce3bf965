package services

import (
	"context"
	"fmt"
	"time"

	"go-laundry/metrics"
	"go-laundry/models"
)

// ComplaintStore is the persistence gateway for complaints.
type ComplaintStore interface {
	Insert(ctx context.Context, complaint *models.Complaint) (string, error)
	Get(ctx context.Context, id string) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]models.Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	Update(ctx context.Context, id string, upd models.ComplaintUpdate) error
	Delete(ctx context.Context, id string) error
}

// ComplaintService tracks customer complaints through
// submitted -> in-progress -> resolved.
type ComplaintService struct {
	store ComplaintStore
	now   func() time.Time
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(store ComplaintStore) *ComplaintService {
	return &ComplaintService{store: store, now: time.Now}
}

// Submit files a new complaint with status "submitted".
func (s *ComplaintService) Submit(ctx context.Context, complaint *models.Complaint) (string, error) {
	complaint.Status = models.ComplaintStatusSubmitted
	complaint.SubmittedAt = s.now().UTC()

	id, err := s.store.Insert(ctx, complaint)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complaint_submit").Inc()
		return "", err
	}
	metrics.ComplaintsSubmittedTotal.Inc()
	return id, nil
}

// ListForUser returns the user's complaints, newest first (store-ordered).
func (s *ComplaintService) ListForUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListAll returns every complaint, newest first (admin view).
func (s *ComplaintService) ListAll(ctx context.Context) ([]models.Complaint, error) {
	return s.store.ListAll(ctx)
}

// Get returns the complaint or nil when it is missing.
func (s *ComplaintService) Get(ctx context.Context, id string) (*models.Complaint, error) {
	return s.store.Get(ctx, id)
}

// UpdateStatus sets the complaint status and, when given, the staff response.
// A transition to "resolved" stamps the resolution time.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id, status, response string) error {
	if !models.ValidComplaintStatus(status) {
		return fmt.Errorf("invalid complaint status %q", status)
	}

	now := s.now().UTC()
	upd := models.ComplaintUpdate{Status: &status, UpdatedAt: &now}
	if response != "" {
		upd.Response = &response
	}
	if status == models.ComplaintStatusResolved {
		upd.ResolvedAt = &now
	}

	if err := s.store.Update(ctx, id, upd); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complaint_update").Inc()
		return err
	}
	return nil
}

// Delete removes the complaint.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complaint_delete").Inc()
		return err
	}
	return nil
}
