package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go-laundry/metrics"
	"go-laundry/models"

	"go.uber.org/zap"
)

// LostItemStore is the persistence gateway for lost-item reports.
type LostItemStore interface {
	Insert(ctx context.Context, item *models.LostItem) (string, error)
	Get(ctx context.Context, id string) (*models.LostItem, error)
	ListAll(ctx context.Context) ([]models.LostItem, error)
	ListByReporter(ctx context.Context, userID string) ([]models.LostItem, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

// FileStore is the blob gateway for report images.
type FileStore interface {
	Save(key string, r io.Reader) (string, error)
	Delete(url string) error
}

// LostItemService owns lost-item reports: creation with an optional uploaded
// image, listing, substring search and staff status changes.
type LostItemService struct {
	store LostItemStore
	files FileStore
	users UserStore
	log   *zap.Logger
	now   func() time.Time
}

// NewLostItemService creates a new LostItemService
func NewLostItemService(store LostItemStore, files FileStore, users UserStore, log *zap.Logger) *LostItemService {
	return &LostItemService{
		store: store,
		files: files,
		users: users,
		log:   log,
		now:   time.Now,
	}
}

// Report files a new lost-item record. When an image is supplied it is stored
// first, under a key derived from the report time and original filename, and
// its URL is kept on the record.
func (s *LostItemService) Report(ctx context.Context, item *models.LostItem, image io.Reader, filename string) (string, error) {
	now := s.now().UTC()

	if image != nil {
		key := fmt.Sprintf("lost-items/%d-%s", now.UnixMilli(), filename)
		url, err := s.files.Save(key, image)
		if err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("lost_item_image").Inc()
			return "", fmt.Errorf("failed to store report image: %w", err)
		}
		item.ImageURL = url
	}

	item.Status = models.LostItemStatusReported
	item.ReportedAt = now

	id, err := s.store.Insert(ctx, item)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("lost_item_report").Inc()
		return "", err
	}
	metrics.LostItemReportsTotal.Inc()
	return id, nil
}

// List returns all reports, or only those filed by reporterID when it is
// non-empty. Ordering (newest first) is delegated to the store.
func (s *LostItemService) List(ctx context.Context, reporterID string) ([]models.LostItem, error) {
	if reporterID != "" {
		return s.store.ListByReporter(ctx, reporterID)
	}
	return s.store.ListAll(ctx)
}

// Search retains reports whose type, color, brand or description contains the
// term as a case-insensitive substring. This is a linear scan over the full
// collection; fine at campus scale.
func (s *LostItemService) Search(ctx context.Context, term string) ([]models.LostItem, error) {
	items, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	var matched []models.LostItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ItemType), term) ||
			strings.Contains(strings.ToLower(item.Color), term) ||
			strings.Contains(strings.ToLower(item.Brand), term) ||
			strings.Contains(strings.ToLower(item.Description), term) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Get returns the report or nil when it is missing.
func (s *LostItemService) Get(ctx context.Context, id string) (*models.LostItem, error) {
	return s.store.Get(ctx, id)
}

// GetOwner returns the reporting user, for contact disclosure on a found item.
func (s *LostItemService) GetOwner(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateStatus sets the report status (staff only at the HTTP layer).
func (s *LostItemService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidLostItemStatus(status) {
		return fmt.Errorf("invalid lost item status %q", status)
	}
	return s.store.UpdateStatus(ctx, id, status, s.now().UTC())
}

// Delete removes the report, deleting its stored image first. A failed image
// delete is logged and does not abort the record deletion: the record wins
// over storage cleanliness.
func (s *LostItemService) Delete(ctx context.Context, id, imageURL string) error {
	if imageURL != "" {
		if err := s.files.Delete(imageURL); err != nil {
			s.log.Warn("failed to delete report image", zap.String("imageUrl", imageURL), zap.Error(err))
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("lost_item_delete").Inc()
		return err
	}
	return nil
}
