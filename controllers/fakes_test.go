package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func authedRequest(r *http.Request, claims *utils.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserContextKey, claims)
	return r.WithContext(ctx)
}

type stubLostItemStore struct {
	items map[string]*models.LostItem
}

func newStubLostItemStore() *stubLostItemStore {
	return &stubLostItemStore{items: make(map[string]*models.LostItem)}
}

func (s *stubLostItemStore) Insert(ctx context.Context, item *models.LostItem) (string, error) {
	item.ID = primitive.NewObjectID()
	stored := *item
	s.items[item.ID.Hex()] = &stored
	return item.ID.Hex(), nil
}

func (s *stubLostItemStore) Get(ctx context.Context, id string) (*models.LostItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	found := *item
	return &found, nil
}

func (s *stubLostItemStore) ListAll(ctx context.Context) ([]models.LostItem, error) {
	return nil, nil
}

func (s *stubLostItemStore) ListByReporter(ctx context.Context, userID string) ([]models.LostItem, error) {
	return nil, nil
}

func (s *stubLostItemStore) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	return nil
}

func (s *stubLostItemStore) Delete(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

type stubFileStore struct {
	saved   map[string]string
	deleted []string
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{saved: make(map[string]string)}
}

func (s *stubFileStore) Save(key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved[key] = string(data)
	return "http://localhost:8000/uploads/" + key, nil
}

func (s *stubFileStore) Delete(url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

type stubUserStore struct {
	users map[string]*models.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*models.User)}
}

func (s *stubUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	stored := *user
	s.users[user.ID.Hex()] = &stored
	return user.ID.Hex(), nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserStore) SearchByEmailPrefix(ctx context.Context, prefix string) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserStore) Update(ctx context.Context, id string, upd models.UserUpdate) error {
	return nil
}

type stubComplaintStore struct {
	complaints map[string]*models.Complaint
}

func newStubComplaintStore() *stubComplaintStore {
	return &stubComplaintStore{complaints: make(map[string]*models.Complaint)}
}

func (s *stubComplaintStore) Insert(ctx context.Context, complaint *models.Complaint) (string, error) {
	complaint.ID = primitive.NewObjectID()
	stored := *complaint
	s.complaints[complaint.ID.Hex()] = &stored
	return complaint.ID.Hex(), nil
}

func (s *stubComplaintStore) Get(ctx context.Context, id string) (*models.Complaint, error) {
	complaint, ok := s.complaints[id]
	if !ok {
		return nil, nil
	}
	found := *complaint
	return &found, nil
}

func (s *stubComplaintStore) ListAll(ctx context.Context) ([]models.Complaint, error) {
	return nil, nil
}

func (s *stubComplaintStore) ListByUser(ctx context.Context, userID string) ([]models.Complaint, error) {
	return nil, nil
}

func (s *stubComplaintStore) Update(ctx context.Context, id string, upd models.ComplaintUpdate) error {
	return nil
}

func (s *stubComplaintStore) Delete(ctx context.Context, id string) error {
	delete(s.complaints, id)
	return nil
}
