package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"go-laundry/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("backend unavailable")

// fakeOrderStore is an in-memory OrderStore with switchable failures.
type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.LaundryOrder
	fail   bool
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]models.LaundryOrder)}
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.LaundryOrder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errStoreDown
	}
	order.ID = primitive.NewObjectID()
	id := order.ID.Hex()
	f.orders[id] = *order
	return id, nil
}

func (f *fakeOrderStore) Get(_ context.Context, id string) (*models.LaundryOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]models.LaundryOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	var orders []models.LaundryOrder
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) ListAll(_ context.Context) ([]models.LaundryOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	var orders []models.LaundryOrder
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	return orders, nil
}

func (f *fakeOrderStore) Update(_ context.Context, id string, upd models.OrderUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	order, ok := f.orders[id]
	if !ok {
		return nil
	}
	if upd.UserEmail != nil {
		order.UserEmail = *upd.UserEmail
	}
	if upd.Items != nil {
		order.Items = *upd.Items
	}
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.Progress != nil {
		order.Progress = *upd.Progress
	}
	if upd.CompletedAt != nil {
		t := *upd.CompletedAt
		order.CompletedAt = &t
	}
	if upd.EstimatedCompletionTime != nil {
		t := *upd.EstimatedCompletionTime
		order.EstimatedCompletionTime = &t
	}
	if upd.Notes != nil {
		order.Notes = *upd.Notes
	}
	if upd.Cost != nil {
		order.Cost = *upd.Cost
	}
	if upd.ClothItems != nil {
		items := *upd.ClothItems
		order.ClothItems = &items
	}
	if upd.BagCode != nil {
		order.BagCode = *upd.BagCode
	}
	if upd.UpdatedAt != nil {
		order.UpdatedAt = *upd.UpdatedAt
	}
	f.orders[id] = order
	return nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	delete(f.orders, id)
	return nil
}

// fakeLostItemStore is an in-memory LostItemStore; lists are returned newest
// first, matching the store-ordered contract.
type fakeLostItemStore struct {
	mu    sync.Mutex
	items map[string]models.LostItem
}

func newFakeLostItemStore() *fakeLostItemStore {
	return &fakeLostItemStore{items: make(map[string]models.LostItem)}
}

func (f *fakeLostItemStore) Insert(_ context.Context, item *models.LostItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = primitive.NewObjectID()
	id := item.ID.Hex()
	f.items[id] = *item
	return id, nil
}

func (f *fakeLostItemStore) Get(_ context.Context, id string) (*models.LostItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeLostItemStore) ListAll(_ context.Context) ([]models.LostItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []models.LostItem
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ReportedAt.After(items[j].ReportedAt) })
	return items, nil
}

func (f *fakeLostItemStore) ListByReporter(_ context.Context, userID string) ([]models.LostItem, error) {
	all, _ := f.ListAll(context.Background())
	var items []models.LostItem
	for _, item := range all {
		if item.ReportedBy == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeLostItemStore) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil
	}
	item.Status = status
	t := updatedAt
	item.UpdatedAt = &t
	f.items[id] = item
	return nil
}

func (f *fakeLostItemStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

// fakeFileStore records saves and deletes; deletes can be forced to fail.
type fakeFileStore struct {
	mu         sync.Mutex
	saved      map[string][]byte
	failDelete bool
	deletes    []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (f *fakeFileStore) Save(key string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := "http://files.test/uploads/" + key
	f.saved[url] = data
	return url, nil
}

func (f *fakeFileStore) Delete(url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, url)
	if f.failDelete {
		return errStoreDown
	}
	delete(f.saved, url)
	return nil
}

// fakeUserStore covers the lookups the services need.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	id := user.ID.Hex()
	f.users[id] = *user
	return id, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ListAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

func (f *fakeUserStore) SearchByEmailPrefix(_ context.Context, prefix string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for _, user := range f.users {
		if len(user.Email) >= len(prefix) && user.Email[:len(prefix)] == prefix {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Update(_ context.Context, id string, upd models.UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.ContactInfo != nil {
		user.ContactInfo = *upd.ContactInfo
	}
	if upd.IsAdmin != nil {
		user.IsAdmin = *upd.IsAdmin
	}
	f.users[id] = user
	return nil
}

// fakeComplaintStore is an in-memory ComplaintStore.
type fakeComplaintStore struct {
	mu         sync.Mutex
	complaints map[string]models.Complaint
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{complaints: make(map[string]models.Complaint)}
}

func (f *fakeComplaintStore) Insert(_ context.Context, complaint *models.Complaint) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint.ID = primitive.NewObjectID()
	id := complaint.ID.Hex()
	f.complaints[id] = *complaint
	return id, nil
}

func (f *fakeComplaintStore) Get(_ context.Context, id string) (*models.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint, ok := f.complaints[id]
	if !ok {
		return nil, nil
	}
	return &complaint, nil
}

func (f *fakeComplaintStore) ListAll(_ context.Context) ([]models.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var complaints []models.Complaint
	for _, complaint := range f.complaints {
		complaints = append(complaints, complaint)
	}
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].SubmittedAt.After(complaints[j].SubmittedAt)
	})
	return complaints, nil
}

func (f *fakeComplaintStore) ListByUser(_ context.Context, userID string) ([]models.Complaint, error) {
	all, _ := f.ListAll(context.Background())
	var complaints []models.Complaint
	for _, complaint := range all {
		if complaint.SubmittedBy == userID {
			complaints = append(complaints, complaint)
		}
	}
	return complaints, nil
}

func (f *fakeComplaintStore) Update(_ context.Context, id string, upd models.ComplaintUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	complaint, ok := f.complaints[id]
	if !ok {
		return nil
	}
	if upd.Status != nil {
		complaint.Status = *upd.Status
	}
	if upd.Response != nil {
		complaint.Response = *upd.Response
	}
	if upd.ResolvedAt != nil {
		t := *upd.ResolvedAt
		complaint.ResolvedAt = &t
	}
	if upd.UpdatedAt != nil {
		t := *upd.UpdatedAt
		complaint.UpdatedAt = &t
	}
	f.complaints[id] = complaint
	return nil
}

func (f *fakeComplaintStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.complaints, id)
	return nil
}
