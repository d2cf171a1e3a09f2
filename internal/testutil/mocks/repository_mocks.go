package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
)

// memStore keeps value copies so callers never share state with the store.
type memStore[T any] struct {
	mu     sync.RWMutex
	items  map[uint]T
	nextID uint
	getID  func(*T) uint
	setID  func(*T, uint)
}

func newMemStore[T any](getID func(*T) uint, setID func(*T, uint)) *memStore[T] {
	return &memStore[T]{items: make(map[uint]T), nextID: 1, getID: getID, setID: setID}
}

func (s *memStore[T]) create(e *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := any(e).(interface{ EnsureUID() }); ok {
		k.EnsureUID()
	}
	s.setID(e, s.nextID)
	s.nextID++
	s.items[s.getID(e)] = *e
}

func (s *memStore[T]) get(id uint) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.items[id]; ok {
		return &v
	}
	return nil
}

func (s *memStore[T]) update(e *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[s.getID(e)]; ok {
		s.items[s.getID(e)] = *e
	}
}

func (s *memStore[T]) delete(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *memStore[T]) filter(match func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, 0, len(s.items))
	for _, v := range s.items {
		v := v
		if match == nil || match(&v) {
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.getID(out[i]) < s.getID(out[j]) })
	return out
}

func (s *memStore[T]) first(match func(*T) bool) *T {
	if found := s.filter(match); len(found) > 0 {
		return found[0]
	}
	return nil
}

func identityTaken(email, mobile string, excludeID uint) func(id uint, e, m string) bool {
	return func(id uint, e, m string) bool {
		if id == excludeID {
			return false
		}
		return (email != "" && e == email) || (mobile != "" && m == mobile)
	}
}

// MockAdminRepository is an in-memory AdminRepository
type MockAdminRepository struct {
	store *memStore[entity.Admin]

	// Error injection
	CreateErr        error
	GetByIDErr       error
	GetByEmailErr    error
	ListErr          error
	IdentityTakenErr error
}

var _ repository.AdminRepository = (*MockAdminRepository)(nil)

func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{store: newMemStore(
		func(a *entity.Admin) uint { return a.ID },
		func(a *entity.Admin, id uint) { a.ID = id },
	)}
}

func (r *MockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(admin)
	return nil
}

func (r *MockAdminRepository) GetByID(ctx context.Context, id uint) (*entity.Admin, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.get(id), nil
}

func (r *MockAdminRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Admin, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.first(func(a *entity.Admin) bool { return a.UID == uid }), nil
}

func (r *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	return r.store.first(func(a *entity.Admin) bool { return a.Email == email }), nil
}

func (r *MockAdminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

func (r *MockAdminRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	if r.IdentityTakenErr != nil {
		return false, r.IdentityTakenErr
	}
	taken := identityTaken(email, mobile, excludeID)
	return r.store.first(func(a *entity.Admin) bool { return taken(a.ID, a.Email, a.Mobile) }) != nil, nil
}

// MockDriverRepository is an in-memory DriverRepository
type MockDriverRepository struct {
	store *memStore[entity.Driver]

	// Error injection
	CreateErr        error
	GetByIDErr       error
	UpdateErr        error
	DeleteErr        error
	ListErr          error
	IdentityTakenErr error
}

var _ repository.DriverRepository = (*MockDriverRepository)(nil)

func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{store: newMemStore(
		func(d *entity.Driver) uint { return d.ID },
		func(d *entity.Driver, id uint) { d.ID = id },
	)}
}

func (r *MockDriverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(driver)
	return nil
}

func (r *MockDriverRepository) GetByID(ctx context.Context, id uint) (*entity.Driver, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.get(id), nil
}

func (r *MockDriverRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.Driver, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.first(func(d *entity.Driver) bool { return d.UID == uid }), nil
}

func (r *MockDriverRepository) GetByCode(ctx context.Context, code string) (*entity.Driver, error) {
	return r.store.first(func(d *entity.Driver) bool { return d.Code == code }), nil
}

func (r *MockDriverRepository) GetByEmail(ctx context.Context, email string) (*entity.Driver, error) {
	return r.store.first(func(d *entity.Driver) bool { return d.Email == email }), nil
}

func (r *MockDriverRepository) SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	fragment = strings.ToLower(fragment)
	return r.store.first(func(d *entity.Driver) bool {
		return strings.Contains(strings.ToLower(d.Email), fragment)
	}), nil
}

func (r *MockDriverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.store.update(driver)
	return nil
}

func (r *MockDriverRepository) Delete(ctx context.Context, id uint) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.store.delete(id)
	return nil
}

func (r *MockDriverRepository) List(ctx context.Context) ([]*entity.Driver, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

func (r *MockDriverRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	if r.IdentityTakenErr != nil {
		return false, r.IdentityTakenErr
	}
	taken := identityTaken(email, mobile, excludeID)
	return r.store.first(func(d *entity.Driver) bool { return taken(d.ID, d.Email, d.Mobile) }) != nil, nil
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	store *memStore[entity.User]

	// Error injection
	CreateErr          error
	GetByIDErr         error
	GetByEmailErr      error
	GetByResetTokenErr error
	UpdateErr          error
	ListErr            error
	IdentityTakenErr   error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{store: newMemStore(
		func(u *entity.User) uint { return u.ID },
		func(u *entity.User, id uint) { u.ID = id },
	)}
}

func (r *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(user)
	return nil
}

func (r *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.get(id), nil
}

func (r *MockUserRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.first(func(u *entity.User) bool { return u.UID == uid }), nil
}

func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	return r.store.first(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *MockUserRepository) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	if r.GetByResetTokenErr != nil {
		return nil, r.GetByResetTokenErr
	}
	return r.store.first(func(u *entity.User) bool { return u.HasValidResetToken(tokenHash, now) }), nil
}

func (r *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.store.update(user)
	return nil
}

func (r *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

func (r *MockUserRepository) IdentityTaken(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	if r.IdentityTakenErr != nil {
		return false, r.IdentityTakenErr
	}
	taken := identityTaken(email, mobile, excludeID)
	return r.store.first(func(u *entity.User) bool { return taken(u.ID, u.Email, u.Mobile) }) != nil, nil
}

// MockBinRepository is an in-memory BinRepository
type MockBinRepository struct {
	store *memStore[entity.Bin]

	// Error injection
	CreateErr  error
	GetByIDErr error
	UpdateErr  error
	DeleteErr  error
	ListErr    error
}

var _ repository.BinRepository = (*MockBinRepository)(nil)

func NewMockBinRepository() *MockBinRepository {
	return &MockBinRepository{store: newMemStore(
		func(b *entity.Bin) uint { return b.ID },
		func(b *entity.Bin, id uint) { b.ID = id },
	)}
}

func (r *MockBinRepository) Create(ctx context.Context, bin *entity.Bin) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(bin)
	return nil
}

func (r *MockBinRepository) GetByID(ctx context.Context, id uint) (*entity.Bin, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	return r.store.get(id), nil
}

func (r *MockBinRepository) Update(ctx context.Context, bin *entity.Bin) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.store.update(bin)
	return nil
}

func (r *MockBinRepository) Delete(ctx context.Context, id uint) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.store.delete(id)
	return nil
}

func (r *MockBinRepository) List(ctx context.Context) ([]*entity.Bin, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

func (r *MockBinRepository) ListByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	area = strings.ToLower(area)
	return r.store.filter(func(b *entity.Bin) bool {
		return strings.Contains(strings.ToLower(b.Locality), area) ||
			strings.Contains(strings.ToLower(b.Landmark), area)
	}), nil
}

func (r *MockBinRepository) ListLocated(ctx context.Context) ([]*entity.Bin, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(func(b *entity.Bin) bool { return b.IsLocated() }), nil
}

// MockComplaintRepository is an in-memory ComplaintRepository
type MockComplaintRepository struct {
	store *memStore[entity.Complaint]

	// Error injection
	CreateErr error
	UpdateErr error
	ListErr   error
}

var _ repository.ComplaintRepository = (*MockComplaintRepository)(nil)

func NewMockComplaintRepository() *MockComplaintRepository {
	return &MockComplaintRepository{store: newMemStore(
		func(c *entity.Complaint) uint { return c.ID },
		func(c *entity.Complaint, id uint) { c.ID = id },
	)}
}

func (r *MockComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(complaint)
	return nil
}

func (r *MockComplaintRepository) GetByID(ctx context.Context, id uint) (*entity.Complaint, error) {
	return r.store.get(id), nil
}

func (r *MockComplaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.store.update(complaint)
	return nil
}

func (r *MockComplaintRepository) List(ctx context.Context) ([]*entity.Complaint, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

// MockWorkRepository is an in-memory WorkRepository
type MockWorkRepository struct {
	store *memStore[entity.Work]

	// Error injection
	CreateErr       error
	ListErr         error
	AreaTakenErr    error
	DeleteByDateErr error
}

var _ repository.WorkRepository = (*MockWorkRepository)(nil)

func NewMockWorkRepository() *MockWorkRepository {
	return &MockWorkRepository{store: newMemStore(
		func(w *entity.Work) uint { return w.ID },
		func(w *entity.Work, id uint) { w.ID = id },
	)}
}

func (r *MockWorkRepository) Create(ctx context.Context, work *entity.Work) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.store.create(work)
	return nil
}

func (r *MockWorkRepository) List(ctx context.Context) ([]*entity.Work, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.store.filter(nil), nil
}

func (r *MockWorkRepository) AreaTaken(ctx context.Context, area string) (bool, error) {
	if r.AreaTakenErr != nil {
		return false, r.AreaTakenErr
	}
	return r.store.first(func(w *entity.Work) bool { return w.Area == area }) != nil, nil
}

func (r *MockWorkRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	if r.DeleteByDateErr != nil {
		return 0, r.DeleteByDateErr
	}
	var n int64
	for _, w := range r.store.filter(func(w *entity.Work) bool { return w.Date == date }) {
		r.store.delete(w.ID)
		n++
	}
	return n, nil
}
