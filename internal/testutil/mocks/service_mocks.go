package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/geocoding"
	"github.com/jrjohn/smart-waste-go/internal/security"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	SignupAdminFunc       func(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error)
	SignupUserFunc        func(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error)
	LoginFunc             func(ctx context.Context, role entity.Role, req *request.LoginRequest) (*response.SessionResponse, error)
	ListAdminsFunc        func(ctx context.Context) ([]*response.AccountResponse, error)
	ListUsersFunc         func(ctx context.Context) ([]*response.AccountResponse, error)
	GetUserByEmailFunc    func(ctx context.Context, email string) (*response.AccountResponse, error)
	UpdateUserProfileFunc func(ctx context.Context, identityID, pathID uint, req *request.UpdateProfileRequest) (*response.AccountResponse, error)
	ResolveFunc           func(ctx context.Context, role entity.Role, uid uuid.UUID) (*security.Identity, error)
}

var _ service.AccountService = (*MockAccountService)(nil)

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func mockSession(name, email string, role entity.Role) *response.SessionResponse {
	return &response.SessionResponse{
		Account: &response.AccountResponse{ID: 1, Name: name, Email: email, Role: role},
		Token:   "mock-session-token",
	}
}

func (m *MockAccountService) SignupAdmin(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error) {
	if m.SignupAdminFunc != nil {
		return m.SignupAdminFunc(ctx, req)
	}
	return mockSession(req.Name, req.Email, entity.RoleAdmin), nil
}

func (m *MockAccountService) SignupUser(ctx context.Context, req *request.SignupRequest) (*response.SessionResponse, error) {
	if m.SignupUserFunc != nil {
		return m.SignupUserFunc(ctx, req)
	}
	return mockSession(req.Name, req.Email, entity.RoleUser), nil
}

func (m *MockAccountService) Login(ctx context.Context, role entity.Role, req *request.LoginRequest) (*response.SessionResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, role, req)
	}
	return mockSession("mock", req.Email, role), nil
}

func (m *MockAccountService) ListAdmins(ctx context.Context) ([]*response.AccountResponse, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return []*response.AccountResponse{}, nil
}

func (m *MockAccountService) ListUsers(ctx context.Context) ([]*response.AccountResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []*response.AccountResponse{}, nil
}

func (m *MockAccountService) GetUserByEmail(ctx context.Context, email string) (*response.AccountResponse, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return &response.AccountResponse{ID: 1, Email: email, Role: entity.RoleUser}, nil
}

func (m *MockAccountService) UpdateUserProfile(ctx context.Context, identityID, pathID uint, req *request.UpdateProfileRequest) (*response.AccountResponse, error) {
	if m.UpdateUserProfileFunc != nil {
		return m.UpdateUserProfileFunc(ctx, identityID, pathID, req)
	}
	return &response.AccountResponse{ID: pathID, Email: req.Email, Mobile: req.Mobile, City: req.City, Role: entity.RoleUser}, nil
}

func (m *MockAccountService) Resolve(ctx context.Context, role entity.Role, uid uuid.UUID) (*security.Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, role, uid)
	}
	return &security.Identity{ID: 1, Role: role, Name: "mock", Email: "mock@example.com"}, nil
}

// MockDriverService is a mock implementation of DriverService
type MockDriverService struct {
	CreateFunc      func(ctx context.Context, req *request.CreateDriverRequest) (*entity.Driver, error)
	ListFunc        func(ctx context.Context) ([]*entity.Driver, error)
	FindByEmailFunc func(ctx context.Context, fragment string) (*entity.Driver, error)
	UpdateFunc      func(ctx context.Context, idOrCode string, req *request.UpdateDriverRequest) (*entity.Driver, error)
	DeleteFunc      func(ctx context.Context, idOrCode string) error
}

var _ service.DriverService = (*MockDriverService)(nil)

func NewMockDriverService() *MockDriverService {
	return &MockDriverService{}
}

func (m *MockDriverService) Create(ctx context.Context, req *request.CreateDriverRequest) (*entity.Driver, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &entity.Driver{ID: 1, Code: req.Code, Name: req.Name, Email: req.Email, Mobile: req.Mobile}, nil
}

func (m *MockDriverService) List(ctx context.Context) ([]*entity.Driver, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*entity.Driver{}, nil
}

func (m *MockDriverService) FindByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, fragment)
	}
	return &entity.Driver{ID: 1, Email: fragment}, nil
}

func (m *MockDriverService) Update(ctx context.Context, idOrCode string, req *request.UpdateDriverRequest) (*entity.Driver, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, idOrCode, req)
	}
	return &entity.Driver{ID: 1, Code: idOrCode, Name: req.Name}, nil
}

func (m *MockDriverService) Delete(ctx context.Context, idOrCode string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, idOrCode)
	}
	return nil
}

// MockBinService is a mock implementation of BinService
type MockBinService struct {
	ListFunc       func(ctx context.Context) ([]*entity.Bin, error)
	FindByAreaFunc func(ctx context.Context, area string) ([]*entity.Bin, error)
	CreateFunc     func(ctx context.Context, req *request.BinRequest) (*entity.Bin, error)
	UpdateFunc     func(ctx context.Context, id uint, req *request.BinRequest) (*response.BinUpdateResponse, error)
	DeleteFunc     func(ctx context.Context, id uint) error
	MapFunc        func(ctx context.Context) (*geojson.FeatureCollection, error)
}

var _ service.BinService = (*MockBinService)(nil)

func NewMockBinService() *MockBinService {
	return &MockBinService{}
}

func (m *MockBinService) List(ctx context.Context) ([]*entity.Bin, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*entity.Bin{}, nil
}

func (m *MockBinService) FindByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	if m.FindByAreaFunc != nil {
		return m.FindByAreaFunc(ctx, area)
	}
	return []*entity.Bin{{ID: 1, Locality: area}}, nil
}

func (m *MockBinService) Create(ctx context.Context, req *request.BinRequest) (*entity.Bin, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &entity.Bin{ID: 1, Label: req.Bin, Locality: req.Locality, City: req.City}, nil
}

func (m *MockBinService) Update(ctx context.Context, id uint, req *request.BinRequest) (*response.BinUpdateResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &response.BinUpdateResponse{Bin: &entity.Bin{ID: id, Locality: req.Locality, City: req.City}}, nil
}

func (m *MockBinService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBinService) Map(ctx context.Context) (*geojson.FeatureCollection, error) {
	if m.MapFunc != nil {
		return m.MapFunc(ctx)
	}
	return &geojson.FeatureCollection{Features: []*geojson.Feature{}}, nil
}

// MockComplaintService is a mock implementation of ComplaintService
type MockComplaintService struct {
	CreateFunc       func(ctx context.Context, req *request.CreateComplaintRequest) (*entity.Complaint, error)
	ListFunc         func(ctx context.Context) ([]*entity.Complaint, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) (*entity.Complaint, error)
}

var _ service.ComplaintService = (*MockComplaintService)(nil)

func NewMockComplaintService() *MockComplaintService {
	return &MockComplaintService{}
}

func (m *MockComplaintService) Create(ctx context.Context, req *request.CreateComplaintRequest) (*entity.Complaint, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &entity.Complaint{ID: 1, BinArea: req.BinArea, UserEmail: req.UserEmail, Text: req.Complaint, Status: entity.ComplaintPending}, nil
}

func (m *MockComplaintService) List(ctx context.Context) ([]*entity.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*entity.Complaint{}, nil
}

func (m *MockComplaintService) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Complaint, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return &entity.Complaint{ID: id, Status: entity.ComplaintStatus(status)}, nil
}

// MockWorkService is a mock implementation of WorkService
type MockWorkService struct {
	CreateFunc   func(ctx context.Context, req *request.CreateWorkRequest) (*entity.Work, error)
	ListFunc     func(ctx context.Context) ([]*entity.Work, error)
	PurgeDayFunc func(ctx context.Context, day string) (int64, error)

	mu     sync.Mutex
	purged []string
}

var _ service.WorkService = (*MockWorkService)(nil)

func NewMockWorkService() *MockWorkService {
	return &MockWorkService{}
}

func (m *MockWorkService) Create(ctx context.Context, req *request.CreateWorkRequest) (*entity.Work, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &entity.Work{ID: 1, Email: req.Email, Area: req.Area, Status: entity.WorkStatus(req.Status)}, nil
}

func (m *MockWorkService) List(ctx context.Context) ([]*entity.Work, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*entity.Work{}, nil
}

func (m *MockWorkService) PurgeDay(ctx context.Context, day string) (int64, error) {
	m.mu.Lock()
	m.purged = append(m.purged, day)
	m.mu.Unlock()
	if m.PurgeDayFunc != nil {
		return m.PurgeDayFunc(ctx, day)
	}
	return 0, nil
}

// PurgedDays returns the days PurgeDay was called with
func (m *MockWorkService) PurgedDays() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.purged...)
}

// MockPasswordResetService is a mock implementation of PasswordResetService
type MockPasswordResetService struct {
	ForgotFunc func(ctx context.Context, email string) error
	ResetFunc  func(ctx context.Context, token, newPassword string) error
}

var _ service.PasswordResetService = (*MockPasswordResetService)(nil)

func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

func (m *MockPasswordResetService) Forgot(ctx context.Context, email string) error {
	if m.ForgotFunc != nil {
		return m.ForgotFunc(ctx, email)
	}
	return nil
}

func (m *MockPasswordResetService) Reset(ctx context.Context, token, newPassword string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, token, newPassword)
	}
	return nil
}

// StubGeocoder answers searches from a fixed table. Queries missing from
// Results return no places.
type StubGeocoder struct {
	Results map[string][]geocoding.Place
	Err     error

	mu      sync.Mutex
	queries []string
}

var _ geocoding.Geocoder = (*StubGeocoder)(nil)

func NewStubGeocoder() *StubGeocoder {
	return &StubGeocoder{Results: make(map[string][]geocoding.Place)}
}

func (g *StubGeocoder) Search(ctx context.Context, query string) ([]geocoding.Place, error) {
	g.mu.Lock()
	g.queries = append(g.queries, query)
	g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Results[query], nil
}

// Queries returns every query searched so far, in order
func (g *StubGeocoder) Queries() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.queries...)
}

// SentMail is a message recorded by MockNotifier
type SentMail struct {
	Kind     string
	To       string
	ResetURL string
	TTL      time.Duration
}

// MockNotifier records reset emails instead of sending them
type MockNotifier struct {
	ResetErr   error
	SuccessErr error

	mu   sync.Mutex
	sent []SentMail
}

var _ service.Notifier = (*MockNotifier)(nil)

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) SendPasswordReset(ctx context.Context, to, resetURL string, ttl time.Duration) error {
	if n.ResetErr != nil {
		return n.ResetErr
	}
	n.record(SentMail{Kind: "reset", To: to, ResetURL: resetURL, TTL: ttl})
	return nil
}

func (n *MockNotifier) SendResetSuccessful(ctx context.Context, to string) error {
	if n.SuccessErr != nil {
		return n.SuccessErr
	}
	n.record(SentMail{Kind: "success", To: to})
	return nil
}

func (n *MockNotifier) record(m SentMail) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
}

// Sent returns the recorded messages
func (n *MockNotifier) Sent() []SentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]SentMail(nil), n.sent...)
}
