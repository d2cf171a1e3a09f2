package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gormdao "github.com/jrjohn/smart-waste-go/internal/domain/dao/gorm"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/testutil"
)

// MockDriverDAO is a mock implementation of dao.DriverDAO
type MockDriverDAO struct {
	mock.Mock
}

func (m *MockDriverDAO) driver(args mock.Arguments) (*entity.Driver, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Driver), args.Error(1)
}

func (m *MockDriverDAO) Create(ctx context.Context, driver *entity.Driver) error {
	return m.Called(ctx, driver).Error(0)
}

func (m *MockDriverDAO) FindByID(ctx context.Context, id uint) (*entity.Driver, error) {
	return m.driver(m.Called(ctx, id))
}

func (m *MockDriverDAO) FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Driver, error) {
	return m.driver(m.Called(ctx, uid))
}

func (m *MockDriverDAO) Update(ctx context.Context, driver *entity.Driver) error {
	return m.Called(ctx, driver).Error(0)
}

func (m *MockDriverDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDriverDAO) FindAll(ctx context.Context) ([]*entity.Driver, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Driver), args.Error(1)
}

func (m *MockDriverDAO) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverDAO) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	args := m.Called(ctx, field, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverDAO) FindByEmail(ctx context.Context, email string) (*entity.Driver, error) {
	return m.driver(m.Called(ctx, email))
}

func (m *MockDriverDAO) ExistsByEmailOrMobile(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, mobile, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverDAO) FindByCode(ctx context.Context, code string) (*entity.Driver, error) {
	return m.driver(m.Called(ctx, code))
}

func (m *MockDriverDAO) SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	return m.driver(m.Called(ctx, fragment))
}

// MockWorkDAO is a mock implementation of dao.WorkDAO
type MockWorkDAO struct {
	mock.Mock
}

func (m *MockWorkDAO) Create(ctx context.Context, work *entity.Work) error {
	return m.Called(ctx, work).Error(0)
}

func (m *MockWorkDAO) FindByID(ctx context.Context, id uint) (*entity.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Work), args.Error(1)
}

func (m *MockWorkDAO) Update(ctx context.Context, work *entity.Work) error {
	return m.Called(ctx, work).Error(0)
}

func (m *MockWorkDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockWorkDAO) FindAll(ctx context.Context) ([]*entity.Work, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Work), args.Error(1)
}

func (m *MockWorkDAO) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkDAO) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	args := m.Called(ctx, field, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkDAO) ExistsByArea(ctx context.Context, area string) (bool, error) {
	args := m.Called(ctx, area)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkDAO) DeleteByDate(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func TestDriverRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByCode", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		expected := &entity.Driver{ID: 1, Code: "DRV-1"}
		mockDAO.On("FindByCode", ctx, "DRV-1").Return(expected, nil)

		driver, err := repo.GetByCode(ctx, "DRV-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, driver)
		mockDAO.AssertExpectations(t)
	})

	t.Run("GetByUID", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		uid := uuid.New()
		expected := &entity.Driver{ID: 1, AccountKey: entity.AccountKey{UID: uid}}
		mockDAO.On("FindByUID", ctx, uid).Return(expected, nil)

		driver, err := repo.GetByUID(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, expected, driver)
		mockDAO.AssertExpectations(t)
	})

	t.Run("SearchByEmail not found", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		mockDAO.On("SearchByEmail", ctx, "nobody").Return(nil, nil)

		driver, err := repo.SearchByEmail(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, driver)
		mockDAO.AssertExpectations(t)
	})

	t.Run("IdentityTaken", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		mockDAO.On("ExistsByEmailOrMobile", ctx, "a@fleet.com", "9000000000", uint(3)).Return(true, nil)

		taken, err := repo.IdentityTaken(ctx, "a@fleet.com", "9000000000", 3)
		assert.NoError(t, err)
		assert.True(t, taken)
		mockDAO.AssertExpectations(t)
	})

	t.Run("Delete propagates error", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		mockDAO.On("Delete", ctx, uint(9)).Return(errors.New("db down"))

		assert.Error(t, repo.Delete(ctx, 9))
		mockDAO.AssertExpectations(t)
	})

	t.Run("List", func(t *testing.T) {
		mockDAO := new(MockDriverDAO)
		repo := NewDriverRepository(mockDAO)

		expected := []*entity.Driver{{ID: 1}, {ID: 2}}
		mockDAO.On("FindAll", ctx).Return(expected, nil)

		drivers, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, drivers)
		mockDAO.AssertExpectations(t)
	})
}

func TestWorkRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("AreaTaken", func(t *testing.T) {
		mockDAO := new(MockWorkDAO)
		repo := NewWorkRepository(mockDAO)

		mockDAO.On("ExistsByArea", ctx, "North").Return(true, nil)

		taken, err := repo.AreaTaken(ctx, "North")
		assert.NoError(t, err)
		assert.True(t, taken)
		mockDAO.AssertExpectations(t)
	})

	t.Run("DeleteByDate", func(t *testing.T) {
		mockDAO := new(MockWorkDAO)
		repo := NewWorkRepository(mockDAO)

		mockDAO.On("DeleteByDate", ctx, "2024-05-01").Return(int64(4), nil)

		removed, err := repo.DeleteByDate(ctx, "2024-05-01")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), removed)
		mockDAO.AssertExpectations(t)
	})
}

func TestRepositories_SQLite(t *testing.T) {
	db := testutil.NewTestSQLiteDB(t)
	ctx := context.Background()

	admins := NewAdminRepository(gormdao.NewAdminDAO(db))
	admin := &entity.Admin{Name: "A", Email: "a@example.com", Password: "h", Mobile: "1111111111"}
	require.NoError(t, admins.Create(ctx, admin))
	list, err := admins.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	users := NewUserRepository(gormdao.NewUserDAO(db))
	user := &entity.User{Name: "U", Email: "u@example.com", Password: "h", Mobile: "2222222222"}
	now := time.Now().UTC()
	user.SetResetToken("digest", now.Add(time.Hour))
	require.NoError(t, users.Create(ctx, user))
	byToken, err := users.GetByResetToken(ctx, "digest", now)
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, user.ID, byToken.ID)

	// Row ids restart per table; session subjects never collide
	assert.Equal(t, admin.ID, user.ID)
	assert.NotEqual(t, admin.UID, user.UID)
	byUID, err := users.GetByUID(ctx, user.UID)
	require.NoError(t, err)
	require.NotNil(t, byUID)
	assert.Equal(t, "u@example.com", byUID.Email)
	foreign, err := users.GetByUID(ctx, admin.UID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	bins := NewBinRepository(gormdao.NewBinDAO(db))
	require.NoError(t, bins.Create(ctx, &entity.Bin{Label: "B1", Locality: "Market Road", City: "Pune"}))
	byArea, err := bins.ListByArea(ctx, "market")
	require.NoError(t, err)
	assert.Len(t, byArea, 1)

	complaints := NewComplaintRepository(gormdao.NewComplaintDAO(db))
	c := &entity.Complaint{BinArea: "Ward 4", UserEmail: "u@example.com", Text: "full", Date: "2024-05-01", Time: "09:00", Status: entity.ComplaintPending}
	require.NoError(t, complaints.Create(ctx, c))
	got, err := complaints.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "full", got.Text)
}
