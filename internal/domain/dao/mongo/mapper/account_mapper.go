// Package mapper converts between domain entities and MongoDB documents.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/document"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// AdminMapper converts between Admin entity and AdminDocument.
type AdminMapper struct{}

// NewAdminMapper creates a new AdminMapper instance.
func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

// ToDocument converts an Admin entity to an AdminDocument.
func (m *AdminMapper) ToDocument(admin *entity.Admin) *document.AdminDocument {
	if admin == nil {
		return nil
	}
	return &document.AdminDocument{
		NumericID: admin.ID,
		UID:       admin.UID.String(),
		Name:      admin.Name,
		Email:     admin.Email,
		Password:  admin.Password,
		Mobile:    admin.Mobile,
		City:      admin.City,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// ToEntity converts an AdminDocument to an Admin entity.
func (m *AdminMapper) ToEntity(doc *document.AdminDocument) *entity.Admin {
	if doc == nil {
		return nil
	}
	return &entity.Admin{
		ID:         doc.NumericID,
		AccountKey: accountKey(doc.UID),
		Name:       doc.Name,
		Email:      doc.Email,
		Password:   doc.Password,
		Mobile:     doc.Mobile,
		City:       doc.City,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// ToEntities converts a slice of AdminDocument to Admin entities.
func (m *AdminMapper) ToEntities(docs []*document.AdminDocument) []*entity.Admin {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of admin.
func (m *AdminMapper) ID(admin *entity.Admin) uint {
	return admin.ID
}

// Stamp assigns the identifier and timestamps before a write.
func (m *AdminMapper) Stamp(admin *entity.Admin, id uint, now time.Time) {
	if id != 0 {
		admin.ID = id
		admin.EnsureUID()
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now
}

// DriverMapper converts between Driver entity and DriverDocument.
type DriverMapper struct{}

// NewDriverMapper creates a new DriverMapper instance.
func NewDriverMapper() *DriverMapper {
	return &DriverMapper{}
}

// ToDocument converts a Driver entity to a DriverDocument.
func (m *DriverMapper) ToDocument(driver *entity.Driver) *document.DriverDocument {
	if driver == nil {
		return nil
	}
	return &document.DriverDocument{
		NumericID: driver.ID,
		UID:       driver.UID.String(),
		Code:      driver.Code,
		Name:      driver.Name,
		Email:     driver.Email,
		Password:  driver.Password,
		Mobile:    driver.Mobile,
		Address:   driver.Address,
		Area:      driver.Area,
		CreatedAt: driver.CreatedAt,
		UpdatedAt: driver.UpdatedAt,
	}
}

// ToEntity converts a DriverDocument to a Driver entity.
func (m *DriverMapper) ToEntity(doc *document.DriverDocument) *entity.Driver {
	if doc == nil {
		return nil
	}
	return &entity.Driver{
		ID:         doc.NumericID,
		AccountKey: accountKey(doc.UID),
		Code:       doc.Code,
		Name:       doc.Name,
		Email:      doc.Email,
		Password:   doc.Password,
		Mobile:     doc.Mobile,
		Address:    doc.Address,
		Area:       doc.Area,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

// ToEntities converts a slice of DriverDocument to Driver entities.
func (m *DriverMapper) ToEntities(docs []*document.DriverDocument) []*entity.Driver {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of driver.
func (m *DriverMapper) ID(driver *entity.Driver) uint {
	return driver.ID
}

// Stamp assigns the identifier and timestamps before a write.
func (m *DriverMapper) Stamp(driver *entity.Driver, id uint, now time.Time) {
	if id != 0 {
		driver.ID = id
		driver.EnsureUID()
		driver.CreatedAt = now
	}
	driver.UpdatedAt = now
}

// UserMapper converts between User entity and UserDocument.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDocument converts a User entity to a UserDocument.
func (m *UserMapper) ToDocument(user *entity.User) *document.UserDocument {
	if user == nil {
		return nil
	}
	return &document.UserDocument{
		NumericID:        user.ID,
		UID:              user.UID.String(),
		Name:             user.Name,
		Email:            user.Email,
		Password:         user.Password,
		Mobile:           user.Mobile,
		City:             user.City,
		ResetToken:       user.ResetTokenHash,
		ResetTokenExpiry: user.ResetTokenExpiry,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

// ToEntity converts a UserDocument to a User entity.
func (m *UserMapper) ToEntity(doc *document.UserDocument) *entity.User {
	if doc == nil {
		return nil
	}
	return &entity.User{
		ID:               doc.NumericID,
		AccountKey:       accountKey(doc.UID),
		Name:             doc.Name,
		Email:            doc.Email,
		Password:         doc.Password,
		Mobile:           doc.Mobile,
		City:             doc.City,
		ResetTokenHash:   doc.ResetToken,
		ResetTokenExpiry: doc.ResetTokenExpiry,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

// ToEntities converts a slice of UserDocument to User entities.
func (m *UserMapper) ToEntities(docs []*document.UserDocument) []*entity.User {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of user.
func (m *UserMapper) ID(user *entity.User) uint {
	return user.ID
}

// Stamp assigns the identifier and timestamps before a write.
func (m *UserMapper) Stamp(user *entity.User, id uint, now time.Time) {
	if id != 0 {
		user.ID = id
		user.EnsureUID()
		user.CreatedAt = now
	}
	user.UpdatedAt = now
}

// accountKey parses a stored UID; documents written without one map to uuid.Nil
func accountKey(s string) entity.AccountKey {
	uid, err := uuid.Parse(s)
	if err != nil {
		return entity.AccountKey{}
	}
	return entity.AccountKey{UID: uid}
}

func mapAll[D any, T any](docs []*D, fn func(*D) *T) []*T {
	if docs == nil {
		return nil
	}
	out := make([]*T, len(docs))
	for i, doc := range docs {
		out[i] = fn(doc)
	}
	return out
}
