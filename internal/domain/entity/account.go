package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which account collection a principal lives in
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
	RoleUser   Role = "user"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleUser:
		return true
	}
	return false
}

// AccountKey is the subject carried in session tokens. Unlike ID it is
// unique across the admin, driver and user collections.
type AccountKey struct {
	UID uuid.UUID `gorm:"column:uid;type:varchar(36);uniqueIndex;not null" json:"-"`
}

// EnsureUID assigns a random UID when none is set yet
func (k *AccountKey) EnsureUID() {
	if k.UID == uuid.Nil {
		k.UID = uuid.New()
	}
}

// Admin is an administrator account
type Admin struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"_id"`
	AccountKey
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Mobile    string    `gorm:"uniqueIndex;size:10;not null" json:"mobile"`
	City      string    `gorm:"size:100" json:"city"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}

// Driver is a collection-truck driver. Code is the business identifier
// assigned by an administrator and is distinct from ID.
type Driver struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"_id"`
	AccountKey
	Code      string    `gorm:"column:driver_code;uniqueIndex;size:64;not null" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Mobile    string    `gorm:"uniqueIndex;size:10;not null" json:"mobile"`
	Address   string    `gorm:"size:255" json:"address"`
	Area      string    `gorm:"size:100" json:"area"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Driver
func (Driver) TableName() string {
	return "drivers"
}

// User is a citizen account that files complaints
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"_id"`
	AccountKey
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Mobile   string `gorm:"uniqueIndex;size:10;not null" json:"mobile"`
	City     string `gorm:"size:100" json:"city"`
	// ResetTokenHash is the SHA-256 digest of the outstanding reset token.
	ResetTokenHash   *string    `gorm:"column:reset_token;index;size:64" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry" json:"-"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// SetResetToken records a new reset token, replacing any outstanding one.
func (u *User) SetResetToken(hash string, expiresAt time.Time) {
	u.ResetTokenHash = &hash
	u.ResetTokenExpiry = &expiresAt
}

// ClearResetToken removes the outstanding reset token
func (u *User) ClearResetToken() {
	u.ResetTokenHash = nil
	u.ResetTokenExpiry = nil
}

// HasValidResetToken reports whether hash matches the outstanding token and
// that token has not expired at now.
func (u *User) HasValidResetToken(hash string, now time.Time) bool {
	if u.ResetTokenHash == nil || u.ResetTokenExpiry == nil {
		return false
	}
	return *u.ResetTokenHash == hash && now.Before(*u.ResetTokenExpiry)
}
