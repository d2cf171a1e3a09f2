// Package document defines MongoDB document structs for persistence.
// These structs are separate from domain entities so field names can follow
// the camelCase layout of the existing collections.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminDocument represents an administrator in MongoDB.
type AdminDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"`
	UID       string             `bson:"uid"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Mobile    string             `bson:"mobile"`
	City      string             `bson:"city"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for admins.
func (AdminDocument) CollectionName() string {
	return "admins"
}

// DriverDocument represents a driver in MongoDB. Code keeps the
// business identifier under the "id" key.
type DriverDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"`
	UID       string             `bson:"uid"`
	Code      string             `bson:"id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Mobile    string             `bson:"mobile"`
	Address   string             `bson:"address"`
	Area      string             `bson:"area"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for drivers.
func (DriverDocument) CollectionName() string {
	return "drivers"
}

// UserDocument represents a citizen account in MongoDB.
type UserDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	NumericID        uint               `bson:"numeric_id"`
	UID              string             `bson:"uid"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	Password         string             `bson:"password"`
	Mobile           string             `bson:"mobile"`
	City             string             `bson:"city"`
	ResetToken       *string            `bson:"resetToken"`
	ResetTokenExpiry *time.Time         `bson:"resetTokenExpiry"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for users.
func (UserDocument) CollectionName() string {
	return "users"
}
