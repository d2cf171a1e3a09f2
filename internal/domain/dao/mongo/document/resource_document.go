package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BinDocument represents a bin in MongoDB.
type BinDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	NumericID    uint               `bson:"numeric_id"`
	Bin          string             `bson:"bin"`
	Locality     string             `bson:"locality"`
	Landmark     string             `bson:"landmark"`
	City         string             `bson:"city"`
	LoadType     string             `bson:"loadType"`
	DriverEmail  string             `bson:"driverEmail"`
	CyclePeriod  string             `bson:"cyclePeriod"`
	BestRoute    string             `bson:"bestRoute"`
	Latitude     *float64           `bson:"latitude"`
	Longitude    *float64           `bson:"longitude"`
	LocationName *string            `bson:"locationName"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for bins.
func (BinDocument) CollectionName() string {
	return "bins"
}

// IsLocated reports whether the stored bin has coordinates.
func (d *BinDocument) IsLocated() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// ComplaintDocument represents a complaint in MongoDB.
type ComplaintDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"`
	BinArea   string             `bson:"binArea"`
	UserEmail string             `bson:"userEmail"`
	Complaint string             `bson:"complaint"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for complaints.
func (ComplaintDocument) CollectionName() string {
	return "complaints"
}

// WorkDocument represents a work entry in MongoDB.
type WorkDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"`
	Email     string             `bson:"email"`
	Area      string             `bson:"area"`
	Status    string             `bson:"status"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CollectionName returns the MongoDB collection name for work entries.
func (WorkDocument) CollectionName() string {
	return "works"
}
