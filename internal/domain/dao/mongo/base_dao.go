// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
)

// IDCounter manages auto-incrementing IDs for MongoDB documents.
// This provides SQL-like uint IDs for compatibility with the domain entities.
type IDCounter struct {
	collection *mongo.Collection
	mu         sync.Mutex
}

// counterDocument represents the structure stored in the counters collection.
type counterDocument struct {
	ID    string `bson:"_id"`
	Value uint   `bson:"value"`
}

// NewIDCounter creates a new IDCounter for a MongoDB database.
func NewIDCounter(db *mongo.Database) *IDCounter {
	return &IDCounter{
		collection: db.Collection("counters"),
	}
}

// NextID returns the next available ID for a given collection.
func (c *IDCounter) NextID(ctx context.Context, collectionName string) (uint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filter := bson.M{"_id": collectionName}
	update := bson.M{"$inc": bson.M{"value": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := c.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Value, nil
}

// documentMapper converts one entity type to its document and back.
type documentMapper[T any, D any] interface {
	ToDocument(*T) *D
	ToEntity(*D) *T
	ToEntities([]*D) []*T
	ID(*T) uint
	Stamp(e *T, id uint, now time.Time)
}

// baseMongoDAO provides common MongoDB operations for all entity DAOs.
// It implements the generic BaseDAO interface keyed on numeric_id.
type baseMongoDAO[T any, D any] struct {
	collection *mongo.Collection
	idCounter  *IDCounter
	mapper     documentMapper[T, D]
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO[T any, D any](db *mongo.Database, collectionName string, idCounter *IDCounter, m documentMapper[T, D]) *baseMongoDAO[T, D] {
	return &baseMongoDAO[T, D]{
		collection: db.Collection(collectionName),
		idCounter:  idCounter,
		mapper:     m,
	}
}

// Create assigns a numeric ID and inserts the entity.
func (d *baseMongoDAO[T, D]) Create(ctx context.Context, e *T) error {
	id, err := d.idCounter.NextID(ctx, d.collection.Name())
	if err != nil {
		return err
	}
	d.mapper.Stamp(e, id, time.Now())

	_, err = d.collection.InsertOne(ctx, d.mapper.ToDocument(e))
	return translateError(err)
}

// FindByID retrieves an entity by its numeric ID.
// Returns nil, nil if the entity is not found.
func (d *baseMongoDAO[T, D]) FindByID(ctx context.Context, id uint) (*T, error) {
	return d.findOne(ctx, bson.M{"numeric_id": id})
}

// Update overwrites the stored document of an existing entity.
func (d *baseMongoDAO[T, D]) Update(ctx context.Context, e *T) error {
	d.mapper.Stamp(e, 0, time.Now())

	filter := bson.M{"numeric_id": d.mapper.ID(e)}
	update := bson.M{"$set": d.mapper.ToDocument(e)}
	_, err := d.collection.UpdateOne(ctx, filter, update)
	return translateError(err)
}

// Delete permanently removes an entity by its numeric ID.
func (d *baseMongoDAO[T, D]) Delete(ctx context.Context, id uint) error {
	_, err := d.collection.DeleteOne(ctx, bson.M{"numeric_id": id})
	return err
}

// FindAll retrieves every entity ordered by numeric ID.
func (d *baseMongoDAO[T, D]) FindAll(ctx context.Context) ([]*T, error) {
	return d.findMany(ctx, bson.M{})
}

// Count returns the total number of entities.
func (d *baseMongoDAO[T, D]) Count(ctx context.Context) (int64, error) {
	return d.collection.CountDocuments(ctx, bson.M{})
}

// ExistsBy checks if a document exists by a field value.
func (d *baseMongoDAO[T, D]) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	return d.exists(ctx, bson.M{field: value})
}

func (d *baseMongoDAO[T, D]) exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := d.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

// findOne returns the first document matching filter by numeric ID, or nil, nil.
func (d *baseMongoDAO[T, D]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "numeric_id", Value: 1}})

	var doc D
	err := d.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// findMany returns every document matching filter ordered by numeric ID.
func (d *baseMongoDAO[T, D]) findMany(ctx context.Context, filter bson.M) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "numeric_id", Value: 1}})

	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

// deleteMany deletes all documents matching the filter and returns the count.
func (d *baseMongoDAO[T, D]) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	result, err := d.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// translateError maps unique index violations onto dao.ErrDuplicateKey.
func translateError(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", dao.ErrDuplicateKey, err)
	}
	return err
}

// containsRegex matches s literally anywhere in a field, ignoring case.
func containsRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
