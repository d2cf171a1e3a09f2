package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/document"
)

// EnsureIndexes creates the unique and lookup indexes every collection
// relies on. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(keys ...string) mongo.IndexModel {
		return mongo.IndexModel{Keys: keysOf(keys), Options: options.Index().SetUnique(true)}
	}
	plain := func(keys ...string) mongo.IndexModel {
		return mongo.IndexModel{Keys: keysOf(keys)}
	}

	specs := map[string][]mongo.IndexModel{
		document.AdminDocument{}.CollectionName(): {
			unique("numeric_id"), unique("uid"), unique("email"), unique("mobile"),
		},
		document.DriverDocument{}.CollectionName(): {
			unique("numeric_id"), unique("uid"), unique("email"), unique("mobile"), unique("id"),
		},
		document.UserDocument{}.CollectionName(): {
			unique("numeric_id"), unique("uid"), unique("email"), unique("mobile"), plain("resetToken"),
		},
		document.BinDocument{}.CollectionName(): {
			unique("numeric_id"), plain("locality"), plain("landmark"),
		},
		document.ComplaintDocument{}.CollectionName(): {
			unique("numeric_id"), plain("userEmail"),
		},
		document.WorkDocument{}.CollectionName(): {
			unique("numeric_id"), unique("area"), plain("date"),
		},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func keysOf(fields []string) bson.D {
	keys := make(bson.D, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: 1})
	}
	return keys
}
