package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/document"
	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/mapper"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// accountMongoDAO implements the lookups shared by the credential collections.
type accountMongoDAO[T any, D any] struct {
	*baseMongoDAO[T, D]
}

// FindByUID retrieves an account by its session subject.
func (d *accountMongoDAO[T, D]) FindByUID(ctx context.Context, uid uuid.UUID) (*T, error) {
	return d.findOne(ctx, bson.M{"uid": uid.String()})
}

// FindByEmail retrieves an account by its email.
func (d *accountMongoDAO[T, D]) FindByEmail(ctx context.Context, email string) (*T, error) {
	return d.findOne(ctx, bson.M{"email": email})
}

// ExistsByEmailOrMobile checks whether another account holds email or mobile.
func (d *accountMongoDAO[T, D]) ExistsByEmailOrMobile(ctx context.Context, email, mobile string, excludeID uint) (bool, error) {
	var or []bson.M
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if mobile != "" {
		or = append(or, bson.M{"mobile": mobile})
	}
	if len(or) == 0 {
		return false, nil
	}

	filter := bson.M{"$or": or}
	if excludeID != 0 {
		filter["numeric_id"] = bson.M{"$ne": excludeID}
	}
	return d.exists(ctx, filter)
}

// adminDAO implements dao.AdminDAO using MongoDB.
type adminDAO struct {
	*accountMongoDAO[entity.Admin, document.AdminDocument]
}

// NewAdminDAO creates a new MongoDB-based AdminDAO.
func NewAdminDAO(db *mongo.Database, idCounter *IDCounter) dao.AdminDAO {
	base := newBaseMongoDAO[entity.Admin, document.AdminDocument](
		db, document.AdminDocument{}.CollectionName(), idCounter, mapper.NewAdminMapper())
	return &adminDAO{accountMongoDAO: &accountMongoDAO[entity.Admin, document.AdminDocument]{base}}
}

// driverDAO implements dao.DriverDAO using MongoDB.
type driverDAO struct {
	*accountMongoDAO[entity.Driver, document.DriverDocument]
}

// NewDriverDAO creates a new MongoDB-based DriverDAO.
func NewDriverDAO(db *mongo.Database, idCounter *IDCounter) dao.DriverDAO {
	base := newBaseMongoDAO[entity.Driver, document.DriverDocument](
		db, document.DriverDocument{}.CollectionName(), idCounter, mapper.NewDriverMapper())
	return &driverDAO{accountMongoDAO: &accountMongoDAO[entity.Driver, document.DriverDocument]{base}}
}

// FindByCode retrieves a driver by business identifier.
func (d *driverDAO) FindByCode(ctx context.Context, code string) (*entity.Driver, error) {
	return d.findOne(ctx, bson.M{"id": code})
}

// SearchByEmail returns the first driver whose email contains fragment.
func (d *driverDAO) SearchByEmail(ctx context.Context, fragment string) (*entity.Driver, error) {
	return d.findOne(ctx, bson.M{"email": containsRegex(fragment)})
}

// userDAO implements dao.UserDAO using MongoDB.
type userDAO struct {
	*accountMongoDAO[entity.User, document.UserDocument]
}

// NewUserDAO creates a new MongoDB-based UserDAO.
func NewUserDAO(db *mongo.Database, idCounter *IDCounter) dao.UserDAO {
	base := newBaseMongoDAO[entity.User, document.UserDocument](
		db, document.UserDocument{}.CollectionName(), idCounter, mapper.NewUserMapper())
	return &userDAO{accountMongoDAO: &accountMongoDAO[entity.User, document.UserDocument]{base}}
}

// FindByResetToken retrieves the user holding a still-valid reset token.
func (d *userDAO) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	return d.findOne(ctx, bson.M{
		"resetToken":       tokenHash,
		"resetTokenExpiry": bson.M{"$gt": now},
	})
}
