package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/document"
	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/mapper"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// binDAO implements dao.BinDAO using MongoDB.
type binDAO struct {
	*baseMongoDAO[entity.Bin, document.BinDocument]
}

// NewBinDAO creates a new MongoDB-based BinDAO.
func NewBinDAO(db *mongo.Database, idCounter *IDCounter) dao.BinDAO {
	return &binDAO{newBaseMongoDAO[entity.Bin, document.BinDocument](
		db, document.BinDocument{}.CollectionName(), idCounter, mapper.NewBinMapper())}
}

// FindByArea returns bins whose locality or landmark contains area.
func (d *binDAO) FindByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	pattern := containsRegex(area)
	return d.findMany(ctx, bson.M{"$or": []bson.M{
		{"locality": pattern},
		{"landmark": pattern},
	}})
}

// FindLocated returns bins with resolved coordinates.
func (d *binDAO) FindLocated(ctx context.Context) ([]*entity.Bin, error) {
	return d.findMany(ctx, bson.M{
		"latitude":  bson.M{"$ne": nil},
		"longitude": bson.M{"$ne": nil},
	})
}

// complaintDAO implements dao.ComplaintDAO using MongoDB.
type complaintDAO struct {
	*baseMongoDAO[entity.Complaint, document.ComplaintDocument]
}

// NewComplaintDAO creates a new MongoDB-based ComplaintDAO.
func NewComplaintDAO(db *mongo.Database, idCounter *IDCounter) dao.ComplaintDAO {
	return &complaintDAO{newBaseMongoDAO[entity.Complaint, document.ComplaintDocument](
		db, document.ComplaintDocument{}.CollectionName(), idCounter, mapper.NewComplaintMapper())}
}

// workDAO implements dao.WorkDAO using MongoDB.
type workDAO struct {
	*baseMongoDAO[entity.Work, document.WorkDocument]
}

// NewWorkDAO creates a new MongoDB-based WorkDAO.
func NewWorkDAO(db *mongo.Database, idCounter *IDCounter) dao.WorkDAO {
	return &workDAO{newBaseMongoDAO[entity.Work, document.WorkDocument](
		db, document.WorkDocument{}.CollectionName(), idCounter, mapper.NewWorkMapper())}
}

// ExistsByArea reports whether an entry for area exists.
func (d *workDAO) ExistsByArea(ctx context.Context, area string) (bool, error) {
	return d.exists(ctx, bson.M{"area": area})
}

// DeleteByDate removes all entries dated date.
func (d *workDAO) DeleteByDate(ctx context.Context, date string) (int64, error) {
	return d.deleteMany(ctx, bson.M{"date": date})
}
