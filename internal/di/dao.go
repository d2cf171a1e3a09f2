package di

import (
	"go.uber.org/fx"

	"github.com/jrjohn/smart-waste-go/internal/config"
	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
	gormdao "github.com/jrjohn/smart-waste-go/internal/domain/dao/gorm"
	mongodao "github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies based on database driver configuration.
// It selects the GORM or MongoDB implementation from the configured driver.
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideMongoIDCounter,
		provideAdminDAO,
		provideDriverDAO,
		provideUserDAO,
		provideBinDAO,
		provideComplaintDAO,
		provideWorkDAO,
	),
)

// provideMongoIDCounter creates an ID counter for MongoDB.
// Returns nil if SQL database is configured.
func provideMongoIDCounter(mongoDB *MongoDatabase) *mongodao.IDCounter {
	if mongoDB.DB == nil {
		return nil
	}
	return mongodao.NewIDCounter(mongoDB.DB)
}

func provideAdminDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.AdminDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewAdminDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewAdminDAO(sqlDB.DB)
}

func provideDriverDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.DriverDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewDriverDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewDriverDAO(sqlDB.DB)
}

func provideUserDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.UserDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewUserDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewUserDAO(sqlDB.DB)
}

func provideBinDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.BinDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewBinDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewBinDAO(sqlDB.DB)
}

func provideComplaintDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.ComplaintDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewComplaintDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewComplaintDAO(sqlDB.DB)
}

func provideWorkDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase, idCounter *mongodao.IDCounter) dao.WorkDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewWorkDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewWorkDAO(sqlDB.DB)
}
