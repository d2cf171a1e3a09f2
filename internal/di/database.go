package di

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jrjohn/smart-waste-go/internal/config"
	httpctrl "github.com/jrjohn/smart-waste-go/internal/controller/http"
	mongodao "github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

const connectTimeout = 10 * time.Second

// SQLDatabase wraps *gorm.DB for SQL databases (MySQL, PostgreSQL, SQLite).
// DB may be nil if MongoDB is configured.
type SQLDatabase struct {
	DB *gorm.DB
}

// MongoDatabase wraps *mongo.Database for MongoDB.
// DB may be nil if a SQL database is configured.
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides database dependencies based on config
var DatabaseModule = fx.Module("database",
	fx.Provide(
		provideSQLDatabase,
		provideMongoDatabase,
		provideReadinessCheck,
	),
	fx.Invoke(runMigrations),
)

// persistedModels lists every gorm-managed entity in migration order
func persistedModels() []any {
	return []any{
		&entity.Admin{},
		&entity.Driver{},
		&entity.User{},
		&entity.Bin{},
		&entity.Complaint{},
		&entity.Work{},
	}
}

// provideSQLDatabase creates a GORM database connection for SQL databases.
func provideSQLDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*SQLDatabase, error) {
	if !cfg.IsSQL() {
		logger.Info("MongoDB configured, skipping SQL database")
		return &SQLDatabase{DB: nil}, nil
	}

	var dialector gorm.Dialector
	switch config.DatabaseDriver(cfg.Driver) {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported SQL driver: %s", cfg.Driver)
	}

	logger.Info("Connecting to SQL database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SQL database connection")
			return sqlDB.Close()
		},
	})

	return &SQLDatabase{DB: db}, nil
}

// provideMongoDatabase creates a MongoDB database connection.
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	if !cfg.IsMongoDB() {
		logger.Info("SQL database configured, skipping MongoDB")
		return &MongoDatabase{DB: nil, Client: nil}, nil
	}

	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: client.Database(cfg.Name), Client: client}, nil
}

// provideReadinessCheck pings whichever database is configured
func provideReadinessCheck(sqlDB *SQLDatabase, mongoDB *MongoDatabase) httpctrl.ReadinessCheck {
	return func(ctx context.Context) error {
		if sqlDB.DB != nil {
			db, err := sqlDB.DB.DB()
			if err != nil {
				return err
			}
			return db.PingContext(ctx)
		}
		if mongoDB.Client != nil {
			return mongoDB.Client.Ping(ctx, nil)
		}
		return nil
	}
}

// runMigrations runs database migrations based on the configured driver.
func runMigrations(sqlDB *SQLDatabase, mongoDB *MongoDatabase, logger *zap.Logger) error {
	if sqlDB.DB != nil {
		logger.Info("Running SQL database migrations")
		return sqlDB.DB.AutoMigrate(persistedModels()...)
	}

	if mongoDB.DB != nil {
		logger.Info("Creating MongoDB indexes")
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := mongodao.EnsureIndexes(ctx, mongoDB.DB); err != nil {
			logger.Error("Failed to create MongoDB indexes", zap.Error(err))
			return err
		}
		logger.Info("MongoDB indexes created successfully")
	}

	return nil
}
