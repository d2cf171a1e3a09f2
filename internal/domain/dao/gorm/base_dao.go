// Package gorm provides GORM-based DAO implementations for SQL databases
// (MySQL, PostgreSQL, SQLite).
package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao"
)

// baseGormDAO provides common GORM operations for all entity DAOs.
// It implements the generic BaseDAO interface for SQL databases.
type baseGormDAO[T any] struct {
	db *gorm.DB
}

// newBaseGormDAO creates a new base GORM DAO instance.
func newBaseGormDAO[T any](db *gorm.DB) *baseGormDAO[T] {
	return &baseGormDAO[T]{db: db}
}

// Create inserts a new entity into the database.
func (d *baseGormDAO[T]) Create(ctx context.Context, entity *T) error {
	return translateError(d.db.WithContext(ctx).Create(entity).Error)
}

// FindByID retrieves an entity by its primary key.
// Returns nil, nil if the entity is not found.
func (d *baseGormDAO[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := d.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update writes every column of an existing entity.
func (d *baseGormDAO[T]) Update(ctx context.Context, entity *T) error {
	return translateError(d.db.WithContext(ctx).Save(entity).Error)
}

// Delete permanently removes an entity by its ID.
func (d *baseGormDAO[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	return d.db.WithContext(ctx).Delete(&entity, id).Error
}

// FindAll retrieves every entity ordered by ID.
func (d *baseGormDAO[T]) FindAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := d.db.WithContext(ctx).Order("id").Find(&entities).Error
	return entities, err
}

// Count returns the total number of entities.
func (d *baseGormDAO[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var model T
	err := d.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}

// ExistsBy checks if an entity exists by a field value.
func (d *baseGormDAO[T]) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	var count int64
	var model T
	err := d.db.WithContext(ctx).
		Model(&model).
		Where(field+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

// findByField retrieves an entity by a specific field value.
func (d *baseGormDAO[T]) findByField(ctx context.Context, field string, value any) (*T, error) {
	return d.findOne(ctx, d.db.WithContext(ctx).Where(field+" = ?", value))
}

// findOne returns the first row of query ordered by ID, or nil, nil.
func (d *baseGormDAO[T]) findOne(ctx context.Context, query *gorm.DB) (*T, error) {
	var entity T
	err := query.Order("id").First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// deleteByField deletes entities matching a field value and returns the count.
func (d *baseGormDAO[T]) deleteByField(ctx context.Context, field string, value any) (int64, error) {
	var model T
	result := d.db.WithContext(ctx).Where(field+" = ?", value).Delete(&model)
	return result.RowsAffected, result.Error
}

// translateError maps driver unique violations onto dao.ErrDuplicateKey.
// Requires gorm.Config.TranslateError.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", dao.ErrDuplicateKey, err)
	}
	return err
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a lower-cased LIKE pattern matching s literally.
// Use with ESCAPE '!'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
