package service

import (
	"context"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
)

// BinService defines the interface for bin operations
type BinService interface {
	List(ctx context.Context) ([]*entity.Bin, error)

	// FindByArea returns bins whose locality or landmark contains area
	FindByArea(ctx context.Context, area string) ([]*entity.Bin, error)

	Create(ctx context.Context, req *request.BinRequest) (*entity.Bin, error)

	// Update stores the submitted fields together with the geocoded
	// location of the bin's address
	Update(ctx context.Context, id uint, req *request.BinRequest) (*response.BinUpdateResponse, error)

	Delete(ctx context.Context, id uint) error

	// Map returns every located bin as a GeoJSON feature collection
	Map(ctx context.Context) (*geojson.FeatureCollection, error)
}
