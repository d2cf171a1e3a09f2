package impl

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/repository"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/dto/response"
	"github.com/jrjohn/smart-waste-go/internal/geocoding"
)

// binService implements service.BinService
type binService struct {
	binRepo  repository.BinRepository
	geocoder geocoding.Geocoder
	logger   *zap.Logger
}

// NewBinService creates a new BinService instance
func NewBinService(binRepo repository.BinRepository, geocoder geocoding.Geocoder, logger *zap.Logger) service.BinService {
	return &binService{
		binRepo:  binRepo,
		geocoder: geocoder,
		logger:   logger.Named("bin"),
	}
}

func (s *binService) List(ctx context.Context) ([]*entity.Bin, error) {
	bins, err := s.binRepo.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return bins, nil
}

func (s *binService) FindByArea(ctx context.Context, area string) ([]*entity.Bin, error) {
	bins, err := s.binRepo.ListByArea(ctx, area)
	if err != nil {
		return nil, internal(err)
	}
	if len(bins) == 0 {
		return nil, service.NoBinsInArea(area)
	}
	return bins, nil
}

func (s *binService) Create(ctx context.Context, req *request.BinRequest) (*entity.Bin, error) {
	if strings.TrimSpace(req.Bin) == "" || strings.TrimSpace(req.Locality) == "" || strings.TrimSpace(req.City) == "" {
		return nil, service.ErrBinFieldsRequired
	}
	if err := validateBinEnums(req); err != nil {
		return nil, err
	}

	bin := &entity.Bin{}
	applyBinRequest(bin, req)
	if err := s.binRepo.Create(ctx, bin); err != nil {
		return nil, internal(err)
	}

	s.logger.Info("Bin created", zap.Uint("id", bin.ID), zap.String("locality", bin.Locality))
	return bin, nil
}

// Update geocodes "{locality}, {landmark}, {city}" and retries once with
// "{locality}, {city}". The bin is written only when one of them matches.
func (s *binService) Update(ctx context.Context, id uint, req *request.BinRequest) (*response.BinUpdateResponse, error) {
	if strings.TrimSpace(req.Locality) == "" || strings.TrimSpace(req.City) == "" {
		return nil, service.ErrLocalityCityRequired
	}
	if err := validateBinEnums(req); err != nil {
		return nil, err
	}

	bin, err := s.binRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internal(err)
	}
	if bin == nil {
		return nil, service.ErrBinNotFound
	}

	address := geocoding.JoinAddress(req.Locality, req.Landmark, req.City)
	reduced := geocoding.JoinAddress(req.Locality, req.City)

	result, err := geocoding.Resolve(ctx, s.geocoder, address, reduced)
	if errors.Is(err, geocoding.ErrNoMatch) {
		s.logger.Info("No geolocation found", zap.Uint("id", id), zap.String("address", address))
		return nil, service.NoGeolocation(address)
	}
	if err != nil {
		s.logger.Error("Geocoding failed", zap.Uint("id", id), zap.String("address", address), zap.Error(err))
		return nil, service.ErrGeocoderUnavailable.WithError(err)
	}

	applyBinRequest(bin, req)
	bin.Locate(result.Place.Latitude, result.Place.Longitude, result.Place.DisplayName)

	if err := s.binRepo.Update(ctx, bin); err != nil {
		return nil, internal(err)
	}

	s.logger.Info("Bin located",
		zap.Uint("id", id),
		zap.String("query", result.Query),
		zap.Bool("fallback", result.Fallback()),
	)
	return &response.BinUpdateResponse{Bin: bin, Fallback: result.Fallback(), Query: result.Query}, nil
}

func (s *binService) Delete(ctx context.Context, id uint) error {
	bin, err := s.binRepo.GetByID(ctx, id)
	if err != nil {
		return internal(err)
	}
	if bin == nil {
		return service.ErrBinNotFound
	}
	if err := s.binRepo.Delete(ctx, id); err != nil {
		return internal(err)
	}
	return nil
}

func (s *binService) Map(ctx context.Context) (*geojson.FeatureCollection, error) {
	bins, err := s.binRepo.ListLocated(ctx)
	if err != nil {
		return nil, internal(err)
	}

	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(bins))}
	for _, b := range bins {
		if !b.IsLocated() {
			continue
		}
		props := map[string]interface{}{
			"bin":         b.Label,
			"locality":    b.Locality,
			"landmark":    b.Landmark,
			"city":        b.City,
			"loadType":    b.LoadType,
			"driverEmail": b.DriverEmail,
			"cyclePeriod": b.CyclePeriod,
		}
		if b.LocationName != nil {
			props["locationName"] = *b.LocationName
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         strconv.FormatUint(uint64(b.ID), 10),
			Geometry:   geom.NewPointFlat(geom.XY, []float64{*b.Longitude, *b.Latitude}),
			Properties: props,
		})
	}
	return fc, nil
}

func validateBinEnums(req *request.BinRequest) error {
	if req.LoadType != "" && !entity.LoadType(req.LoadType).IsValid() {
		return service.ErrInvalidLoadType
	}
	if req.CyclePeriod != "" && !entity.CyclePeriod(req.CyclePeriod).IsValid() {
		return service.ErrInvalidCyclePeriod
	}
	return nil
}

func applyBinRequest(bin *entity.Bin, req *request.BinRequest) {
	assign(&bin.Label, req.Bin)
	bin.Locality = req.Locality
	bin.Landmark = req.Landmark
	bin.City = req.City
	if req.LoadType != "" {
		bin.LoadType = entity.LoadType(req.LoadType)
	}
	assign(&bin.DriverEmail, req.DriverEmail)
	if req.CyclePeriod != "" {
		bin.CyclePeriod = entity.CyclePeriod(req.CyclePeriod)
	}
	assign(&bin.BestRoute, req.BestRoute)
}
