package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
	"github.com/jrjohn/smart-waste-go/internal/domain/service"
	"github.com/jrjohn/smart-waste-go/internal/dto/request"
	"github.com/jrjohn/smart-waste-go/internal/geocoding"
	"github.com/jrjohn/smart-waste-go/internal/testutil/mocks"
	apperrors "github.com/jrjohn/smart-waste-go/pkg/errors"
)

func setupBinService(t *testing.T) (service.BinService, *mocks.MockBinRepository, *mocks.StubGeocoder) {
	t.Helper()
	repo := mocks.NewMockBinRepository()
	geo := mocks.NewStubGeocoder()
	return NewBinService(repo, geo, zap.NewNop()), repo, geo
}

func seedBin(t *testing.T, repo *mocks.MockBinRepository) *entity.Bin {
	t.Helper()
	bin := &entity.Bin{Label: "B-1", Locality: "Old Town", City: "Springfield", LoadType: entity.LoadLow}
	if err := repo.Create(context.Background(), bin); err != nil {
		t.Fatalf("seed bin: %v", err)
	}
	return bin
}

func TestBinService_Update_FullAddress(t *testing.T) {
	svc, repo, geo := setupBinService(t)
	bin := seedBin(t, repo)
	geo.Results["Main St, , Springfield"] = []geocoding.Place{
		{Latitude: 39.78, Longitude: -89.65, DisplayName: "Main Street, Springfield"},
		{Latitude: 1, Longitude: 1, DisplayName: "ignored"},
	}

	resp, err := svc.Update(context.Background(), bin.ID, &request.BinRequest{Locality: "Main St", City: "Springfield"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if resp.Fallback {
		t.Error("Update() used the fallback query")
	}

	stored, _ := repo.GetByID(context.Background(), bin.ID)
	if !stored.IsLocated() || *stored.Latitude != 39.78 || *stored.Longitude != -89.65 {
		t.Errorf("stored coordinates = %v, %v", stored.Latitude, stored.Longitude)
	}
	if *stored.LocationName != "Main Street, Springfield" {
		t.Errorf("LocationName = %q", *stored.LocationName)
	}
	if stored.Label != "B-1" || stored.Locality != "Main St" {
		t.Errorf("stored bin = %+v", stored)
	}
}

func TestBinService_Update_Fallback(t *testing.T) {
	svc, repo, geo := setupBinService(t)
	bin := seedBin(t, repo)
	geo.Results["Main St, Springfield"] = []geocoding.Place{{Latitude: 10, Longitude: 20, DisplayName: "fallback"}}

	resp, err := svc.Update(context.Background(), bin.ID, &request.BinRequest{Locality: "Main St", Landmark: "Clock Tower", City: "Springfield"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !resp.Fallback || resp.Query != "Main St, Springfield" {
		t.Errorf("Update() = fallback %v query %q", resp.Fallback, resp.Query)
	}

	want := []string{"Main St, Clock Tower, Springfield", "Main St, Springfield"}
	got := geo.Queries()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("queries = %v, want %v", got, want)
	}

	stored, _ := repo.GetByID(context.Background(), bin.ID)
	if *stored.Latitude != 10 || *stored.Longitude != 20 {
		t.Errorf("stored coordinates = %v, %v", *stored.Latitude, *stored.Longitude)
	}
}

func TestBinService_Update_NoMatchKeepsCoordinates(t *testing.T) {
	svc, repo, _ := setupBinService(t)
	bin := seedBin(t, repo)
	bin.Locate(1.5, 2.5, "before")
	_ = repo.Update(context.Background(), bin)

	_, err := svc.Update(context.Background(), bin.ID, &request.BinRequest{Locality: "Nowhere", City: "Atlantis", LoadType: "high"})
	if apperrors.GetStatus(err) != 404 {
		t.Fatalf("Update() error = %v, want 404", err)
	}
	if got := apperrors.GetMessage(err); got != "No geolocation found for address: Nowhere, , Atlantis" {
		t.Errorf("message = %q", got)
	}

	stored, _ := repo.GetByID(context.Background(), bin.ID)
	if *stored.Latitude != 1.5 || *stored.Longitude != 2.5 || stored.LoadType != entity.LoadLow {
		t.Errorf("bin changed after failed update: %+v", stored)
	}
}

func TestBinService_Update_Errors(t *testing.T) {
	svc, repo, geo := setupBinService(t)
	bin := seedBin(t, repo)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 999, &request.BinRequest{Locality: "a", City: "b"}); apperrors.GetMessage(err) != "Bin not found" {
		t.Errorf("missing bin error = %v", err)
	}
	if _, err := svc.Update(ctx, bin.ID, &request.BinRequest{Locality: "a"}); apperrors.GetMessage(err) != "Locality and city are required." {
		t.Errorf("missing city error = %v", err)
	}
	if _, err := svc.Update(ctx, bin.ID, &request.BinRequest{Locality: "a", City: "b", CyclePeriod: "hourly"}); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("bad cycle period error = %v", err)
	}

	geo.Err = errors.New("dial tcp: i/o timeout")
	_, err := svc.Update(ctx, bin.ID, &request.BinRequest{Locality: "a", City: "b"})
	if apperrors.GetStatus(err) != 500 || apperrors.GetMessage(err) != "Internal server error" {
		t.Errorf("transport error = %v", err)
	}
	if len(geo.Queries()) != 1 {
		t.Errorf("geocoder called %d times after a transport error, want 1", len(geo.Queries()))
	}
}

func TestBinService_Update_ValidatesBeforeLookup(t *testing.T) {
	svc, repo, geo := setupBinService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, &request.BinRequest{Locality: "Main St"})
	if apperrors.GetStatus(err) != 400 || apperrors.GetMessage(err) != "Locality and city are required." {
		t.Errorf("missing city on unknown bin error = %v", err)
	}

	// The store is not consulted for an incomplete address
	repo.GetByIDErr = errors.New("connection reset")
	_, err = svc.Update(ctx, 999, &request.BinRequest{City: "Springfield"})
	if apperrors.GetMessage(err) != "Locality and city are required." {
		t.Errorf("missing locality with failing store error = %v", err)
	}
	if len(geo.Queries()) != 0 {
		t.Errorf("geocoder called %d times, want 0", len(geo.Queries()))
	}
}

func TestBinService_CreateAndFindByArea(t *testing.T) {
	svc, _, _ := setupBinService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &request.BinRequest{Bin: "B-9", Locality: "Market Yard", Landmark: "Bus Depot", City: "Pune", LoadType: "medium", CyclePeriod: "weekly"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, &request.BinRequest{Bin: "B-10", Locality: "Camp", City: "Pune"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, &request.BinRequest{Locality: "Camp", City: "Pune"}); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Create() without label error = %v", err)
	}
	if _, err := svc.Create(ctx, &request.BinRequest{Bin: "x", Locality: "Camp", City: "Pune", LoadType: "huge"}); !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("Create() bad load type error = %v", err)
	}

	bins, err := svc.FindByArea(ctx, "depot")
	if err != nil || len(bins) != 1 || bins[0].Label != "B-9" {
		t.Errorf("FindByArea(depot) = %v, %v", bins, err)
	}

	_, err = svc.FindByArea(ctx, "Harbour")
	if apperrors.GetMessage(err) != "No bins found in area: Harbour" {
		t.Errorf("FindByArea(Harbour) error = %v", err)
	}
}

func TestBinService_Delete(t *testing.T) {
	svc, repo, _ := setupBinService(t)
	bin := seedBin(t, repo)

	if err := svc.Delete(context.Background(), bin.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), bin.ID); apperrors.GetMessage(err) != "Bin not found" {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestBinService_Map(t *testing.T) {
	svc, repo, _ := setupBinService(t)
	seedBin(t, repo)
	located := seedBin(t, repo)
	located.Locate(18.52, 73.85, "Pune")
	_ = repo.Update(context.Background(), located)

	fc, err := svc.Map(context.Background())
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("Map() features = %d, want 1", len(fc.Features))
	}

	point, ok := fc.Features[0].Geometry.(*geom.Point)
	if !ok {
		t.Fatalf("geometry = %T, want *geom.Point", fc.Features[0].Geometry)
	}
	if point.X() != 73.85 || point.Y() != 18.52 {
		t.Errorf("point = (%v, %v), want (73.85, 18.52)", point.X(), point.Y())
	}
	if fc.Features[0].Properties["locationName"] != "Pune" {
		t.Errorf("properties = %v", fc.Features[0].Properties)
	}

	if _, err := fc.MarshalJSON(); err != nil {
		t.Errorf("MarshalJSON() error = %v", err)
	}
}
