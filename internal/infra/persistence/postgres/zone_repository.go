package postgres

import (
	"context"

	"vehiclee/internal/domain/entity"
	"vehiclee/internal/domain/repository"
	"vehiclee/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{
		db: db,
	}
}

// ListZones retrieves every zone, grouped by city then name.
func (repo *zoneRepository) ListZones(ctx context.Context) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Order("city ASC, zone_name ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list zones")
	}

	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zone, err := toZoneDomain(zoneM)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// FindZoneByID retrieves a single zone by ID.
func (repo *zoneRepository) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	var zoneM model.ZoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find zone by ID")
	}

	return toZoneDomain(&zoneM)
}

// --- Mapper Functions ---

// toZoneDomain converts a GORM ZoneModel to a domain Zone entity.
func toZoneDomain(data *model.ZoneModel) (*entity.Zone, error) {
	if data == nil {
		return nil, nil
	}

	var polygon *geojson.Geometry
	if len(data.Polygon) > 0 {
		decoded, err := geojson.UnmarshalGeometry(data.Polygon)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode zone polygon")
		}
		polygon = decoded
	}

	return &entity.Zone{
		ID:              data.ID,
		City:            data.City,
		ZoneName:        data.ZoneName,
		Polygon:         polygon,
		PriceModifier:   data.PriceModifier,
		ExclusivityFlag: data.ExclusivityFlag,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
