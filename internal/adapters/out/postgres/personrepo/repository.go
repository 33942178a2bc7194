package personrepo

import (
	"context"
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM delivery person repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery person to the database.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *delivery.Person) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery person to the database.
// Uses explicit column assignments because claiming sets is_available to
// false, which a struct-based update would skip as a zero value.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *delivery.Person) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PersonDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"is_active":    dto.IsActive,
		"is_available": dto.IsAvailable,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery person by ID.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstAvailable retrieves one active, available delivery person and
// locks the row until the surrounding transaction ends. SKIP LOCKED makes
// concurrent matchers pick different rows instead of queueing on the same
// one, so a person can never be claimed twice.
func (r *GormDeliveryPersonRepository) GetFirstAvailable(ctx context.Context) (*delivery.Person, error) {
	var dto PersonDTO
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			is_active,
			is_available
		FROM delivery_people
		WHERE is_active AND is_available
		ORDER BY id
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("delivery person", "first available")
	}

	return toDomain(dto)
}
