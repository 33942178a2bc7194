// Package personrepo provides data transfer objects and mapping functions
// for delivery person persistence.
package personrepo

import (
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PersonDTO represents the database structure for persisting delivery
// person aggregates. The availability flag is flipped under a row lock by
// GetFirstAvailable, so concurrent matchers never share a person.
type PersonDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text"`
	IsActive    bool      `gorm:"index:idx_delivery_people_free"`
	IsAvailable bool      `gorm:"index:idx_delivery_people_free"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for delivery person entities.
func (PersonDTO) TableName() string {
	return "delivery_people"
}

// fromDomain converts a delivery person domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Person) PersonDTO {
	return PersonDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		IsActive:    aggregate.IsActive(),
		IsAvailable: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a delivery person domain aggregate.
func toDomain(dto PersonDTO) (*delivery.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestorePerson(id, dto.Name, dto.IsActive, dto.IsAvailable)
}
