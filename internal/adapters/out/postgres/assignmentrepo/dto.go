// Package assignmentrepo provides data transfer objects and mapping functions
// for delivery assignment persistence.
package assignmentrepo

import (
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignment aggregates. The unique index on OrderID enforces at most one
// assignment per order at the storage level.
type AssignmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"type:varchar(16);index"`
	AssignedAt       time.Time
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "delivery_assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DeliveryPersonID: aggregate.DeliveryPersonID().Bytes(),
		Status:           aggregate.Status().String(),
		AssignedAt:       aggregate.AssignedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate using
// RestoreAssignment, trusting the stored status and milestone timestamps.
func toDomain(dto AssignmentDTO) (*delivery.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	deliveryPersonID, err := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreAssignment(
		id, orderID, deliveryPersonID, status,
		dto.AssignedAt, dto.AcceptedAt, dto.PickedUpAt, dto.DeliveredAt,
	)
}
