// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot lookups: by vendor, by customer, and by the matching
// job's status plus delivery person scan.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;index"`
	VendorID         uuid.UUID       `gorm:"type:uuid;index"`
	DeliveryPersonID *uuid.UUID      `gorm:"type:uuid;index"`
	Status           string          `gorm:"type:varchar(16);index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress  string          `gorm:"type:text"`
	DeliveryNotes    string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced item snapshot of an order. Rows are
// written once at creation time and never updated.
type OrderItemDTO struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid"`
	Name       string          `gorm:"type:text"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity   int
	Notes      string `gorm:"type:text"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Items are mapped separately by itemsFromDomain.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		VendorID:         aggregate.VendorID().Bytes(),
		DeliveryPersonID: deliveryPersonID,
		Status:           aggregate.Status().String(),
		TotalAmount:      aggregate.TotalAmount().Decimal(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DeliveryNotes:    aggregate.DeliveryNotes(),
	}
}

// itemsFromDomain converts the order's item snapshots to their database rows.
func itemsFromDomain(aggregate *order.Order) []OrderItemDTO {
	items := aggregate.Items()
	dtos := make([]OrderItemDTO, 0, len(items))

	for _, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
		})
	}

	return dtos
}

// toDomain converts database rows to an order domain aggregate using
// RestoreOrder. The stored total is trusted, not recomputed from the items;
// the item set may be empty when the creation-time item write failed.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		pID, personErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if personErr != nil {
			return nil, personErr
		}

		deliveryPersonID = &pID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, vendorID, deliveryPersonID,
		status, totalAmount, dto.DeliveryAddress, dto.DeliveryNotes, items,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(menuItemID, dto.Name, unitPrice, dto.Quantity, dto.Notes)
}
