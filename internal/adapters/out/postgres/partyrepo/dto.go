// Package partyrepo holds the database structures for the marketplace
// parties the order core references but does not manage: vendors and
// customers. Both are reference data owned by other parts of the product;
// here they exist for schema migration and for the read-side joins that
// decorate orders and assignments with names and contact details.
package partyrepo

import (
	"time"

	"github.com/google/uuid"
)

// VendorDTO represents a restaurant or store fulfilling orders.
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// CustomerDTO represents an ordering customer. The phone number is what
// delivery people see on their active assignments.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(32)"`
	Email     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}
