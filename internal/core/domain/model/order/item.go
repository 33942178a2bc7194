package order

import (
	"errors"
	"fmt"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
	"github.com/WWStoryMode/project-firefly/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when the snapshot name is empty.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is an immutable snapshot of a menu item at order time. It belongs to
// exactly one Order and is created atomically with it. The snapshot is
// intentionally decoupled from later menu-item edits: name and unit price
// are copied, not referenced.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	notes      string

	guard guard.ConstructorGuard
}

// NewItem creates an order item snapshot with validation.
// Quantity must be at least 1 and the unit price must be a constructed,
// non-negative Money value.
func NewItem(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int, notes string) (Item, error) {
	item := Item{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item this snapshot was
// taken from.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the snapshot name of the menu item.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the snapshot unit price.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity (always >= 1).
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional per-item customer notes.
func (i Item) Notes() string {
	return i.notes
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
