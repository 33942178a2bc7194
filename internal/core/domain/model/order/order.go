package order

import (
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderItemsAreRequired is returned when an order is created with an
	// empty item list.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("order items")

	// ErrDeliveryAddressIsRequired is returned when the delivery address is
	// empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order represents a customer's purchase request against one vendor.
// It is the aggregate root that manages the order lifecycle from creation
// through delivery or cancellation.
//
// Order follows these invariants:
//   - Must reference a valid customer and vendor
//   - Must have at least one item and a non-empty delivery address
//   - total_amount equals the sum of item line totals at creation time
//   - Status transitions follow the graph in status.go, except for the
//     delivery-assignment cascade which writes the status directly
//   - Orders reach a terminal state but are never deleted
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	vendorID         kernel.UUID
	deliveryPersonID *kernel.UUID
	status           Status
	totalAmount      kernel.Money
	deliveryAddress  string
	deliveryNotes    string
	items            []Item

	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation.
// The total amount is computed here as the sum of item line totals; it is a
// creation-time snapshot and is never recomputed from the items again.
//
// Returns a validation error if any identifier is invalid, the item list is
// empty, any item is invalid, or the delivery address is empty.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	items []Item,
	deliveryAddress string,
	deliveryNotes string,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		deliveryNotes: deliveryNotes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	o.totalAmount = total

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recomputing
// the total. The stored status and total are trusted; items may be empty
// when the aggregate tolerated a partial item write at creation time.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	deliveryAddress string,
	deliveryNotes string,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:           status,
		deliveryPersonID: deliveryPersonID,
		deliveryNotes:    deliveryNotes,
		items:            items,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the vendor the order was placed against.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// DeliveryPerson returns the back-linked delivery person's ID.
// Returns nil while the order has no delivery assignment.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the creation-time total of the order.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryNotes returns the optional delivery notes.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// Items returns the order's item snapshots.
func (o *Order) Items() []Item {
	return o.items
}

// TransitionTo moves the order to the requested status if the transition is
// legal per the status graph. Only the status changes; no other field is
// touched and nothing cascades to the delivery assignment.
func (o *Order) TransitionTo(requested Status) error {
	next, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ApplyAssignmentStatus writes the order status implied by a
// delivery-assignment change. This is the one path that does not consult
// the transition graph: the assignment machine is authoritative once an
// assignment exists, even where the two graphs disagree.
func (o *Order) ApplyAssignmentStatus(implied Status) error {
	if err := implied.Validate(); err != nil {
		return err
	}

	o.status = implied
	return nil
}

// AssignDeliveryPerson back-links the order to its matched delivery person.
// The order status is not changed; the assignment's own lifecycle drives
// any later status writes.
func (o *Order) AssignDeliveryPerson(personID kernel.UUID) error {
	if err := personID.Validate(); err != nil {
		return err
	}

	o.deliveryPersonID = &personID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vendorID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}
