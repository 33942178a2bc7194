package queries

import (
	"context"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAssignmentsQueryHandler retrieves active assignment read models from
// the database, joined with order, vendor and customer reference data.
type ListAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewListAssignmentsQueryHandler creates a handler for assignment listing queries.
// Requires a GORM database connection for query execution.
func NewListAssignmentsQueryHandler(db *gorm.DB) ListAssignmentsQueryHandler {
	return ListAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve active assignments, most recently
// assigned first.
func (h ListAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := assignmentSelectSQL + " WHERE a.status != ?"
	args := []any{delivery.StatusDelivered.String()}

	if id := query.DeliveryPersonID(); id != nil {
		sql += " AND a.delivery_person_id = ?"
		args = append(args, id.Bytes())
	}

	sql += " ORDER BY a.assigned_at DESC"

	assignments := make([]AssignmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		assignment, scanErr := scanAssignmentRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachAssignmentItems(ctx, h.db, assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

// assignmentSelectSQL is the shared join for assignment read models. The
// reference tables are LEFT JOINed so a missing vendor or customer row
// degrades to empty contact fields instead of hiding the assignment.
const assignmentSelectSQL = `
	SELECT
		a.id,
		a.order_id,
		a.delivery_person_id,
		a.status,
		a.assigned_at,
		a.accepted_at,
		a.picked_up_at,
		a.delivered_at,
		o.status,
		o.total_amount,
		o.delivery_address,
		o.delivery_notes,
		v.name,
		v.address,
		c.name,
		c.phone
	FROM delivery_assignments a
	JOIN orders o ON o.id = a.order_id
	LEFT JOIN vendors v ON v.id = o.vendor_id
	LEFT JOIN customers c ON c.id = o.customer_id
`

// scanAssignmentRow maps one joined assignment row to its read model.
func scanAssignmentRow(scan func(dest ...any) error) (AssignmentResponse, error) {
	var (
		resp             AssignmentResponse
		id               uuid.UUID
		orderID          uuid.UUID
		deliveryPersonID uuid.UUID
		vendorName       *string
		vendorAddress    *string
		customerName     *string
		customerPhone    *string
	)

	err := scan(
		&id,
		&orderID,
		&deliveryPersonID,
		&resp.Status,
		&resp.AssignedAt,
		&resp.AcceptedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
		&resp.OrderStatus,
		&resp.TotalAmount,
		&resp.DeliveryAddress,
		&resp.DeliveryNotes,
		&vendorName,
		&vendorAddress,
		&customerName,
		&customerPhone,
	)
	if err != nil {
		return AssignmentResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AssignmentResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return AssignmentResponse{}, err
	}
	if resp.DeliveryPersonID, err = kernel.UUIDFromBytes(deliveryPersonID[:]); err != nil {
		return AssignmentResponse{}, err
	}

	if vendorName != nil {
		resp.VendorName = *vendorName
	}
	if vendorAddress != nil {
		resp.VendorAddress = *vendorAddress
	}
	if customerName != nil {
		resp.CustomerName = *customerName
	}
	if customerPhone != nil {
		resp.CustomerPhone = *customerPhone
	}

	resp.Items = make([]OrderItemResponse, 0)

	return resp, nil
}

// attachAssignmentItems loads the item snapshots of every assignment's
// order in one round trip and attaches them in place.
func attachAssignmentItems(ctx context.Context, db *gorm.DB, assignments []AssignmentResponse) error {
	if len(assignments) == 0 {
		return nil
	}

	orders := make([]OrderResponse, 0, len(assignments))
	for _, a := range assignments {
		orders = append(orders, OrderResponse{ID: a.OrderID, Items: a.Items})
	}

	if err := attachItems(ctx, db, orders); err != nil {
		return err
	}

	for i := range assignments {
		assignments[i].Items = orders[i].Items
	}

	return nil
}
