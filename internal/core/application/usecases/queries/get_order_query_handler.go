package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Returns errs.ErrObjectNotFound when the order does not exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items and the
// summary of its delivery assignment, if an assignment exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.vendor_id,
			v.name,
			o.delivery_person_id,
			o.status,
			o.total_amount,
			o.delivery_address,
			o.delivery_notes,
			o.created_at
		FROM orders o
		LEFT JOIN vendors v ON v.id = o.vendor_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	orderResp, err := scanOrderRow(rows.Scan)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	rows.Close()

	orders := []OrderResponse{orderResp}
	if err = attachItems(ctx, h.db, orders); err != nil {
		return GetOrderQueryResponse{}, err
	}

	assignment, err := h.assignmentSummary(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:      orders[0],
		Assignment: assignment,
	}, nil
}

func (h GetOrderQueryHandler) assignmentSummary(
	ctx context.Context,
	orderID kernel.UUID,
) (*AssignmentSummary, error) {
	var (
		id     uuid.UUID
		status string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM delivery_assignments
		WHERE order_id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return &AssignmentSummary{ID: assignmentID, Status: status}, nil
}
