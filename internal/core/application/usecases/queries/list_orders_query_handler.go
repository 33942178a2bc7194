package queries

import (
	"context"

	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery(nil, &vendorID, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders matching the filters.
// Results carry the vendor name and item snapshots, newest orders first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if id := query.CustomerID(); id != nil {
		sql += " AND o.customer_id = ?"
		args = append(args, id.Bytes())
	}
	if id := query.VendorID(); id != nil {
		sql += " AND o.vendor_id = ?"
		args = append(args, id.Bytes())
	}
	if id := query.DeliveryPersonID(); id != nil {
		sql += " AND o.delivery_person_id = ?"
		args = append(args, id.Bytes())
	}

	sql += " ORDER BY o.created_at DESC"

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one joined order row to its read model.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		resp             OrderResponse
		id               uuid.UUID
		customerID       uuid.UUID
		vendorID         uuid.UUID
		vendorName       *string
		deliveryPersonID *uuid.UUID
	)

	err := scan(
		&id,
		&customerID,
		&vendorID,
		&vendorName,
		&deliveryPersonID,
		&resp.Status,
		&resp.TotalAmount,
		&resp.DeliveryAddress,
		&resp.DeliveryNotes,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return OrderResponse{}, err
	}
	if vendorName != nil {
		resp.VendorName = *vendorName
	}
	if deliveryPersonID != nil {
		pID, idErr := kernel.UUIDFromBytes((*deliveryPersonID)[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.DeliveryPersonID = &pID
	}

	resp.Items = make([]OrderItemResponse, 0)

	return resp, nil
}

// attachItems loads the item snapshots for every order in one round trip
// and attaches them in place.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for i, o := range orders {
		raw := o.ID.Bytes()
		index[raw] = i
		ids = append(ids, raw)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price,
			quantity,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID    uuid.UUID
			menuItemID uuid.UUID
			name       string
			unitPrice  decimal.Decimal
			quantity   int
			notes      string
		)

		if err = rows.Scan(&orderID, &menuItemID, &name, &unitPrice, &quantity, &notes); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		orders[i].Items = append(orders[i].Items, OrderItemResponse{
			MenuItemID: itemID,
			Name:       name,
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			Notes:      notes,
		})
	}

	return rows.Err()
}
