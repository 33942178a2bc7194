package http

import (
	"time"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID      string                   `json:"customer_id"`
	VendorID        string                   `json:"vendor_id"`
	Items           []CreateOrderItemRequest `json:"items"`
	DeliveryAddress string                   `json:"delivery_address"`
	DeliveryNotes   string                   `json:"delivery_notes"`
}

// CreateOrderItemRequest is one priced line of an order request. The price
// is a snapshot supplied by the client; the backend sums it, it does not
// re-derive it from the menu.
type CreateOrderItemRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes"`
}

// TransitionRequest is the body of the status transition endpoints.
type TransitionRequest struct {
	Status string `json:"status"`
}

// OrderItem is one item snapshot in an order or assignment response.
type OrderItem struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
}

// Order is the order read model returned by the order endpoints.
type Order struct {
	ID               uuid.UUID          `json:"id"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	VendorID         uuid.UUID          `json:"vendor_id"`
	VendorName       string             `json:"vendor_name"`
	DeliveryPersonID *uuid.UUID         `json:"delivery_person_id"`
	Status           string             `json:"status"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	DeliveryAddress  string             `json:"delivery_address"`
	DeliveryNotes    string             `json:"delivery_notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	Items            []OrderItem        `json:"items"`
	Assignment       *AssignmentSummary `json:"assignment,omitempty"`
}

// AssignmentSummary is the shallow assignment view embedded in a single
// order response.
type AssignmentSummary struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// Assignment is the assignment read model returned by the delivery
// endpoints, carrying the full order context a delivery person needs.
type Assignment struct {
	ID               uuid.UUID       `json:"id"`
	OrderID          uuid.UUID       `json:"order_id"`
	DeliveryPersonID uuid.UUID       `json:"delivery_person_id"`
	Status           string          `json:"status"`
	AssignedAt       time.Time       `json:"assigned_at"`
	AcceptedAt       *time.Time      `json:"accepted_at"`
	PickedUpAt       *time.Time      `json:"picked_up_at"`
	DeliveredAt      *time.Time      `json:"delivered_at"`
	Order            AssignmentOrder `json:"order"`
}

// AssignmentOrder is the order context embedded in an assignment response:
// where to collect, where to deliver, what it contains, who to call.
type AssignmentOrder struct {
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryNotes   string          `json:"delivery_notes,omitempty"`
	VendorName      string          `json:"vendor_name"`
	VendorAddress   string          `json:"vendor_address"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	Items           []OrderItem     `json:"items"`
}

func orderItemsFromResponse(items []queries.OrderItemResponse) []OrderItem {
	result := make([]OrderItem, len(items))
	for i, item := range items {
		result[i] = OrderItem{
			MenuItemID: item.MenuItemID.Bytes(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			Notes:      item.Notes,
		}
	}
	return result
}

func orderFromResponse(response queries.OrderResponse) Order {
	result := Order{
		ID:              response.ID.Bytes(),
		CustomerID:      response.CustomerID.Bytes(),
		VendorID:        response.VendorID.Bytes(),
		VendorName:      response.VendorName,
		Status:          response.Status,
		TotalAmount:     response.TotalAmount,
		DeliveryAddress: response.DeliveryAddress,
		DeliveryNotes:   response.DeliveryNotes,
		CreatedAt:       response.CreatedAt,
		Items:           orderItemsFromResponse(response.Items),
	}

	if response.DeliveryPersonID != nil {
		id := response.DeliveryPersonID.Bytes()
		result.DeliveryPersonID = &id
	}

	return result
}

func assignmentFromResponse(response queries.AssignmentResponse) Assignment {
	return Assignment{
		ID:               response.ID.Bytes(),
		OrderID:          response.OrderID.Bytes(),
		DeliveryPersonID: response.DeliveryPersonID.Bytes(),
		Status:           response.Status,
		AssignedAt:       response.AssignedAt,
		AcceptedAt:       response.AcceptedAt,
		PickedUpAt:       response.PickedUpAt,
		DeliveredAt:      response.DeliveredAt,
		Order: AssignmentOrder{
			Status:          response.OrderStatus,
			TotalAmount:     response.TotalAmount,
			DeliveryAddress: response.DeliveryAddress,
			DeliveryNotes:   response.DeliveryNotes,
			VendorName:      response.VendorName,
			VendorAddress:   response.VendorAddress,
			CustomerName:    response.CustomerName,
			CustomerPhone:   response.CustomerPhone,
			Items:           orderItemsFromResponse(response.Items),
		},
	}
}
