package http

import (
	"log/slog"
	"net/http"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/queries"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the marketplace core.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	transitionAssignmentHandler commands.TransitionAssignmentCommandHandler

	// Query handlers
	listOrdersHandler      queries.ListOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	listAssignmentsHandler queries.ListAssignmentsQueryHandler
	getAssignmentHandler   queries.GetAssignmentQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	transitionAssignmentHandler commands.TransitionAssignmentCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listAssignmentsHandler queries.ListAssignmentsQueryHandler,
	getAssignmentHandler queries.GetAssignmentQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		transitionOrderHandler:      transitionOrderHandler,
		transitionAssignmentHandler: transitionAssignmentHandler,
		listOrdersHandler:           listOrdersHandler,
		getOrderHandler:             getOrderHandler,
		listAssignmentsHandler:      listAssignmentsHandler,
		getAssignmentHandler:        getAssignmentHandler,
		logger:                      logger,
	}
}

// RegisterRoutes attaches the marketplace endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(ActorMiddleware())

	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PATCH("/orders/:id/status", s.TransitionOrder)

	e.GET("/delivery/assignments", s.GetAssignments)
	e.GET("/delivery/assignments/:id", s.GetAssignment)
	e.PATCH("/delivery/assignments/:id", s.TransitionAssignment)
}

// Envelopes wrapping the read models in the response bodies.
type (
	orderEnvelope struct {
		Order Order `json:"order"`
	}
	ordersEnvelope struct {
		Orders []Order `json:"orders"`
	}
	assignmentEnvelope struct {
		Assignment Assignment `json:"assignment"`
	}
	assignmentsEnvelope struct {
		Assignments []Assignment `json:"assignments"`
	}
)

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /orders - places a new order and attempts to
// match a delivery person for it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondInvalidInput(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return respondInvalidInput(ctx, "customer_id must be a valid UUID")
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return respondInvalidInput(ctx, "vendor_id must be a valid UUID")
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		menuItemID, err := kernel.UUIDFromString(itemRequest.MenuItemID)
		if err != nil {
			return respondInvalidInput(ctx, "items.menu_item_id must be a valid UUID")
		}

		unitPrice, err := kernel.NewMoney(itemRequest.UnitPrice)
		if err != nil {
			return s.respondError(ctx, err)
		}

		item, err := order.NewItem(menuItemID, itemRequest.Name, unitPrice, itemRequest.Quantity, itemRequest.Notes)
		if err != nil {
			return s.respondError(ctx, err)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, vendorID, items,
		request.DeliveryAddress, request.DeliveryNotes,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// GetOrders handles GET /orders - lists orders, optionally filtered by
// customer, vendor, or delivery person.
func (s *Server) GetOrders(ctx echo.Context) error {
	customerID, err := optionalUUIDParam(ctx, "customer_id")
	if err != nil {
		return respondInvalidInput(ctx, "customer_id must be a valid UUID")
	}

	vendorID, err := optionalUUIDParam(ctx, "vendor_id")
	if err != nil {
		return respondInvalidInput(ctx, "vendor_id must be a valid UUID")
	}

	deliveryPersonID, err := optionalUUIDParam(ctx, "delivery_person_id")
	if err != nil {
		return respondInvalidInput(ctx, "delivery_person_id must be a valid UUID")
	}

	query, err := queries.NewListOrdersQuery(customerID, vendorID, deliveryPersonID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	responses, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders := make([]Order, len(responses))
	for i, response := range responses {
		orders[i] = orderFromResponse(response)
	}

	return ctx.JSON(http.StatusOK, ordersEnvelope{Orders: orders})
}

// GetOrder handles GET /orders/:id - retrieves one order with its items
// and delivery assignment.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidInput(ctx, "order id must be a valid UUID")
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// TransitionOrder handles PATCH /orders/:id/status - applies a validated
// order status transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidInput(ctx, "order id must be a valid UUID")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return respondInvalidInput(ctx, "invalid request body")
	}
	if request.Status == "" {
		return respondInvalidInput(ctx, "status is required")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	actor := ActorFromContext(ctx)
	s.logger.InfoContext(ctx.Request().Context(), "order status transition",
		"order_id", orderID.String(),
		"status", status.String(),
		"actor_role", actor.Role)

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// GetAssignments handles GET /delivery/assignments - lists active
// assignments. Without an explicit filter a delivery person sees their own
// workload, everyone else sees all active assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	deliveryPersonID, err := optionalUUIDParam(ctx, "delivery_person_id")
	if err != nil {
		return respondInvalidInput(ctx, "delivery_person_id must be a valid UUID")
	}

	actor := ActorFromContext(ctx)
	if deliveryPersonID == nil && actor.Role == RoleDeliveryPerson {
		deliveryPersonID = actor.ID
	}

	query, err := queries.NewListAssignmentsQuery(deliveryPersonID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	responses, err := s.listAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	assignments := make([]Assignment, len(responses))
	for i, response := range responses {
		assignments[i] = assignmentFromResponse(response)
	}

	return ctx.JSON(http.StatusOK, assignmentsEnvelope{Assignments: assignments})
}

// GetAssignment handles GET /delivery/assignments/:id - retrieves one
// assignment with its full order context.
func (s *Server) GetAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidInput(ctx, "assignment id must be a valid UUID")
	}

	return s.respondAssignment(ctx, http.StatusOK, assignmentID)
}

// TransitionAssignment handles PATCH /delivery/assignments/:id - advances
// the assignment lifecycle and cascades the implied order status.
func (s *Server) TransitionAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondInvalidInput(ctx, "assignment id must be a valid UUID")
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return respondInvalidInput(ctx, "invalid request body")
	}
	if request.Status == "" {
		return respondInvalidInput(ctx, "status is required")
	}

	status, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionAssignmentCommand(assignmentID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.transitionAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	actor := ActorFromContext(ctx)
	s.logger.InfoContext(ctx.Request().Context(), "assignment status transition",
		"assignment_id", assignmentID.String(),
		"status", status.String(),
		"actor_role", actor.Role)

	return s.respondAssignment(ctx, http.StatusOK, assignmentID)
}

// respondOrder reads the order back through the query side and writes it
// with the given status code.
func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result := orderFromResponse(response.Order)
	if response.Assignment != nil {
		result.Assignment = &AssignmentSummary{
			ID:     response.Assignment.ID.Bytes(),
			Status: response.Assignment.Status,
		}
	}

	return ctx.JSON(code, orderEnvelope{Order: result})
}

// respondAssignment reads the assignment back through the query side and
// writes it with the given status code.
func (s *Server) respondAssignment(ctx echo.Context, code int, assignmentID kernel.UUID) error {
	query, err := queries.NewGetAssignmentQuery(assignmentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.getAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(code, assignmentEnvelope{Assignment: assignmentFromResponse(response)})
}

// optionalUUIDParam parses a query parameter into an optional UUID filter.
func optionalUUIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
