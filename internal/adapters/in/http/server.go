// Package http is the inbound HTTP adapter. It binds JSON requests,
// delegates to command and query handlers, and maps domain errors to
// HTTP status codes: validation failures become 400, missing orders 404,
// everything else 500.
package http

import (
	"errors"
	"net/http"
	"strings"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the checkout payload. The per-item price is
// accepted for compatibility with existing clients but ignored: unit
// prices are resolved from the catalog, and the declared totalPrice must
// match their sum.
type CreateOrderRequest struct {
	UserID        *string             `json:"userId"`
	Products      []OrderProductInput `json:"products"`
	TotalPrice    decimal.Decimal     `json:"totalPrice"`
	PaymentMethod string              `json:"paymentMethod"`
	Notes         *string             `json:"notes"`
	Address       AddressRequest      `json:"address"`
}

// OrderProductInput is one cart entry of a checkout payload.
type OrderProductInput struct {
	ProductID string          `json:"productId"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// AddressRequest carries the delivery address of a checkout payload.
type AddressRequest struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// UpdateOrderStatusRequest is the payload of a status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error body. Details carries one entry per
// violated field when a request fails validation.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the JSON body of a successful deletion.
type MessageResponse struct {
	Message string `json:"message"`
}

// Server handles the order management HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes attaches the API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrderStatus)
	e.DELETE("/orders/:id", s.DeleteOrder)
}

// GetOrders handles GET /orders - retrieves all orders, newest first.
// An optional userId query parameter narrows the list to one user's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	var userID *string
	if v := ctx.QueryParam("userId"); v != "" {
		userID = &v
	}

	query := queries.NewGetOrdersQuery(userID)

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /orders - the checkout operation.
// Responds 201 with the created aggregate, 400 when the payload fails
// validation or references an unknown (product, size) pair.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	total, err := kernel.NewMoney(req.TotalPrice)
	if err != nil {
		return validationError(ctx, errs.NewValueIsInvalidErrorWithCause("totalPrice", err))
	}

	items := make([]commands.OrderItemInput, len(req.Products))
	for i, product := range req.Products {
		items[i] = commands.OrderItemInput{
			ProductID: product.ProductID,
			Size:      product.Size,
			Quantity:  product.Quantity,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.UserID,
		items,
		total,
		req.PaymentMethod,
		req.Notes,
		commands.AddressInput{
			FullName:   req.Address.FullName,
			Street:     req.Address.Street,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
		},
	)
	if err != nil {
		return validationError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			// A cart entry references a (product, size) pair the catalog
			// does not price. The client sent a bad cart, not a bad URL.
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: handleErr.Error(),
			})
		case isValidationError(handleErr):
			return validationError(ctx, handleErr)
		default:
			return internalError(ctx, "Failed to create order")
		}
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /orders/:id - retrieves a single order aggregate.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, ok := s.parseOrderID(ctx)
	if !ok {
		return orderNotFound(ctx)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PUT /orders/:id - applies a status transition.
// Responds 400 for an unrecognized status value or an illegal transition
// edge, 404 for an unknown order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, ok := s.parseOrderID(ctx)
	if !ok {
		return orderNotFound(ctx)
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	targetStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return validationError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, targetStatus)
	if err != nil {
		return validationError(ctx, err)
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return orderNotFound(ctx)
		case isValidationError(handleErr):
			return validationError(ctx, handleErr)
		default:
			return internalError(ctx, "Failed to update order")
		}
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /orders/:id - permanently removes an order
// and its line items. Responds 404 for an unknown order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, ok := s.parseOrderID(ctx)
	if !ok {
		return orderNotFound(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return validationError(ctx, err)
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		return internalError(ctx, "Failed to delete order")
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order deleted"})
}

// parseOrderID reads the :id path parameter. A malformed identifier
// cannot name an existing order, so callers treat it as not found.
func (s *Server) parseOrderID(ctx echo.Context) (kernel.UUID, bool) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, false
	}
	return orderID, true
}

// respondWithOrder reads the full aggregate through the query side and
// writes it with the given status code. Commands return no data; reads
// after writes go through the same projection as plain reads.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(code, response)
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// validationError writes a 400 with one detail line per violated field.
func validationError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Details: strings.Split(err.Error(), "\n"),
	})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
