// Package http exposes the order lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases, translating
// domain error kinds to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	addToCartHandler      commands.AddToCartCommandHandler
	removeFromCartHandler commands.RemoveFromCartCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	createCourierHandler  commands.CreateCourierCommandHandler

	// Query handlers
	turnoverReportHandler      queries.TurnoverReportQueryHandler
	earningsReportHandler      queries.EarningsReportQueryHandler
	getClientOrdersHandler     queries.GetClientOrdersQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addToCartHandler commands.AddToCartCommandHandler,
	removeFromCartHandler commands.RemoveFromCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	turnoverReportHandler queries.TurnoverReportQueryHandler,
	earningsReportHandler queries.EarningsReportQueryHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
) *Server {
	return &Server{
		addToCartHandler:           addToCartHandler,
		removeFromCartHandler:      removeFromCartHandler,
		checkoutHandler:            checkoutHandler,
		acceptOrderHandler:         acceptOrderHandler,
		markDeliveredHandler:       markDeliveredHandler,
		createCourierHandler:       createCourierHandler,
		turnoverReportHandler:      turnoverReportHandler,
		earningsReportHandler:      earningsReportHandler,
		getClientOrdersHandler:     getClientOrdersHandler,
		getUnassignedOrdersHandler: getUnassignedOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/carts/:clientID/items", s.AddToCart)
	api.DELETE("/carts/:clientID/items/:productID", s.RemoveFromCart)
	api.POST("/orders/checkout", s.Checkout)
	api.POST("/orders/:orderID/accept", s.AcceptOrder)
	api.POST("/orders/:orderID/deliver", s.MarkDelivered)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/clients/:clientID/orders", s.GetClientOrders)
	api.GET("/reports/turnover", s.TurnoverReport)
	api.GET("/reports/earnings/:courierID", s.EarningsReport)
	api.POST("/couriers", s.CreateCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddToCart handles POST /api/v1/carts/:clientID/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	var body struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	quantity := body.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cmd, err := commands.NewAddToCartCommand(clientID, productID, quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromCart handles DELETE /api/v1/carts/:clientID/items/:productID.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}
	productID, err := kernel.UUIDFromString(ctx.Param("productID"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveFromCartCommand(clientID, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeFromCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// orderResponse is the JSON representation of a placed order.
type orderResponse struct {
	ID         string              `json:"id"`
	ClientID   string              `json:"client_id"`
	CourierID  *string             `json:"courier_id,omitempty"`
	Status     string              `json:"status"`
	TotalPrice string              `json:"total_price"`
	Address    string              `json:"address"`
	Phone      string              `json:"phone"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Price       string `json:"price"`
}

// Checkout handles POST /api/v1/orders/checkout.
// Turns the client's cart into a pending order and returns it.
func (s *Server) Checkout(ctx echo.Context) error {
	var body struct {
		ClientID string `json:"client_id"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), clientID, body.Address, body.Phone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := orderResponse{
		ID:         placed.ID().String(),
		ClientID:   placed.ClientID().String(),
		Status:     placed.Status().String(),
		TotalPrice: placed.TotalPrice().String(),
		Address:    placed.Address(),
		Phone:      placed.Phone(),
		CreatedAt:  placed.CreatedAt(),
		Items:      make([]orderItemResponse, 0, len(placed.Items())),
	}
	for _, item := range placed.Items() {
		response.Items = append(response.Items, orderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Price:       item.Price().String(),
		})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// AcceptOrder handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, courierID, err := s.bindCourierAction(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) bindCourierAction(ctx echo.Context) (orderID, courierID kernel.UUID, err error) {
	orderID, err = kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id")
	}

	var body struct {
		CourierID string `json:"courier_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	courierID, err = kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid courier id")
	}

	return orderID, courierID, nil
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type unassignedOrder struct {
		ID         string    `json:"id"`
		Address    string    `json:"address"`
		TotalPrice string    `json:"total_price"`
		CreatedAt  time.Time `json:"created_at"`
	}

	response := make([]unassignedOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, unassignedOrder{
			ID:         o.ID.String(),
			Address:    o.Address,
			TotalPrice: o.TotalPrice.String(),
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClientOrders handles GET /api/v1/clients/:clientID/orders.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "invalid client id")
	}

	query, err := queries.NewGetClientOrdersQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type clientOrder struct {
		ID         string    `json:"id"`
		TotalPrice string    `json:"total_price"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
	}

	response := make([]clientOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, clientOrder{
			ID:         o.ID.String(),
			TotalPrice: o.TotalPrice.String(),
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// TurnoverReport handles GET /api/v1/reports/turnover?start_date=&end_date=.
// Malformed dates yield an empty report, not an error.
func (s *Server) TurnoverReport(ctx echo.Context) error {
	query := queries.NewTurnoverReportQuery(
		ctx.QueryParam("start_date"),
		ctx.QueryParam("end_date"),
	)

	report, err := s.turnoverReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type reportOrder struct {
		ID         string    `json:"id"`
		ClientID   string    `json:"client_id"`
		TotalPrice string    `json:"total_price"`
		CreatedAt  time.Time `json:"created_at"`
	}

	orders := make([]reportOrder, 0, len(report.Orders))
	for _, o := range report.Orders {
		orders = append(orders, reportOrder{
			ID:         o.ID.String(),
			ClientID:   o.ClientID.String(),
			TotalPrice: o.TotalPrice.String(),
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orders": orders,
		"total":  report.Total.String(),
	})
}

// EarningsReport handles GET /api/v1/reports/earnings/:courierID.
func (s *Server) EarningsReport(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewEarningsReportQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.earningsReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type earningsOrder struct {
		ID         string    `json:"id"`
		TotalPrice string    `json:"total_price"`
		CreatedAt  time.Time `json:"created_at"`
	}

	orders := make([]earningsOrder, 0, len(report.Orders))
	for _, o := range report.Orders {
		orders = append(orders, earningsOrder{
			ID:         o.ID.String(),
			TotalPrice: o.TotalPrice.String(),
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"courier_id":      report.CourierID.String(),
		"courier_name":    report.CourierName,
		"orders":          orders,
		"delivered_total": report.DeliveredTotal.String(),
		"earnings":        report.Earnings.String(),
	})
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		VehicleType string `json:"vehicle_type"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, body.Name, body.VehicleType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": courierID.String()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain error kinds to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
