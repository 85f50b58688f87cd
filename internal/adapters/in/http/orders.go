package http

import (
	"errors"
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.NewOrder
	if err := bind(ctx, &body); err != nil {
		return err
	}

	eventTime, timeErr := parseTimeOfDay("eventTime", body.EventTime)
	status, statusErr := parseOr(order.ParseStatus, "status", body.Status, order.Unknown)
	if err := errors.Join(timeErr, statusErr); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, toKernelID(body.MenuId), order.Details{
		ClientID:  toKernelID(body.ClientId),
		EventDate: toDate(body.EventDate),
		EventTime: eventTime,
		Quantity:  body.Quantity,
		Guests:    body.Guests,
		Address:   body.EventAddress,
		Phone:     deref(body.ContactPhone),
		Notes:     deref(body.Notes),
	}, status)
	if err != nil {
		return err
	}
	if err = s.orders.Create.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// ListOrders handles GET /orders with optional status and client filters.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	status, err := parsePtr(order.ParseStatus, "status", params.Status)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersQuery(status, toKernelIDPtr(params.ClientId))
	if err != nil {
		return err
	}

	orders, err := s.orders.Queries.HandleList(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// ListTodayOrders handles GET /orders/today.
func (s *Server) ListTodayOrders(ctx echo.Context) error {
	orders, err := s.orders.Queries.HandleListToday(ctx.Request().Context(), queries.NewListTodayOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetOrderStats handles GET /orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.orders.Queries.HandleStats(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.OrderStats{
		TotalOrders:  stats.TotalOrders,
		OrdersToday:  stats.OrdersToday,
		TotalRevenue: stats.TotalRevenue.String(),
		ByStatus:     stats.ByStatus,
	})
}

// ListClientOrders handles GET /orders/client/{clientId}.
func (s *Server) ListClientOrders(ctx echo.Context, clientID openapi_types.UUID) error {
	query, err := queries.NewListClientOrdersQuery(toKernelID(clientID))
	if err != nil {
		return err
	}

	orders, err := s.orders.Queries.HandleListByClient(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// ListOrdersByEventDate handles GET /orders/date-range.
func (s *Server) ListOrdersByEventDate(ctx echo.Context, params api.DateRangeParams) error {
	dateRange, err := toDateRange(params)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersByEventDateQuery(dateRange)
	if err != nil {
		return err
	}

	orders, err := s.orders.Queries.HandleListByEventDate(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(orders))
}

// GetOrder handles GET /orders/{id} and embeds the client and menu.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	query, err := queries.NewGetOrderQuery(toKernelID(id))
	if err != nil {
		return err
	}

	details, err := s.orders.Queries.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIOrderDetails(details))
}

// UpdateOrder handles PUT /orders/{id}. Absent fields are left unchanged.
func (s *Server) UpdateOrder(ctx echo.Context, id openapi_types.UUID) error {
	var body api.OrderPatch
	if err := bind(ctx, &body); err != nil {
		return err
	}

	eventTime, err := parsePtr(parseTimeOfDay, "eventTime", body.EventTime)
	if err != nil {
		return err
	}

	orderID := toKernelID(id)
	cmd, err := commands.NewUpdateOrderCommand(orderID, order.Patch{
		ClientID:  toKernelIDPtr(body.ClientId),
		EventDate: toDatePtr(body.EventDate),
		EventTime: eventTime,
		Quantity:  body.Quantity,
		Guests:    body.Guests,
		Address:   body.EventAddress,
		Phone:     body.ContactPhone,
		Notes:     body.Notes,
	})
	if err != nil {
		return err
	}
	if err = s.orders.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// ChangeOrderStatus handles PATCH /orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body api.StatusChange
	if err := bind(ctx, &body); err != nil {
		return err
	}

	status, err := order.ParseStatus("status", body.Status)
	if err != nil {
		return err
	}

	orderID := toKernelID(id)
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	if err = s.orders.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /orders/{id}. Only PENDING orders are removed.
func (s *Server) DeleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewRemoveOrderCommand(toKernelID(id))
	if err != nil {
		return err
	}
	if err = s.orders.Remove.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	details, err := s.orders.Queries.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIOrder(details.OrderView))
}
