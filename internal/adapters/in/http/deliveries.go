package http

import (
	"errors"
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateDelivery handles POST /deliveries. An order has at most one delivery
// and it may not be scheduled after the event.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body api.NewDelivery
	if err := bind(ctx, &body); err != nil {
		return err
	}

	start, startErr := parseTimeOfDay("startTime", body.StartTime)
	end, endErr := parsePtr(kernel.ParseTimeOfDay, "endTime", body.EndTime)
	status, statusErr := parseOr(delivery.ParseStatus, "status", body.Status, delivery.Unknown)
	if err := errors.Join(startErr, endErr, statusErr); err != nil {
		return err
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewScheduleDeliveryCommand(
		deliveryID,
		toKernelID(body.OrderId),
		delivery.Schedule{Date: toDate(body.DeliveryDate), Start: start, End: end},
		delivery.Crew{Vehicle: deref(body.Vehicle), Driver: deref(body.Driver), Notes: deref(body.Notes)},
		status,
	)
	if err != nil {
		return err
	}
	if err = s.deliveries.Schedule.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusCreated, deliveryID)
}

// ListDeliveries handles GET /deliveries with an optional status filter.
func (s *Server) ListDeliveries(ctx echo.Context, params api.ListDeliveriesParams) error {
	status, err := parsePtr(delivery.ParseStatus, "status", params.Status)
	if err != nil {
		return err
	}
	query, err := queries.NewListDeliveriesQuery(status)
	if err != nil {
		return err
	}

	deliveries, err := s.deliveries.Queries.HandleList(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIDeliveries(deliveries))
}

// ListTodayDeliveries handles GET /deliveries/today.
func (s *Server) ListTodayDeliveries(ctx echo.Context) error {
	deliveries, err := s.deliveries.Queries.HandleListToday(
		ctx.Request().Context(), queries.NewListTodayDeliveriesQuery(),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIDeliveries(deliveries))
}

// GetDeliveryStats handles GET /deliveries/stats.
func (s *Server) GetDeliveryStats(ctx echo.Context) error {
	stats, err := s.deliveries.Queries.HandleStats(ctx.Request().Context(), queries.NewGetDeliveryStatsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.DeliveryStats{
		TotalDeliveries:       stats.TotalDeliveries,
		DeliveriesToday:       stats.DeliveriesToday,
		CompletedCount:        stats.CompletedCount,
		CompletionRatePercent: stats.CompletionRatePercent,
		ByStatus:              stats.ByStatus,
	})
}

// ListDriverDeliveries handles GET /deliveries/driver/{driver}.
func (s *Server) ListDriverDeliveries(ctx echo.Context, driver string) error {
	query, err := queries.NewListDriverDeliveriesQuery(driver)
	if err != nil {
		return err
	}

	deliveries, err := s.deliveries.Queries.HandleListByDriver(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIDeliveries(deliveries))
}

// ListDeliveriesByDate handles GET /deliveries/date-range.
func (s *Server) ListDeliveriesByDate(ctx echo.Context, params api.DateRangeParams) error {
	dateRange, err := toDateRange(params)
	if err != nil {
		return err
	}
	query, err := queries.NewListDeliveriesByDateQuery(dateRange)
	if err != nil {
		return err
	}

	deliveries, err := s.deliveries.Queries.HandleListByDate(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIDeliveries(deliveries))
}

// GetOrderDelivery handles GET /deliveries/order/{orderId}.
func (s *Server) GetOrderDelivery(ctx echo.Context, orderID openapi_types.UUID) error {
	query, err := queries.NewGetOrderDeliveryQuery(toKernelID(orderID))
	if err != nil {
		return err
	}

	view, err := s.deliveries.Queries.HandleGetByOrder(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIDelivery(view))
}

// GetDelivery handles GET /deliveries/{id}.
func (s *Server) GetDelivery(ctx echo.Context, id openapi_types.UUID) error {
	return s.respondDelivery(ctx, http.StatusOK, toKernelID(id))
}

// UpdateDelivery handles PUT /deliveries/{id}.
func (s *Server) UpdateDelivery(ctx echo.Context, id openapi_types.UUID) error {
	var body api.DeliveryPatch
	if err := bind(ctx, &body); err != nil {
		return err
	}

	start, startErr := parsePtr(parseTimeOfDay, "startTime", body.StartTime)
	end, endErr := parsePtr(kernel.ParseTimeOfDay, "endTime", body.EndTime)
	if err := errors.Join(startErr, endErr); err != nil {
		return err
	}

	deliveryID := toKernelID(id)
	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, delivery.Patch{
		OrderID:   toKernelIDPtr(body.OrderId),
		Date:      toDatePtr(body.DeliveryDate),
		StartTime: start,
		EndTime:   end,
		Vehicle:   body.Vehicle,
		Driver:    body.Driver,
		Notes:     body.Notes,
	})
	if err != nil {
		return err
	}
	if err = s.deliveries.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// ChangeDeliveryStatus handles PATCH /deliveries/{id}/status.
func (s *Server) ChangeDeliveryStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body api.StatusChange
	if err := bind(ctx, &body); err != nil {
		return err
	}

	status, err := delivery.ParseStatus("status", body.Status)
	if err != nil {
		return err
	}

	deliveryID := toKernelID(id)
	cmd, err := commands.NewChangeDeliveryStatusCommand(deliveryID, status)
	if err != nil {
		return err
	}
	if err = s.deliveries.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// CompleteDelivery handles PATCH /deliveries/{id}/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, id openapi_types.UUID) error {
	deliveryID := toKernelID(id)
	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return err
	}
	if err = s.deliveries.ChangeStatus.HandleComplete(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusOK, deliveryID)
}

// DeleteDelivery handles DELETE /deliveries/{id}.
func (s *Server) DeleteDelivery(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewRemoveDeliveryCommand(toKernelID(id))
	if err != nil {
		return err
	}
	if err = s.deliveries.Remove.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondDelivery(ctx echo.Context, code int, deliveryID kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return err
	}

	view, err := s.deliveries.Queries.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIDelivery(view))
}
