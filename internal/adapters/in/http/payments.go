package http

import (
	"errors"
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreatePayment handles POST /payments. The order total caps the sum of
// completed payments; a new payment counts against it whatever its status.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var body api.NewPayment
	if err := bind(ctx, &body); err != nil {
		return err
	}

	method, methodErr := payment.ParseMethod("method", body.Method)
	status, statusErr := parseOr(payment.ParseStatus, "status", body.Status, payment.Unknown)
	if err := errors.Join(methodErr, statusErr); err != nil {
		return err
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(
		paymentID,
		toKernelID(body.OrderId),
		kernel.NewMoney(body.Amount),
		method,
		status,
		deref(body.Reference),
	)
	if err != nil {
		return err
	}
	if err = s.payments.Create.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusCreated, paymentID)
}

// ListPayments handles GET /payments with optional status and method filters.
func (s *Server) ListPayments(ctx echo.Context, params api.ListPaymentsParams) error {
	status, statusErr := parsePtr(payment.ParseStatus, "status", params.Status)
	method, methodErr := parsePtr(payment.ParseMethod, "method", params.Method)
	if err := errors.Join(statusErr, methodErr); err != nil {
		return err
	}
	query, err := queries.NewListPaymentsQuery(status, method)
	if err != nil {
		return err
	}

	payments, err := s.payments.Queries.HandleList(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIPayments(payments))
}

// ListTodayPayments handles GET /payments/today.
func (s *Server) ListTodayPayments(ctx echo.Context) error {
	payments, err := s.payments.Queries.HandleListToday(ctx.Request().Context(), queries.NewListTodayPaymentsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIPayments(payments))
}

// GetPaymentStats handles GET /payments/stats.
func (s *Server) GetPaymentStats(ctx echo.Context) error {
	stats, err := s.payments.Queries.HandleStats(ctx.Request().Context(), queries.NewGetPaymentStatsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.PaymentStats{
		TotalPayments: stats.TotalPayments,
		PaymentsToday: stats.PaymentsToday,
		TotalRevenue:  stats.TotalRevenue.String(),
		RevenueToday:  stats.RevenueToday.String(),
		ByStatus:      stats.ByStatus,
		ByMethod:      stats.ByMethod,
	})
}

// ListPaymentsByDate handles GET /payments/date-range.
func (s *Server) ListPaymentsByDate(ctx echo.Context, params api.DateRangeParams) error {
	dateRange, err := toDateRange(params)
	if err != nil {
		return err
	}
	query, err := queries.NewListPaymentsByDateQuery(dateRange)
	if err != nil {
		return err
	}

	payments, err := s.payments.Queries.HandleListByDate(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIPayments(payments))
}

// ListOrderPayments handles GET /payments/order/{orderId}.
func (s *Server) ListOrderPayments(ctx echo.Context, orderID openapi_types.UUID) error {
	query, err := queries.NewListOrderPaymentsQuery(toKernelID(orderID))
	if err != nil {
		return err
	}

	payments, err := s.payments.Queries.HandleListByOrder(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIPayments(payments))
}

// GetPaymentSummary handles GET /payments/order/{orderId}/summary.
func (s *Server) GetPaymentSummary(ctx echo.Context, orderID openapi_types.UUID) error {
	query, err := queries.NewListOrderPaymentsQuery(toKernelID(orderID))
	if err != nil {
		return err
	}

	summary, err := s.payments.Queries.HandleSummary(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAPIPaymentSummary(summary))
}

// GetPayment handles GET /payments/{id}.
func (s *Server) GetPayment(ctx echo.Context, id openapi_types.UUID) error {
	return s.respondPayment(ctx, http.StatusOK, toKernelID(id))
}

// UpdatePayment handles PUT /payments/{id}. Status is not editable here.
func (s *Server) UpdatePayment(ctx echo.Context, id openapi_types.UUID) error {
	var body api.PaymentPatch
	if err := bind(ctx, &body); err != nil {
		return err
	}

	method, err := parsePtr(payment.ParseMethod, "method", body.Method)
	if err != nil {
		return err
	}
	patch := payment.Patch{
		OrderID:   toKernelIDPtr(body.OrderId),
		Method:    method,
		Reference: body.Reference,
	}
	if body.Amount != nil {
		amount := kernel.NewMoney(*body.Amount)
		patch.Amount = &amount
	}

	paymentID := toKernelID(id)
	cmd, err := commands.NewUpdatePaymentCommand(paymentID, patch)
	if err != nil {
		return err
	}
	if err = s.payments.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusOK, paymentID)
}

// ChangePaymentStatus handles PATCH /payments/{id}/status.
func (s *Server) ChangePaymentStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body api.StatusChange
	if err := bind(ctx, &body); err != nil {
		return err
	}

	status, err := payment.ParseStatus("status", body.Status)
	if err != nil {
		return err
	}

	paymentID := toKernelID(id)
	cmd, err := commands.NewChangePaymentStatusCommand(paymentID, status)
	if err != nil {
		return err
	}
	if err = s.payments.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusOK, paymentID)
}

// CompletePayment handles PATCH /payments/{id}/complete.
func (s *Server) CompletePayment(ctx echo.Context, id openapi_types.UUID) error {
	paymentID := toKernelID(id)
	cmd, err := commands.NewCompletePaymentCommand(paymentID)
	if err != nil {
		return err
	}
	if err = s.payments.Complete.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPayment(ctx, http.StatusOK, paymentID)
}

// DeletePayment handles DELETE /payments/{id}. Only PENDING and FAILED
// payments are removed.
func (s *Server) DeletePayment(ctx echo.Context, id openapi_types.UUID) error {
	cmd, err := commands.NewRemovePaymentCommand(toKernelID(id))
	if err != nil {
		return err
	}
	if err = s.payments.Remove.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondPayment(ctx echo.Context, code int, paymentID kernel.UUID) error {
	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return err
	}

	view, err := s.payments.Queries.HandleGet(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIPayment(view))
}
