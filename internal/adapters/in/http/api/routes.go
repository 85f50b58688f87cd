package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is implemented by the HTTP adapter. Path and query
// parameters arrive already bound; bodies are bound by the implementation.
type ServerInterface interface {
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /orders/today)
	ListTodayOrders(ctx echo.Context) error
	// (GET /orders/stats)
	GetOrderStats(ctx echo.Context) error
	// (GET /orders/client/{clientId})
	ListClientOrders(ctx echo.Context, clientId openapi_types.UUID) error
	// (GET /orders/date-range)
	ListOrdersByEventDate(ctx echo.Context, params DateRangeParams) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /orders/{id})
	UpdateOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /orders/{id})
	DeleteOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /payments)
	CreatePayment(ctx echo.Context) error
	// (GET /payments)
	ListPayments(ctx echo.Context, params ListPaymentsParams) error
	// (GET /payments/today)
	ListTodayPayments(ctx echo.Context) error
	// (GET /payments/stats)
	GetPaymentStats(ctx echo.Context) error
	// (GET /payments/date-range)
	ListPaymentsByDate(ctx echo.Context, params DateRangeParams) error
	// (GET /payments/order/{orderId})
	ListOrderPayments(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /payments/order/{orderId}/summary)
	GetPaymentSummary(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /payments/{id})
	GetPayment(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /payments/{id})
	UpdatePayment(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /payments/{id}/status)
	ChangePaymentStatus(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /payments/{id}/complete)
	CompletePayment(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /payments/{id})
	DeletePayment(ctx echo.Context, id openapi_types.UUID) error
	// (POST /deliveries)
	CreateDelivery(ctx echo.Context) error
	// (GET /deliveries)
	ListDeliveries(ctx echo.Context, params ListDeliveriesParams) error
	// (GET /deliveries/today)
	ListTodayDeliveries(ctx echo.Context) error
	// (GET /deliveries/stats)
	GetDeliveryStats(ctx echo.Context) error
	// (GET /deliveries/driver/{driver})
	ListDriverDeliveries(ctx echo.Context, driver string) error
	// (GET /deliveries/date-range)
	ListDeliveriesByDate(ctx echo.Context, params DateRangeParams) error
	// (GET /deliveries/order/{orderId})
	GetOrderDelivery(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /deliveries/{id})
	GetDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /deliveries/{id})
	UpdateDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /deliveries/{id}/status)
	ChangeDeliveryStatus(ctx echo.Context, id openapi_types.UUID) error
	// (PATCH /deliveries/{id}/complete)
	CompleteDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /deliveries/{id})
	DeleteDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (POST /clients)
	CreateClient(ctx echo.Context) error
	// (GET /clients)
	ListClients(ctx echo.Context) error
	// (GET /clients/{id})
	GetClient(ctx echo.Context, id openapi_types.UUID) error
	// (POST /menus)
	CreateMenu(ctx echo.Context) error
	// (GET /menus)
	ListMenus(ctx echo.Context) error
	// (GET /menus/{id})
	GetMenu(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "clientId", ctx.QueryParams(), &params.ClientId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// ListTodayOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListTodayOrders(ctx echo.Context) error {
	return w.Handler.ListTodayOrders(ctx)
}

// GetOrderStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStats(ctx echo.Context) error {
	return w.Handler.GetOrderStats(ctx)
}

// ListClientOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListClientOrders(ctx echo.Context) error {
	var err error
	var clientId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "clientId", ctx.Param("clientId"), &clientId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	return w.Handler.ListClientOrders(ctx, clientId)
}

// ListOrdersByEventDate converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrdersByEventDate(ctx echo.Context) error {
	var err error
	var params DateRangeParams

	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.ListOrdersByEventDate(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetOrder(ctx, id)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.UpdateOrder(ctx, id)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ChangeOrderStatus(ctx, id)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteOrder(ctx, id)
}

// CreatePayment converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePayment(ctx echo.Context) error {
	return w.Handler.CreatePayment(ctx)
}

// ListPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListPayments(ctx echo.Context) error {
	var err error
	var params ListPaymentsParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "method", ctx.QueryParams(), &params.Method)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter method: %s", err))
	}

	return w.Handler.ListPayments(ctx, params)
}

// ListTodayPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListTodayPayments(ctx echo.Context) error {
	return w.Handler.ListTodayPayments(ctx)
}

// GetPaymentStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetPaymentStats(ctx echo.Context) error {
	return w.Handler.GetPaymentStats(ctx)
}

// ListPaymentsByDate converts echo context to params.
func (w *ServerInterfaceWrapper) ListPaymentsByDate(ctx echo.Context) error {
	var err error
	var params DateRangeParams

	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.ListPaymentsByDate(ctx, params)
}

// ListOrderPayments converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderPayments(ctx echo.Context) error {
	var err error
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.ListOrderPayments(ctx, orderId)
}

// GetPaymentSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetPaymentSummary(ctx echo.Context) error {
	var err error
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetPaymentSummary(ctx, orderId)
}

// GetPayment converts echo context to params.
func (w *ServerInterfaceWrapper) GetPayment(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetPayment(ctx, id)
}

// UpdatePayment converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePayment(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.UpdatePayment(ctx, id)
}

// ChangePaymentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangePaymentStatus(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ChangePaymentStatus(ctx, id)
}

// CompletePayment converts echo context to params.
func (w *ServerInterfaceWrapper) CompletePayment(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.CompletePayment(ctx, id)
}

// DeletePayment converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePayment(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeletePayment(ctx, id)
}

// CreateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDelivery(ctx echo.Context) error {
	return w.Handler.CreateDelivery(ctx)
}

// ListDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	var err error
	var params ListDeliveriesParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListDeliveries(ctx, params)
}

// ListTodayDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListTodayDeliveries(ctx echo.Context) error {
	return w.Handler.ListTodayDeliveries(ctx)
}

// GetDeliveryStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveryStats(ctx echo.Context) error {
	return w.Handler.GetDeliveryStats(ctx)
}

// ListDriverDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDriverDeliveries(ctx echo.Context) error {
	var err error
	var driver string

	err = runtime.BindStyledParameterWithOptions("simple", "driver", ctx.Param("driver"), &driver, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driver: %s", err))
	}

	return w.Handler.ListDriverDeliveries(ctx, driver)
}

// ListDeliveriesByDate converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveriesByDate(ctx echo.Context) error {
	var err error
	var params DateRangeParams

	err = runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.ListDeliveriesByDate(ctx, params)
}

// GetOrderDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderDelivery(ctx echo.Context) error {
	var err error
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetOrderDelivery(ctx, orderId)
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetDelivery(ctx, id)
}

// UpdateDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDelivery(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.UpdateDelivery(ctx, id)
}

// ChangeDeliveryStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeDeliveryStatus(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.ChangeDeliveryStatus(ctx, id)
}

// CompleteDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.CompleteDelivery(ctx, id)
}

// DeleteDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteDelivery(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteDelivery(ctx, id)
}

// CreateClient converts echo context to params.
func (w *ServerInterfaceWrapper) CreateClient(ctx echo.Context) error {
	return w.Handler.CreateClient(ctx)
}

// ListClients converts echo context to params.
func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	return w.Handler.ListClients(ctx)
}

// GetClient converts echo context to params.
func (w *ServerInterfaceWrapper) GetClient(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetClient(ctx, id)
}

// CreateMenu converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMenu(ctx echo.Context) error {
	return w.Handler.CreateMenu(ctx)
}

// ListMenus converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenus(ctx echo.Context) error {
	return w.Handler.ListMenus(ctx)
}

// GetMenu converts echo context to params.
func (w *ServerInterfaceWrapper) GetMenu(ctx echo.Context) error {
	var err error
	var id openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetMenu(ctx, id)
}

// EchoRouter is the part of *echo.Echo and *echo.Group used for routing.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route of the API to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/today", wrapper.ListTodayOrders)
	router.GET(baseURL+"/orders/stats", wrapper.GetOrderStats)
	router.GET(baseURL+"/orders/client/:clientId", wrapper.ListClientOrders)
	router.GET(baseURL+"/orders/date-range", wrapper.ListOrdersByEventDate)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:id", wrapper.UpdateOrder)
	router.PATCH(baseURL+"/orders/:id/status", wrapper.ChangeOrderStatus)
	router.DELETE(baseURL+"/orders/:id", wrapper.DeleteOrder)
	router.POST(baseURL+"/payments", wrapper.CreatePayment)
	router.GET(baseURL+"/payments", wrapper.ListPayments)
	router.GET(baseURL+"/payments/today", wrapper.ListTodayPayments)
	router.GET(baseURL+"/payments/stats", wrapper.GetPaymentStats)
	router.GET(baseURL+"/payments/date-range", wrapper.ListPaymentsByDate)
	router.GET(baseURL+"/payments/order/:orderId", wrapper.ListOrderPayments)
	router.GET(baseURL+"/payments/order/:orderId/summary", wrapper.GetPaymentSummary)
	router.GET(baseURL+"/payments/:id", wrapper.GetPayment)
	router.PUT(baseURL+"/payments/:id", wrapper.UpdatePayment)
	router.PATCH(baseURL+"/payments/:id/status", wrapper.ChangePaymentStatus)
	router.PATCH(baseURL+"/payments/:id/complete", wrapper.CompletePayment)
	router.DELETE(baseURL+"/payments/:id", wrapper.DeletePayment)
	router.POST(baseURL+"/deliveries", wrapper.CreateDelivery)
	router.GET(baseURL+"/deliveries", wrapper.ListDeliveries)
	router.GET(baseURL+"/deliveries/today", wrapper.ListTodayDeliveries)
	router.GET(baseURL+"/deliveries/stats", wrapper.GetDeliveryStats)
	router.GET(baseURL+"/deliveries/driver/:driver", wrapper.ListDriverDeliveries)
	router.GET(baseURL+"/deliveries/date-range", wrapper.ListDeliveriesByDate)
	router.GET(baseURL+"/deliveries/order/:orderId", wrapper.GetOrderDelivery)
	router.GET(baseURL+"/deliveries/:id", wrapper.GetDelivery)
	router.PUT(baseURL+"/deliveries/:id", wrapper.UpdateDelivery)
	router.PATCH(baseURL+"/deliveries/:id/status", wrapper.ChangeDeliveryStatus)
	router.PATCH(baseURL+"/deliveries/:id/complete", wrapper.CompleteDelivery)
	router.DELETE(baseURL+"/deliveries/:id", wrapper.DeleteDelivery)
	router.POST(baseURL+"/clients", wrapper.CreateClient)
	router.GET(baseURL+"/clients", wrapper.ListClients)
	router.GET(baseURL+"/clients/:id", wrapper.GetClient)
	router.POST(baseURL+"/menus", wrapper.CreateMenu)
	router.GET(baseURL+"/menus", wrapper.ListMenus)
	router.GET(baseURL+"/menus/:id", wrapper.GetMenu)
}
