package http

import (
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// OrderHandlers groups the use cases behind the /orders routes.
type OrderHandlers struct {
	Create       commands.CreateOrderCommandHandler
	Update       commands.UpdateOrderCommandHandler
	ChangeStatus commands.ChangeOrderStatusCommandHandler
	Remove       commands.RemoveOrderCommandHandler
	Queries      queries.OrderQueryHandler
}

// PaymentHandlers groups the use cases behind the /payments routes.
type PaymentHandlers struct {
	Create       commands.CreatePaymentCommandHandler
	Update       commands.UpdatePaymentCommandHandler
	ChangeStatus commands.ChangePaymentStatusCommandHandler
	Complete     commands.CompletePaymentCommandHandler
	Remove       commands.RemovePaymentCommandHandler
	Queries      queries.PaymentQueryHandler
}

// DeliveryHandlers groups the use cases behind the /deliveries routes.
// ChangeStatus also serves the complete route.
type DeliveryHandlers struct {
	Schedule     commands.ScheduleDeliveryCommandHandler
	Update       commands.UpdateDeliveryCommandHandler
	ChangeStatus commands.ChangeDeliveryStatusCommandHandler
	Remove       commands.RemoveDeliveryCommandHandler
	Queries      queries.DeliveryQueryHandler
}

type CatalogHandlers struct {
	Commands commands.CatalogCommandHandler
	Queries  queries.CatalogQueryHandler
}

// Server implements api.ServerInterface. Handlers return domain errors
// unchanged; ErrorHandler turns them into responses.
type Server struct {
	orders     OrderHandlers
	payments   PaymentHandlers
	deliveries DeliveryHandlers
	catalog    CatalogHandlers
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	orders OrderHandlers,
	payments PaymentHandlers,
	deliveries DeliveryHandlers,
	catalog CatalogHandlers,
) *Server {
	return &Server{
		orders:     orders,
		payments:   payments,
		deliveries: deliveries,
		catalog:    catalog,
	}
}

func bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// toKernelID converts a wire identifier. The nil UUID becomes the zero
// kernel.UUID, which command and query constructors reject with the
// parameter name.
func toKernelID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func toKernelIDPtr(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	converted := toKernelID(*id)
	return &converted
}

func toAPIID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toDate(d openapi_types.Date) kernel.Date {
	return kernel.DateOf(d.Time)
}

func toDatePtr(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	converted := toDate(*d)
	return &converted
}

func toAPIDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func toDateRange(params api.DateRangeParams) (queries.DateRange, error) {
	return queries.NewDateRange(toDate(params.From), toDate(params.To))
}

func parseTimeOfDay(paramName, raw string) (kernel.TimeOfDay, error) {
	if raw == "" {
		return kernel.TimeOfDay{}, errs.NewValueIsRequiredError(paramName)
	}
	return kernel.ParseTimeOfDay(paramName, raw)
}

// parseOr parses raw with parse, or returns fallback when raw is absent.
func parseOr[T any](parse func(paramName, raw string) (T, error), paramName string, raw *string, fallback T) (T, error) {
	if raw == nil {
		return fallback, nil
	}
	return parse(paramName, *raw)
}

// parsePtr parses an optional field of a patch body.
func parsePtr[T any](parse func(paramName, raw string) (T, error), paramName string, raw *string) (*T, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent field
	}
	value, err := parse(paramName, *raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
