package queries

import (
	"errors"
	"strings"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed          = errors.New("GetDeliveryQuery must be created via NewGetDeliveryQuery constructor")
	ErrGetOrderDeliveryQueryIsNotConstructed     = errors.New("GetOrderDeliveryQuery must be created via NewGetOrderDeliveryQuery constructor")
	ErrListDeliveriesQueryIsNotConstructed       = errors.New("ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor")
	ErrListDriverDeliveriesQueryIsNotConstructed = errors.New("ListDriverDeliveriesQuery must be created via NewListDriverDeliveriesQuery constructor")
	ErrListDeliveriesByDateIsNotConstructed      = errors.New("ListDeliveriesByDateQuery must be created via NewListDeliveriesByDateQuery constructor")
	ErrListTodayDeliveriesIsNotConstructed       = errors.New("ListTodayDeliveriesQuery must be created via NewListTodayDeliveriesQuery constructor")
	ErrGetDeliveryStatsQueryIsNotConstructed     = errors.New("GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor")
)

type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// GetOrderDeliveryQuery reads the delivery of an order.
type GetOrderDeliveryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDeliveryQuery(orderID kernel.UUID) (GetOrderDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDeliveryQuery{}, err
	}
	return GetOrderDeliveryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDeliveryQueryIsNotConstructed)
}

type ListDeliveriesQuery struct {
	status *delivery.Status

	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(status *delivery.Status) (ListDeliveriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
	}
	return ListDeliveriesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

type ListDriverDeliveriesQuery struct {
	driver string

	guard guard.ConstructorGuard
}

func NewListDriverDeliveriesQuery(driver string) (ListDriverDeliveriesQuery, error) {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		return ListDriverDeliveriesQuery{}, errs.NewValueIsRequiredError("driver")
	}
	return ListDriverDeliveriesQuery{driver: driver, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDriverDeliveriesQueryIsNotConstructed)
}

type ListDeliveriesByDateQuery struct {
	dateRange DateRange

	guard guard.ConstructorGuard
}

func NewListDeliveriesByDateQuery(dateRange DateRange) (ListDeliveriesByDateQuery, error) {
	if err := dateRange.Validate(); err != nil {
		return ListDeliveriesByDateQuery{}, err
	}
	return ListDeliveriesByDateQuery{dateRange: dateRange, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDeliveriesByDateQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesByDateIsNotConstructed)
}

type ListTodayDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListTodayDeliveriesQuery() ListTodayDeliveriesQuery {
	return ListTodayDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTodayDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListTodayDeliveriesIsNotConstructed)
}

type GetDeliveryStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryStatsQuery() GetDeliveryStatsQuery {
	return GetDeliveryStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}
