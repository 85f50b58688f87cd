package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed         = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
	ErrListOrdersQueryIsNotConstructed       = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")
	ErrListClientOrdersQueryIsNotConstructed = errors.New("ListClientOrdersQuery must be created via NewListClientOrdersQuery constructor")
	ErrListOrdersByEventDateIsNotConstructed = errors.New("ListOrdersByEventDateQuery must be created via NewListOrdersByEventDateQuery constructor")
	ErrListTodayOrdersQueryIsNotConstructed  = errors.New("ListTodayOrdersQuery must be created via NewListTodayOrdersQuery constructor")
	ErrGetOrderStatsQueryIsNotConstructed    = errors.New("GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor")
)

// GetOrderQuery reads one order together with its client and menu.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// ListOrdersQuery lists orders, newest first. Nil filters match everything.
type ListOrdersQuery struct {
	status   *order.Status
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status *order.Status, clientID *kernel.UUID) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{status: status, clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListClientOrdersQuery lists the orders of a client that must exist.
type ListClientOrdersQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListClientOrdersQuery(clientID kernel.UUID) (ListClientOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return ListClientOrdersQuery{}, err
	}
	return ListClientOrdersQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClientOrdersQueryIsNotConstructed)
}

// ListOrdersByEventDateQuery lists orders whose event falls in a date range.
type ListOrdersByEventDateQuery struct {
	dateRange DateRange

	guard guard.ConstructorGuard
}

func NewListOrdersByEventDateQuery(dateRange DateRange) (ListOrdersByEventDateQuery, error) {
	if err := dateRange.Validate(); err != nil {
		return ListOrdersByEventDateQuery{}, err
	}
	return ListOrdersByEventDateQuery{dateRange: dateRange, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByEventDateQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByEventDateIsNotConstructed)
}

// ListTodayOrdersQuery lists orders whose event is today.
type ListTodayOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListTodayOrdersQuery() ListTodayOrdersQuery {
	return ListTodayOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTodayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTodayOrdersQueryIsNotConstructed)
}

type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}
