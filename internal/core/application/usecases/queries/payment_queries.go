package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/payment"
	"catering/internal/pkg/guard"
)

var (
	ErrGetPaymentQueryIsNotConstructed         = errors.New("GetPaymentQuery must be created via NewGetPaymentQuery constructor")
	ErrListPaymentsQueryIsNotConstructed       = errors.New("ListPaymentsQuery must be created via NewListPaymentsQuery constructor")
	ErrListOrderPaymentsQueryIsNotConstructed  = errors.New("ListOrderPaymentsQuery must be created via NewListOrderPaymentsQuery constructor")
	ErrListPaymentsByDateQueryIsNotConstructed = errors.New("ListPaymentsByDateQuery must be created via NewListPaymentsByDateQuery constructor")
)

type GetPaymentQuery struct {
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPaymentQuery(paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// ListPaymentsQuery lists payments, latest first. Nil filters match everything.
type ListPaymentsQuery struct {
	status *payment.Status
	method *payment.Method

	guard guard.ConstructorGuard
}

func NewListPaymentsQuery(status *payment.Status, method *payment.Method) (ListPaymentsQuery, error) {
	var errList []error
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if method != nil {
		errList = append(errList, method.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListPaymentsQuery{}, err
	}
	return ListPaymentsQuery{status: status, method: method, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// ListOrderPaymentsQuery reads the payments of one order. It backs both the
// per-order listing and the payment summary.
type ListOrderPaymentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrderPaymentsQuery(orderID kernel.UUID) (ListOrderPaymentsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListOrderPaymentsQuery{}, err
	}
	return ListOrderPaymentsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderPaymentsQueryIsNotConstructed)
}

// ListPaymentsByDateQuery lists payments registered within a range of days.
type ListPaymentsByDateQuery struct {
	dateRange DateRange

	guard guard.ConstructorGuard
}

func NewListPaymentsByDateQuery(dateRange DateRange) (ListPaymentsByDateQuery, error) {
	if err := dateRange.Validate(); err != nil {
		return ListPaymentsByDateQuery{}, err
	}
	return ListPaymentsByDateQuery{dateRange: dateRange, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPaymentsByDateQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsByDateQueryIsNotConstructed)
}

var (
	ErrListTodayPaymentsQueryIsNotConstructed = errors.New("ListTodayPaymentsQuery must be created via NewListTodayPaymentsQuery constructor")
	ErrGetPaymentStatsQueryIsNotConstructed   = errors.New("GetPaymentStatsQuery must be created via NewGetPaymentStatsQuery constructor")
)

// ListTodayPaymentsQuery lists payments registered today.
type ListTodayPaymentsQuery struct {
	guard guard.ConstructorGuard
}

func NewListTodayPaymentsQuery() ListTodayPaymentsQuery {
	return ListTodayPaymentsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTodayPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListTodayPaymentsQueryIsNotConstructed)
}

type GetPaymentStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPaymentStatsQuery() GetPaymentStatsQuery {
	return GetPaymentStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPaymentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatsQueryIsNotConstructed)
}
