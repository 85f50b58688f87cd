package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a catering order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, menuID, details, order.Unknown)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	menuID  kernel.UUID
	details order.Details
	status  order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers; business rules are checked by
// the Order aggregate. An Unknown status means "use the default" (PENDING).
func NewCreateOrderCommand(
	orderID, menuID kernel.UUID, details order.Details, status order.Status,
) (CreateOrderCommand, error) {
	if status == order.Unknown {
		status = order.Pending
	}

	if err := errors.Join(
		orderID.Validate(),
		requireID("menuId", menuID),
		requireID("clientId", details.ClientID),
		status.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID: orderID,
		menuID:  menuID,
		details: details,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) MenuID() kernel.UUID { return c.menuID }
func (c CreateOrderCommand) Details() order.Details { return c.details }
func (c CreateOrderCommand) Status() order.Status { return c.status }
