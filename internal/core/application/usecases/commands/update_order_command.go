package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand edits the attributes of an order. The menu and status
// are not editable here.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, patch order.Patch) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if patch.ClientID != nil {
		if err := requireID("clientId", *patch.ClientID); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return UpdateOrderCommand{orderID: orderID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderCommand) Patch() order.Patch { return c.patch }
