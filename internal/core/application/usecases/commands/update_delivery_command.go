package commands

import (
	"errors"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	patch      delivery.Patch

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(deliveryID kernel.UUID, patch delivery.Patch) (UpdateDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UpdateDeliveryCommand{}, err
	}
	if patch.OrderID != nil {
		if err := requireID("orderId", *patch.OrderID); err != nil {
			return UpdateDeliveryCommand{}, err
		}
	}
	return UpdateDeliveryCommand{deliveryID: deliveryID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c UpdateDeliveryCommand) Patch() delivery.Patch { return c.patch }
