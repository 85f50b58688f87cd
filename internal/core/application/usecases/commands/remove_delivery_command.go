package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrRemoveDeliveryCommandIsNotConstructed = errors.New(
	"RemoveDeliveryCommand must be created via NewRemoveDeliveryCommand constructor",
)

type RemoveDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveDeliveryCommand(deliveryID kernel.UUID) (RemoveDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return RemoveDeliveryCommand{}, err
	}
	return RemoveDeliveryCommand{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryCommandIsNotConstructed)
}

func (c RemoveDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
