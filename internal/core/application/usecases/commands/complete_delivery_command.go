package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand is handled by ChangeDeliveryStatusCommandHandler.HandleComplete.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(deliveryID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
