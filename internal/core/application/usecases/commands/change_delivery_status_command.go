package commands

import (
	"errors"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(
	deliveryID kernel.UUID, status delivery.Status,
) (ChangeDeliveryStatusCommand, error) {
	if err := errors.Join(deliveryID.Validate(), status.Validate()); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}
	return ChangeDeliveryStatusCommand{deliveryID: deliveryID, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c ChangeDeliveryStatusCommand) Status() delivery.Status { return c.status }
