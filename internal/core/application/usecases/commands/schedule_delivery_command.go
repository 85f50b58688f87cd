package commands

import (
	"errors"

	"catering/internal/core/domain/model/delivery"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand creates the delivery of an order.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	schedule   delivery.Schedule
	crew       delivery.Crew
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand defaults an Unknown status to SCHEDULED.
func NewScheduleDeliveryCommand(
	deliveryID, orderID kernel.UUID,
	schedule delivery.Schedule,
	crew delivery.Crew,
	status delivery.Status,
) (ScheduleDeliveryCommand, error) {
	if status == delivery.Unknown {
		status = delivery.Scheduled
	}

	if err := errors.Join(
		deliveryID.Validate(),
		requireID("orderId", orderID),
		status.Validate(),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return ScheduleDeliveryCommand{
		deliveryID: deliveryID,
		orderID:    orderID,
		schedule:   schedule,
		crew:       crew,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

func (c ScheduleDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c ScheduleDeliveryCommand) Schedule() delivery.Schedule { return c.schedule }
func (c ScheduleDeliveryCommand) Crew() delivery.Crew { return c.crew }
func (c ScheduleDeliveryCommand) Status() delivery.Status { return c.status }
