package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	name        string
	description string
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(menuID kernel.UUID, name, description string, unitPrice kernel.Money) (CreateMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return CreateMenuCommand{}, err
	}
	return CreateMenuCommand{
		menuID:      menuID,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID { return c.menuID }
func (c CreateMenuCommand) Name() string { return c.name }
func (c CreateMenuCommand) Description() string { return c.description }
func (c CreateMenuCommand) UnitPrice() kernel.Money { return c.unitPrice }
