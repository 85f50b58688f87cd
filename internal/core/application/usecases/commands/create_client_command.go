package commands

import (
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	details  catalog.ClientDetails

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(clientID kernel.UUID, details catalog.ClientDetails) (CreateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}
	return CreateClientCommand{clientID: clientID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }
func (c CreateClientCommand) Details() catalog.ClientDetails { return c.details }
