package queries

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrGetClientQueryIsNotConstructed = errors.New("GetClientQuery must be created via NewGetClientQuery constructor")
	ErrGetMenuQueryIsNotConstructed   = errors.New("GetMenuQuery must be created via NewGetMenuQuery constructor")
)

type GetClientQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

type GetMenuQuery struct {
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuQuery(menuID kernel.UUID) (GetMenuQuery, error) {
	if err := menuID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}
	return GetMenuQuery{menuID: menuID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}
