package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommandHandler_HandleCreateClient(t *testing.T) {
	t.Run("should store a normalized client", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), catalog.ClientDetails{
			FirstName: " Ana ", LastName: "Ruiz", Phone: "555-0199", Email: "Ana@Example.com",
		})
		require.NoError(t, err)

		repo := new(MockCatalogRepository)
		repo.On("AddClient", mock.Anything, mock.MatchedBy(func(c *catalog.Client) bool {
			return c.Details().FirstName == "Ana" && c.Details().Email == "ana@example.com"
		})).Return(nil).Once()
		uow := newUoW(true)
		uow.On("CatalogRepository").Return(repo).Once()

		h := commands.NewCatalogCommandHandler(catalogUoWFactory{uow}, clock)
		require.NoError(t, h.HandleCreateClient(ctx, cmd))

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should pass a duplicate e-mail conflict through", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCreateClientCommand(kernel.NewUUID(), catalog.ClientDetails{
			FirstName: "Ana", LastName: "Ruiz", Phone: "555-0199", Email: "ana@example.com",
		})

		repo := new(MockCatalogRepository)
		repo.On("AddClient", mock.Anything, mock.Anything).
			Return(errs.NewConflictError("client e-mail ana@example.com is taken")).Once()
		uow := newUoW(false)
		uow.On("CatalogRepository").Return(repo).Once()

		h := commands.NewCatalogCommandHandler(catalogUoWFactory{uow}, clock)

		require.ErrorIs(t, h.HandleCreateClient(ctx, cmd), errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject a client without a phone before opening a transaction", func(t *testing.T) {
		cmd, _ := commands.NewCreateClientCommand(kernel.NewUUID(), catalog.ClientDetails{
			FirstName: "Ana", LastName: "Ruiz",
		})
		uow := new(MockUoW)

		h := commands.NewCatalogCommandHandler(catalogUoWFactory{uow}, clock)
		err := h.HandleCreateClient(t.Context(), cmd)

		assert.True(t, errs.IsInvalidInput(err))
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestCatalogCommandHandler_HandleCreateMenu(t *testing.T) {
	t.Run("should store a menu", func(t *testing.T) {
		cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Taquiza", "", kernel.MoneyFromCents(4500))
		require.NoError(t, err)

		repo := new(MockCatalogRepository)
		repo.On("AddMenu", mock.Anything, mock.AnythingOfType("*catalog.Menu")).Return(nil).Once()
		uow := newUoW(true)
		uow.On("CatalogRepository").Return(repo).Once()

		h := commands.NewCatalogCommandHandler(catalogUoWFactory{uow}, clock)
		require.NoError(t, h.HandleCreateMenu(t.Context(), cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should reject a free menu", func(t *testing.T) {
		cmd, _ := commands.NewCreateMenuCommand(kernel.NewUUID(), "Taquiza", "", kernel.ZeroMoney())

		h := commands.NewCatalogCommandHandler(catalogUoWFactory{new(MockUoW)}, clock)

		require.ErrorIs(t, h.HandleCreateMenu(t.Context(), cmd), errs.ErrValueIsInvalid)
	})
}

func TestCommandsRejectZeroValues(t *testing.T) {
	h := commands.NewCatalogCommandHandler(catalogUoWFactory{new(MockUoW)}, clock)

	require.ErrorIs(t, h.HandleCreateMenu(t.Context(), commands.CreateMenuCommand{}), commands.ErrCreateMenuCommandIsNotConstructed)
	require.ErrorIs(t, h.HandleCreateClient(t.Context(), commands.CreateClientCommand{}), commands.ErrCreateClientCommandIsNotConstructed)
}
