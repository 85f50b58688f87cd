package http

import (
	"net/http"

	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) CreateClient(ctx echo.Context) error {
	var body api.NewClient
	if err := bind(ctx, &body); err != nil {
		return err
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, catalog.ClientDetails{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Email:     deref(body.Email),
		Address:   deref(body.Address),
		City:      deref(body.City),
	})
	if err != nil {
		return err
	}
	if err = s.catalog.Commands.HandleCreateClient(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondClient(ctx, http.StatusCreated, clientID)
}

func (s *Server) ListClients(ctx echo.Context) error {
	clients, err := s.catalog.Queries.HandleListClients(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapAll(clients, toAPIClient))
}

func (s *Server) GetClient(ctx echo.Context, id openapi_types.UUID) error {
	return s.respondClient(ctx, http.StatusOK, toKernelID(id))
}

func (s *Server) CreateMenu(ctx echo.Context) error {
	var body api.NewMenu
	if err := bind(ctx, &body); err != nil {
		return err
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(menuID, body.Name, deref(body.Description), kernel.NewMoney(body.UnitPrice))
	if err != nil {
		return err
	}
	if err = s.catalog.Commands.HandleCreateMenu(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondMenu(ctx, http.StatusCreated, menuID)
}

func (s *Server) ListMenus(ctx echo.Context) error {
	menus, err := s.catalog.Queries.HandleListMenus(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapAll(menus, toAPIMenu))
}

func (s *Server) GetMenu(ctx echo.Context, id openapi_types.UUID) error {
	return s.respondMenu(ctx, http.StatusOK, toKernelID(id))
}

func (s *Server) respondClient(ctx echo.Context, code int, clientID kernel.UUID) error {
	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return err
	}

	view, err := s.catalog.Queries.HandleGetClient(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIClient(view))
}

func (s *Server) respondMenu(ctx echo.Context, code int, menuID kernel.UUID) error {
	query, err := queries.NewGetMenuQuery(menuID)
	if err != nil {
		return err
	}

	view, err := s.catalog.Queries.HandleGetMenu(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toAPIMenu(view))
}
