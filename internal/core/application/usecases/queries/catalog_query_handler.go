package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClientView struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	City      string
	Active    bool
	CreatedAt time.Time
}

type MenuView struct {
	ID          kernel.UUID
	Name        string
	Description string
	UnitPrice   kernel.Money
	Active      bool
	CreatedAt   time.Time
}

const (
	clientColumns = `id, first_name, last_name, phone, COALESCE(email, ''),
		COALESCE(address, ''), COALESCE(city, ''), active, created_at`
	menuColumns = `id, name, COALESCE(description, ''), unit_price, active, created_at`
)

// CatalogQueryHandler lists the clients and menus orders refer to.
type CatalogQueryHandler struct {
	db *gorm.DB
}

func NewCatalogQueryHandler(db *gorm.DB) CatalogQueryHandler {
	return CatalogQueryHandler{db: db}
}

func (h CatalogQueryHandler) HandleGetClient(ctx context.Context, query GetClientQuery) (ClientView, error) {
	if err := query.Validate(); err != nil {
		return ClientView{}, err
	}
	return h.client(ctx, query.clientID)
}

// HandleListClients returns clients sorted by last and first name.
func (h CatalogQueryHandler) HandleListClients(ctx context.Context) ([]ClientView, error) {
	return collect(ctx, h.db, scanClient,
		`SELECT `+clientColumns+` FROM clients ORDER BY last_name, first_name`)
}

func (h CatalogQueryHandler) HandleGetMenu(ctx context.Context, query GetMenuQuery) (MenuView, error) {
	if err := query.Validate(); err != nil {
		return MenuView{}, err
	}
	return h.menu(ctx, query.menuID)
}

func (h CatalogQueryHandler) HandleListMenus(ctx context.Context) ([]MenuView, error) {
	return collect(ctx, h.db, scanMenu, `SELECT `+menuColumns+` FROM menus ORDER BY name`)
}

func (h CatalogQueryHandler) client(ctx context.Context, id kernel.UUID) (ClientView, error) {
	clients, err := collect(ctx, h.db, scanClient,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id.String())
	if err != nil {
		return ClientView{}, err
	}
	if len(clients) == 0 {
		return ClientView{}, errs.NewObjectNotFoundError("clientId", id)
	}
	return clients[0], nil
}

func (h CatalogQueryHandler) menu(ctx context.Context, id kernel.UUID) (MenuView, error) {
	menus, err := collect(ctx, h.db, scanMenu,
		`SELECT `+menuColumns+` FROM menus WHERE id = ?`, id.String())
	if err != nil {
		return MenuView{}, err
	}
	if len(menus) == 0 {
		return MenuView{}, errs.NewObjectNotFoundError("menuId", id)
	}
	return menus[0], nil
}

func scanClient(row rowScanner) (ClientView, error) {
	var id uuid.UUID
	var v ClientView
	if err := row.Scan(
		&id, &v.FirstName, &v.LastName, &v.Phone, &v.Email,
		&v.Address, &v.City, &v.Active, &v.CreatedAt,
	); err != nil {
		return ClientView{}, err
	}

	clientID, err := toUUID(id)
	if err != nil {
		return ClientView{}, err
	}
	v.ID = clientID
	return v, nil
}

func scanMenu(row rowScanner) (MenuView, error) {
	var id uuid.UUID
	var price decimal.Decimal
	var v MenuView
	if err := row.Scan(&id, &v.Name, &v.Description, &price, &v.Active, &v.CreatedAt); err != nil {
		return MenuView{}, err
	}

	menuID, err := toUUID(id)
	if err != nil {
		return MenuView{}, err
	}
	v.ID = menuID
	v.UnitPrice = kernel.NewMoney(price)
	return v, nil
}
