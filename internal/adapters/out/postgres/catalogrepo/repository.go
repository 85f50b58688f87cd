package catalogrepo

import (
	"context"
	"errors"

	"catering/internal/adapters/out/postgres/pgerr"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
)

var constraintMessages = map[string]string{
	"idx_clients_email": "a client with this e-mail already exists",
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a catalog repository bound to db.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddClient inserts a client. A duplicate e-mail is a ConflictError.
func (r *GormCatalogRepository) AddClient(ctx context.Context, client *catalog.Client) error {
	dto := clientFromDomain(client)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, constraintMessages)
	}
	return nil
}

// AddMenu inserts a menu.
func (r *GormCatalogRepository) AddMenu(ctx context.Context, menu *catalog.Menu) error {
	dto := menuFromDomain(menu)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err, constraintMessages)
	}
	return nil
}

// GetClient retrieves a client by ID or returns an ObjectNotFoundError.
func (r *GormCatalogRepository) GetClient(ctx context.Context, id kernel.UUID) (*catalog.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clientId", id.String())
		}
		return nil, err
	}
	return ClientToDomain(dto)
}

// GetMenu retrieves a menu by ID or returns an ObjectNotFoundError.
func (r *GormCatalogRepository) GetMenu(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuId", id.String())
		}
		return nil, err
	}
	return MenuToDomain(dto)
}
