// Package catalogrepo persists clients and menus with gorm.
package catalogrepo

import (
	"time"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientDTO is the row of the clients table. A NULL e-mail is allowed any
// number of times; a present one is unique.
type ClientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex:idx_clients_email"`
	Address   string    `gorm:"type:text"`
	City      string    `gorm:"type:varchar(100)"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name to "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// MenuDTO is the row of the menus table.
type MenuDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(150);not null"`
	Description string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_menus_unit_price,unit_price > 0"`
	Active      bool            `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName pins the table name to "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

func clientFromDomain(c *catalog.Client) ClientDTO {
	d := c.Details()
	var email *string
	if d.Email != "" {
		email = &d.Email
	}
	return ClientDTO{
		ID:        c.ID().Bytes(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     email,
		Address:   d.Address,
		City:      d.City,
		Active:    c.Active(),
		CreatedAt: c.CreatedAt(),
	}
}

// ClientToDomain is shared with the read side.
func ClientToDomain(dto ClientDTO) (*catalog.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	details := catalog.ClientDetails{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Address:   dto.Address,
		City:      dto.City,
	}
	if dto.Email != nil {
		details.Email = *dto.Email
	}
	return catalog.RestoreClient(id, details, dto.Active, dto.CreatedAt)
}

func menuFromDomain(m *catalog.Menu) MenuDTO {
	return MenuDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		Description: m.Description(),
		UnitPrice:   m.UnitPrice().Decimal(),
		Active:      m.Active(),
		CreatedAt:   m.CreatedAt(),
	}
}

// MenuToDomain is shared with the read side.
func MenuToDomain(dto MenuDTO) (*catalog.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreMenu(id, dto.Name, dto.Description, kernel.NewMoney(dto.UnitPrice), dto.Active, dto.CreatedAt)
}
