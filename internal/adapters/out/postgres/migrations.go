package postgres

import (
	"fmt"

	"catering/internal/adapters/out/postgres/catalogrepo"
	"catering/internal/adapters/out/postgres/deliveryrepo"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	table    string
	name     string
	column   string
	refTable string
}

// DTOs have no association fields, so gorm does not derive these.
var foreignKeys = []foreignKey{
	{orderrepo.OrderDTO{}.TableName(), "fk_orders_client", "client_id", "clients"},
	{orderrepo.OrderDTO{}.TableName(), "fk_orders_menu", "menu_id", "menus"},
	{paymentrepo.PaymentDTO{}.TableName(), "fk_payments_order", "order_id", "orders"},
	{deliveryrepo.DeliveryDTO{}.TableName(), "fk_deliveries_order", "order_id", "orders"},
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalogrepo.ClientDTO{},
		&catalogrepo.MenuDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	migrator := db.Migrator()
	for _, fk := range foreignKeys {
		if migrator.HasConstraint(fk.table, fk.name) {
			continue
		}
		ddl := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id)",
			fk.table, fk.name, fk.column, fk.refTable,
		)
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
