package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Menu is a priced catering offer. Orders are quoted in menu units.
type Menu struct {
	id          kernel.UUID
	name        string
	description string
	unitPrice   kernel.Money
	active      bool
	createdAt   time.Time
}

func NewMenu(id kernel.UUID, name, description string, unitPrice kernel.Money, now time.Time) (*Menu, error) {
	name = strings.TrimSpace(name)

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if !unitPrice.IsPositive() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is not greater than 0", unitPrice),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Menu{
		id:          id,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		active:      true,
		createdAt:   now,
	}, nil
}

// RestoreMenu rebuilds a menu loaded from storage.
func RestoreMenu(
	id kernel.UUID, name, description string, unitPrice kernel.Money, active bool, createdAt time.Time,
) (*Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Menu{
		id:          id,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		active:      active,
		createdAt:   createdAt,
	}, nil
}

func (m *Menu) ID() kernel.UUID { return m.id }
func (m *Menu) Name() string { return m.name }
func (m *Menu) Description() string { return m.description }
func (m *Menu) UnitPrice() kernel.Money { return m.unitPrice }
func (m *Menu) Active() bool { return m.active }
func (m *Menu) CreatedAt() time.Time { return m.createdAt }
