package commands

import (
	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

func requireID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
