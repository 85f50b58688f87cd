package catalog

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// ClientDetails holds the contact data of a client.
type ClientDetails struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	City      string
}

// Client is a person or company that places orders.
type Client struct {
	id        kernel.UUID
	details   ClientDetails
	active    bool
	createdAt time.Time
}

func NewClient(id kernel.UUID, details ClientDetails, now time.Time) (*Client, error) {
	details = trimClient(details)

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if details.FirstName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("firstName"))
	}
	if details.LastName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("lastName"))
	}
	if details.Phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	if details.Email != "" {
		if _, err := mail.ParseAddress(details.Email); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"email", fmt.Errorf("%q is not an e-mail address", details.Email),
			))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Client{id: id, details: details, active: true, createdAt: now}, nil
}

// RestoreClient rebuilds a client loaded from storage.
func RestoreClient(id kernel.UUID, details ClientDetails, active bool, createdAt time.Time) (*Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Client{id: id, details: details, active: active, createdAt: createdAt}, nil
}

func (c *Client) ID() kernel.UUID { return c.id }
func (c *Client) Details() ClientDetails { return c.details }
func (c *Client) Active() bool { return c.active }
func (c *Client) CreatedAt() time.Time { return c.createdAt }

// FullName joins first and last name.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.details.FirstName + " " + c.details.LastName)
}

func trimClient(d ClientDetails) ClientDetails {
	return ClientDetails{
		FirstName: strings.TrimSpace(d.FirstName),
		LastName:  strings.TrimSpace(d.LastName),
		Phone:     strings.TrimSpace(d.Phone),
		Email:     strings.ToLower(strings.TrimSpace(d.Email)),
		Address:   strings.TrimSpace(d.Address),
		City:      strings.TrimSpace(d.City),
	}
}
