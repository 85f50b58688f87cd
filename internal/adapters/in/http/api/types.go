package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StatusChange struct {
	Status string `json:"status"`
}

// Counts maps an enumerated value to the number of records holding it.
type Counts map[string]int64

type NewOrder struct {
	ClientId     openapi_types.UUID `json:"clientId"`
	MenuId       openapi_types.UUID `json:"menuId"`
	EventDate    openapi_types.Date `json:"eventDate"`
	EventTime    string             `json:"eventTime"`
	Quantity     int                `json:"quantity"`
	Guests       int                `json:"guests"`
	EventAddress string             `json:"eventAddress"`
	ContactPhone *string            `json:"contactPhone,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	Status       *string            `json:"status,omitempty"`
}

type OrderPatch struct {
	ClientId     *openapi_types.UUID `json:"clientId,omitempty"`
	EventDate    *openapi_types.Date `json:"eventDate,omitempty"`
	EventTime    *string             `json:"eventTime,omitempty"`
	Quantity     *int                `json:"quantity,omitempty"`
	Guests       *int                `json:"guests,omitempty"`
	EventAddress *string             `json:"eventAddress,omitempty"`
	ContactPhone *string             `json:"contactPhone,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
}

type Order struct {
	Id             openapi_types.UUID `json:"id"`
	ClientId       openapi_types.UUID `json:"clientId"`
	MenuId         openapi_types.UUID `json:"menuId"`
	EventDate      openapi_types.Date `json:"eventDate"`
	EventTime      string             `json:"eventTime"`
	EventDateTime  time.Time          `json:"eventDateTime"`
	Quantity       int                `json:"quantity"`
	Guests         int                `json:"guests"`
	EventAddress   string             `json:"eventAddress"`
	ContactPhone   string             `json:"contactPhone,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Status         string             `json:"status"`
	Total          string             `json:"total"`
	DaysUntilEvent int                `json:"daysUntilEvent"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type OrderDetails struct {
	Order

	Client *Client `json:"client,omitempty"`
	Menu   *Menu   `json:"menu,omitempty"`
}

type OrderStats struct {
	TotalOrders  int64  `json:"totalOrders"`
	OrdersToday  int64  `json:"ordersToday"`
	TotalRevenue string `json:"totalRevenue"`
	ByStatus     Counts `json:"byStatus"`
}

type NewPayment struct {
	OrderId   openapi_types.UUID `json:"orderId"`
	Amount    decimal.Decimal    `json:"amount"`
	Method    string             `json:"method"`
	Status    *string            `json:"status,omitempty"`
	Reference *string            `json:"reference,omitempty"`
}

type PaymentPatch struct {
	OrderId   *openapi_types.UUID `json:"orderId,omitempty"`
	Amount    *decimal.Decimal    `json:"amount,omitempty"`
	Method    *string             `json:"method,omitempty"`
	Reference *string             `json:"reference,omitempty"`
}

type Payment struct {
	Id                openapi_types.UUID `json:"id"`
	OrderId           openapi_types.UUID `json:"orderId"`
	Amount            string             `json:"amount"`
	Method            string             `json:"method"`
	MethodDescription string             `json:"methodDescription"`
	Status            string             `json:"status"`
	Reference         string             `json:"reference,omitempty"`
	PaidAt            time.Time          `json:"paidAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	IsCompleted       bool               `json:"isCompleted"`
	IsPending         bool               `json:"isPending"`
	DaysSincePaid     int                `json:"daysSincePaid"`
}

type PaymentSummary struct {
	OrderId          openapi_types.UUID `json:"orderId"`
	OrderTotal       string             `json:"orderTotal"`
	PaidTotal        string             `json:"paidTotal"`
	RemainingBalance string             `json:"remainingBalance"`
	PercentPaid      int                `json:"percentPaid"`
	PaymentCount     int                `json:"paymentCount"`
	Payments         []Payment          `json:"payments"`
}

type PaymentStats struct {
	TotalPayments int64  `json:"totalPayments"`
	PaymentsToday int64  `json:"paymentsToday"`
	TotalRevenue  string `json:"totalRevenue"`
	RevenueToday  string `json:"revenueToday"`
	ByStatus      Counts `json:"byStatus"`
	ByMethod      Counts `json:"byMethod"`
}

type NewDelivery struct {
	OrderId      openapi_types.UUID `json:"orderId"`
	DeliveryDate openapi_types.Date `json:"deliveryDate"`
	StartTime    string             `json:"startTime"`
	EndTime      *string            `json:"endTime,omitempty"`
	Vehicle      *string            `json:"vehicle,omitempty"`
	Driver       *string            `json:"driver,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	Status       *string            `json:"status,omitempty"`
}

type DeliveryPatch struct {
	OrderId      *openapi_types.UUID `json:"orderId,omitempty"`
	DeliveryDate *openapi_types.Date `json:"deliveryDate,omitempty"`
	StartTime    *string             `json:"startTime,omitempty"`
	EndTime      *string             `json:"endTime,omitempty"`
	Vehicle      *string             `json:"vehicle,omitempty"`
	Driver       *string             `json:"driver,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
}

type Delivery struct {
	Id                       openapi_types.UUID `json:"id"`
	OrderId                  openapi_types.UUID `json:"orderId"`
	DeliveryDate             openapi_types.Date `json:"deliveryDate"`
	StartTime                string             `json:"startTime"`
	EndTime                  *string            `json:"endTime,omitempty"`
	Status                   string             `json:"status"`
	Vehicle                  string             `json:"vehicle,omitempty"`
	Driver                   string             `json:"driver,omitempty"`
	Notes                    string             `json:"notes,omitempty"`
	ConfirmedAt              *time.Time         `json:"confirmedAt,omitempty"`
	EstimatedDurationMinutes *int               `json:"estimatedDurationMinutes,omitempty"`
	IsCompleted              bool               `json:"isCompleted"`
	DaysUntilDelivery        int                `json:"daysUntilDelivery"`
	CreatedAt                time.Time          `json:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt"`
}

type DeliveryStats struct {
	TotalDeliveries       int64  `json:"totalDeliveries"`
	DeliveriesToday       int64  `json:"deliveriesToday"`
	CompletedCount        int64  `json:"completedCount"`
	CompletionRatePercent int    `json:"completionRatePercent"`
	ByStatus              Counts `json:"byStatus"`
}

type NewClient struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
}

type Client struct {
	Id        openapi_types.UUID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Phone     string             `json:"phone"`
	Email     string             `json:"email,omitempty"`
	Address   string             `json:"address,omitempty"`
	City      string             `json:"city,omitempty"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"createdAt"`
}

type NewMenu struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type Menu struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	UnitPrice   string             `json:"unitPrice"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type ListOrdersParams struct {
	Status   *string             `form:"status,omitempty" json:"status,omitempty"`
	ClientId *openapi_types.UUID `form:"clientId,omitempty" json:"clientId,omitempty"`
}

type ListPaymentsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Method *string `form:"method,omitempty" json:"method,omitempty"`
}

type ListDeliveriesParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// DateRangeParams are the inclusive bounds of the date-range listings.
type DateRangeParams struct {
	From openapi_types.Date `form:"from" json:"from"`
	To   openapi_types.Date `form:"to" json:"to"`
}
