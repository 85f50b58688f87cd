package http

import (
	"catering/internal/adapters/in/http/api"
	"catering/internal/core/application/usecases/queries"
)

func toAPIOrder(v queries.OrderView) api.Order {
	return api.Order{
		Id:             toAPIID(v.ID),
		ClientId:       toAPIID(v.ClientID),
		MenuId:         toAPIID(v.MenuID),
		EventDate:      toAPIDate(v.EventDate),
		EventTime:      v.EventTime.String(),
		EventDateTime:  v.EventDateTime,
		Quantity:       v.Quantity,
		Guests:         v.Guests,
		EventAddress:   v.Address,
		ContactPhone:   v.Phone,
		Notes:          v.Notes,
		Status:         v.Status.String(),
		Total:          v.Total.String(),
		DaysUntilEvent: v.DaysUntilEvent,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func toAPIOrderDetails(v queries.OrderDetails) api.OrderDetails {
	details := api.OrderDetails{Order: toAPIOrder(v.OrderView)}
	if v.Client != nil {
		client := toAPIClient(*v.Client)
		details.Client = &client
	}
	if v.Menu != nil {
		menu := toAPIMenu(*v.Menu)
		details.Menu = &menu
	}
	return details
}

func toAPIOrders(views []queries.OrderView) []api.Order {
	return mapAll(views, toAPIOrder)
}

func toAPIPayment(v queries.PaymentView) api.Payment {
	return api.Payment{
		Id:                toAPIID(v.ID),
		OrderId:           toAPIID(v.OrderID),
		Amount:            v.Amount.String(),
		Method:            v.Method.String(),
		MethodDescription: v.MethodDescription,
		Status:            v.Status.String(),
		Reference:         v.Reference,
		PaidAt:            v.PaidAt,
		UpdatedAt:         v.UpdatedAt,
		IsCompleted:       v.IsCompleted,
		IsPending:         v.IsPending,
		DaysSincePaid:     v.DaysSincePaid,
	}
}

func toAPIPayments(views []queries.PaymentView) []api.Payment {
	return mapAll(views, toAPIPayment)
}

func toAPIPaymentSummary(s queries.PaymentSummary) api.PaymentSummary {
	return api.PaymentSummary{
		OrderId:          toAPIID(s.OrderID),
		OrderTotal:       s.OrderTotal.String(),
		PaidTotal:        s.PaidTotal.String(),
		RemainingBalance: s.RemainingBalance.String(),
		PercentPaid:      s.PercentPaid,
		PaymentCount:     s.PaymentCount,
		Payments:         toAPIPayments(s.Payments),
	}
}

func toAPIDelivery(v queries.DeliveryView) api.Delivery {
	d := api.Delivery{
		Id:                       toAPIID(v.ID),
		OrderId:                  toAPIID(v.OrderID),
		DeliveryDate:             toAPIDate(v.Date),
		StartTime:                v.StartTime.String(),
		Status:                   v.Status.String(),
		Vehicle:                  v.Vehicle,
		Driver:                   v.Driver,
		Notes:                    v.Notes,
		ConfirmedAt:              v.ConfirmedAt,
		EstimatedDurationMinutes: v.EstimatedDurationMinutes,
		IsCompleted:              v.IsCompleted,
		DaysUntilDelivery:        v.DaysUntilDelivery,
		CreatedAt:                v.CreatedAt,
		UpdatedAt:                v.UpdatedAt,
	}
	if v.EndTime != nil {
		end := v.EndTime.String()
		d.EndTime = &end
	}
	return d
}

func toAPIDeliveries(views []queries.DeliveryView) []api.Delivery {
	return mapAll(views, toAPIDelivery)
}

func toAPIClient(v queries.ClientView) api.Client {
	return api.Client{
		Id:        toAPIID(v.ID),
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Phone:     v.Phone,
		Email:     v.Email,
		Address:   v.Address,
		City:      v.City,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
	}
}

func toAPIMenu(v queries.MenuView) api.Menu {
	return api.Menu{
		Id:          toAPIID(v.ID),
		Name:        v.Name,
		Description: v.Description,
		UnitPrice:   v.UnitPrice.String(),
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

// mapAll never returns nil so empty listings encode as [].
func mapAll[V, T any](views []V, convert func(V) T) []T {
	out := make([]T, len(views))
	for i, v := range views {
		out[i] = convert(v)
	}
	return out
}
