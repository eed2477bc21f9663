package request

import (
	"strings"

	"cellar-shop/internal/domain/order"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutItemRequest struct {
	ProductID *uuid.UUID `json:"productId,omitempty"`
	Size      *string    `json:"size,omitempty"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unitPrice"`
}

type MoneyRequest struct {
	Subtotal    *float64 `json:"subtotal,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	Tax         *float64 `json:"tax,omitempty"`
	ShippingFee *float64 `json:"shippingFee,omitempty"`
	Total       *float64 `json:"total,omitempty"`
}

// CheckoutRequest is validated by the order factory so errors name the
// offending field; only the JSON shape is checked here.
type CheckoutRequest struct {
	Customer         CustomerRequest       `json:"customer"`
	ShippingAddress  *order.Address        `json:"shippingAddress,omitempty"`
	PaymentMethod    string                `json:"paymentMethod"`
	PaymentReference *string               `json:"paymentReference,omitempty"`
	IsTradeCustomer  bool                  `json:"isTradeCustomer"`
	ShippingOverride *float64              `json:"shippingOverride,omitempty"`
	Items            []CheckoutItemRequest `json:"items"`
	Money            MoneyRequest          `json:"money"`
}

func (r CheckoutRequest) ToPlacement() order.PlacementInput {
	items := make([]order.LineInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, order.LineInput{
			ProductID: it.ProductID,
			Size:      it.Size,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return order.PlacementInput{
		Customer: order.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		ShippingAddress:  r.ShippingAddress,
		PaymentMethod:    r.PaymentMethod,
		PaymentReference: r.paymentReference(),
		IsTradeCustomer:  r.IsTradeCustomer,
		ShippingOverride: r.ShippingOverride,
		Items:            items,
		Money: order.MoneyInput{
			Subtotal:    r.Money.Subtotal,
			Discount:    r.Money.Discount,
			Tax:         r.Money.Tax,
			ShippingFee: r.Money.ShippingFee,
			Total:       r.Money.Total,
		},
	}
}

func (r CheckoutRequest) paymentReference() *string {
	if r.PaymentReference == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PaymentReference)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// CarrierWebhookRequest is the carrier's tracking push payload.
type CarrierWebhookRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
	StatusCode     string `json:"statusCode" binding:"required"`
	Description    string `json:"description"`
	Timestamp      string `json:"timestamp"`
}
