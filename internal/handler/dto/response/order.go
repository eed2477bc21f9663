package response

import (
	"time"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	OrderID      string `json:"orderId"`
	TrackingCode string `json:"trackingCode"`
	EmailSent    bool   `json:"emailSent"`
	Replayed     bool   `json:"replayed"`
}

func FromPlaceOrderResult(r *commands.PlaceOrderResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:      r.OrderNumber,
		TrackingCode: r.TrackingCode,
		EmailSent:    r.EmailSent,
		Replayed:     r.Replayed,
	}
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type OrderItemResponse struct {
	ProductID      *uuid.UUID `json:"productId,omitempty"`
	Size           string     `json:"size,omitempty"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	UnitPriceCents Money      `json:"unitPrice"`
	LineTotalCents Money      `json:"lineTotal"`
}

type AmountsResponse struct {
	SubtotalCents    Money `json:"subtotal"`
	DiscountCents    Money `json:"discount"`
	TaxCents         Money `json:"tax"`
	ShippingFeeCents Money `json:"shippingFee"`
	TotalCents       Money `json:"total"`
}

type HistoryResponse struct {
	Status string    `json:"status"`
	Kind   string    `json:"kind"`
	Note   string    `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

type ShipmentResponse struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	LabelFormat    string `json:"labelFormat,omitempty"`
}

// OrderResponse field names mirror queries.OrderView so copier can map them.
type OrderResponse struct {
	OrderNumber             string              `json:"orderId"`
	TrackingCode            string              `json:"trackingCode"`
	Customer                CustomerResponse    `json:"customer"`
	ShippingAddress         *order.Address      `json:"shippingAddress,omitempty"`
	PaymentMethod           string              `json:"paymentMethod"`
	PaymentReference        *string             `json:"paymentReference,omitempty"`
	IsTrade                 bool                `json:"isTradeCustomer"`
	Status                  string              `json:"status"`
	Items                   []OrderItemResponse `json:"items"`
	Amounts                 AmountsResponse     `json:"amounts"`
	History                 []HistoryResponse   `json:"statusHistory"`
	Shipment                *ShipmentResponse   `json:"shipment,omitempty"`
	ConfirmationEmailStatus string              `json:"confirmationEmailStatus"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) (OrderResponse, error) {
	var res OrderResponse
	if err := copier.Copy(&res, v); err != nil {
		return OrderResponse{}, err
	}
	if res.Items == nil {
		res.Items = []OrderItemResponse{}
	}
	if res.History == nil {
		res.History = []HistoryResponse{}
	}
	return res, nil
}

type TrackingSummaryResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromTrackingResult returns the full order for its owner and the summary
// otherwise.
func FromTrackingResult(r *queries.TrackingResult) (any, error) {
	if r.Full != nil {
		return FromOrderView(r.Full)
	}
	return TrackingSummaryResponse{
		OrderID:   r.Summary.OrderNumber,
		Status:    string(r.Summary.Status),
		UpdatedAt: r.Summary.UpdatedAt,
	}, nil
}

type OrderSummaryResponse struct {
	OrderNumber  string    `json:"orderId"`
	TrackingCode string    `json:"trackingCode"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	TotalCents   Money     `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OrderListResponse struct {
	Items  []OrderSummaryResponse `json:"items"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

func FromOrderPage(page *queries.OrderPage) (OrderListResponse, error) {
	res := OrderListResponse{
		Items:  []OrderSummaryResponse{},
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if err := copier.Copy(&res.Items, page.Items); err != nil {
		return OrderListResponse{}, err
	}
	return res, nil
}

type StatusChangeResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Kind      string    `json:"kind"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromStatusChange(r *commands.StatusChangeResult) StatusChangeResponse {
	return StatusChangeResponse{
		OrderID:   r.OrderNumber,
		Status:    string(r.Status),
		Kind:      string(r.Kind),
		UpdatedAt: r.UpdatedAt,
	}
}

type ShipmentCreatedResponse struct {
	OrderID        string `json:"orderId"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	ShipmentID     string `json:"shipmentId"`
	LabelFormat    string `json:"labelFormat,omitempty"`
	LabelData      string `json:"labelData,omitempty"`
	Status         string `json:"status"`
}

func FromShipment(r *commands.CreateShipmentResult) ShipmentCreatedResponse {
	return ShipmentCreatedResponse{
		OrderID:        r.OrderNumber,
		Carrier:        r.Carrier,
		TrackingNumber: r.TrackingNumber,
		ShipmentID:     r.ShipmentID,
		LabelFormat:    r.LabelFormat,
		LabelData:      r.LabelData,
		Status:         string(r.Status),
	}
}
