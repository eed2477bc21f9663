package converter

import (
	"encoding/json"

	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/domain/stock"
	sqlc "cellar-shop/internal/infra/sqlc/generated"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/pkg/pgconv"
)

func OrderToInsertParams(o *order.Order) (sqlc.InsertOrderParams, error) {
	var address []byte
	if a := o.ShippingAddress(); a != nil {
		raw, err := json.Marshal(a)
		if err != nil {
			return sqlc.InsertOrderParams{}, errs.Wrap(err, "failed to encode shipping address")
		}
		address = raw
	}
	c := o.Customer()
	amounts := o.Amounts()
	return sqlc.InsertOrderParams{
		ID:                      o.ID(),
		OrderNumber:             o.Number(),
		TrackingCode:            o.TrackingCode(),
		UserID:                  pgconv.UUIDPtrToPgtype(o.UserID()),
		CustomerName:            c.Name,
		CustomerEmail:           c.Email,
		CustomerPhone:           c.Phone,
		ShippingAddress:         address,
		PaymentMethod:           string(o.PaymentMethod()),
		PaymentReference:        pgconv.StringPtrToPgtype(o.PaymentReference()),
		IsTrade:                 o.IsTrade(),
		SubtotalCents:           amounts.SubtotalCents,
		DiscountCents:           amounts.DiscountCents,
		TaxCents:                amounts.TaxCents,
		ShippingFeeCents:        amounts.ShippingFeeCents,
		TotalCents:              amounts.TotalCents,
		Status:                  string(o.Status()),
		ConfirmationEmailStatus: string(o.Confirmation()),
		CreatedAt:               pgconv.TimeToPgtype(o.CreatedAt()),
	}, nil
}

func OrderItemToInsertParams(o *order.Order, it order.Item) sqlc.InsertOrderItemParams {
	return sqlc.InsertOrderItemParams{
		OrderID:        o.ID(),
		Position:       pgconv.IntToInt32(it.Position),
		ProductID:      pgconv.UUIDPtrToPgtype(it.ProductID),
		SizeKey:        it.Size.String(),
		Name:           it.Name,
		Quantity:       pgconv.IntToInt32(it.Quantity),
		UnitPriceCents: it.UnitPriceCents,
	}
}

func HistoryToInsertParams(o *order.Order, h order.HistoryEntry) sqlc.InsertOrderStatusHistoryParams {
	return sqlc.InsertOrderStatusHistoryParams{
		OrderID:   o.ID(),
		Status:    string(h.Status),
		Kind:      string(h.Kind),
		Note:      h.Note,
		CreatedAt: pgconv.TimeToPgtype(h.At),
	}
}

func OrderToShipmentParams(o *order.Order) sqlc.UpdateOrderShipmentParams {
	params := sqlc.UpdateOrderShipmentParams{
		ID:        o.ID(),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	}
	if s := o.Shipment(); s != nil {
		params.Carrier = pgconv.TextFromString(s.Carrier)
		params.CarrierTrackingNumber = pgconv.TextFromString(s.TrackingNumber)
		params.ShipmentID = pgconv.TextFromString(s.ShipmentID)
		params.LabelFormat = pgconv.TextFromString(s.LabelFormat)
		params.LabelData = pgconv.TextFromString(s.LabelData)
	}
	return params
}

// OrderFromRows rebuilds the aggregate from the order row and its children.
func OrderFromRows(row sqlc.Orders, items []sqlc.OrderItems, history []sqlc.OrderStatusHistory) (*order.Order, error) {
	var address *order.Address
	if len(row.ShippingAddress) > 0 && string(row.ShippingAddress) != "null" {
		address = &order.Address{}
		if err := json.Unmarshal(row.ShippingAddress, address); err != nil {
			return nil, errs.Wrap(err, "failed to decode shipping address")
		}
	}

	snap := order.Snapshot{
		ID:           row.ID,
		Number:       row.OrderNumber,
		TrackingCode: row.TrackingCode,
		UserID:       pgconv.UUIDPtrFromPgtype(row.UserID),
		Customer: order.Customer{
			Name:  row.CustomerName,
			Email: row.CustomerEmail,
			Phone: row.CustomerPhone,
		},
		ShippingAddress:  address,
		PaymentMethod:    order.PaymentMethod(row.PaymentMethod),
		PaymentReference: pgconv.StringPtrFromPgtype(row.PaymentReference),
		IsTrade:          row.IsTrade,
		Amounts: order.Amounts{
			SubtotalCents:    row.SubtotalCents,
			DiscountCents:    row.DiscountCents,
			TaxCents:         row.TaxCents,
			ShippingFeeCents: row.ShippingFeeCents,
			TotalCents:       row.TotalCents,
		},
		Status:            order.Status(row.Status),
		Confirmation:      order.ConfirmationStatus(row.ConfirmationEmailStatus),
		ConfirmationError: pgconv.StringFromPgtype(row.ConfirmationEmailError),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if row.CarrierTrackingNumber.Valid {
		snap.Shipment = &order.Shipment{
			Carrier:        pgconv.StringFromPgtype(row.Carrier),
			TrackingNumber: row.CarrierTrackingNumber.String,
			ShipmentID:     pgconv.StringFromPgtype(row.ShipmentID),
			LabelFormat:    pgconv.StringFromPgtype(row.LabelFormat),
			LabelData:      pgconv.StringFromPgtype(row.LabelData),
		}
	}

	snap.Items = make([]order.Item, 0, len(items))
	for _, it := range items {
		snap.Items = append(snap.Items, order.Item{
			Position:       int(it.Position),
			ProductID:      pgconv.UUIDPtrFromPgtype(it.ProductID),
			Size:           stock.SizeKey(it.SizeKey),
			Name:           it.Name,
			Quantity:       int(it.Quantity),
			UnitPriceCents: it.UnitPriceCents,
		})
	}

	snap.History = make([]order.HistoryEntry, 0, len(history))
	for _, h := range history {
		snap.History = append(snap.History, order.HistoryEntry{
			Status: order.Status(h.Status),
			Kind:   order.TransitionKind(h.Kind),
			Note:   h.Note,
			At:     pgconv.TimeFromPgtype(h.CreatedAt),
		})
	}

	return order.Reconstruct(snap), nil
}
