package csvimport

import (
	"fmt"
	"time"

	"megaskyshop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const courierDetailsPrefix = "courier.details."

// OrderRow is a decoded order export row.
type OrderRow struct {
	Line            int
	Name            string `validate:"required"`
	Email           *string
	ShippingAddress string
	Mobile          string
	Total           decimal.Decimal
	TotalProvided   bool
	Status          entity.OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemRow `validate:"dive"`
	Courier         *CourierRow
}

// OrderItemRow is one populated items[i] slot.
type OrderItemRow struct {
	Slot     int
	SourceID string
	Name     string `validate:"required"`
	Quantity int    `validate:"gte=1"`
	Price    decimal.Decimal
	Image    string
}

// CourierRow holds the courier.* columns of an order row.
type CourierRow struct {
	TrackingID *string
	PartnerID  *string
	Status     entity.OrderStatus
	Details    map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemsTotal returns the sum of price × quantity over the items.
func (r *OrderRow) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

// DecodeOrder decodes an order record. An item slot is kept only when it
// has a name, a quantity of at least one and a parseable price; any other
// slot is skipped without failing the row. The courier block is kept only
// when a tracking id, partner or status is present.
func (d *Decoder) DecodeOrder(rec Record) (*OrderRow, error) {
	rawTotal := rec.Get("total")

	row := &OrderRow{
		Line:            rec.Line,
		Name:            rec.Get("name"),
		Email:           ToOptionalString(rec.Get("email")),
		ShippingAddress: rec.Get("shippingAddress"),
		Mobile:          rec.Get("mobile"),
		Total:           ToDecimal(rawTotal, decimal.Zero),
		TotalProvided:   IsDecimal(rawTotal),
		Status:          entity.NormalizeStatus(rec.Get("status")),
		CreatedAt:       d.timestamp(rec.Get("createdAt")),
		UpdatedAt:       d.timestamp(rec.Get("updatedAt")),
	}

	for slot := range d.opts.MaxOrderItems {
		if item, ok := d.decodeItem(rec, slot); ok {
			row.Items = append(row.Items, item)
		}
	}

	row.Courier = d.decodeCourier(rec)

	if err := d.check(rec.Line, row); err != nil {
		return nil, err
	}

	return row, nil
}

func (d *Decoder) decodeItem(rec Record, slot int) (OrderItemRow, bool) {
	prefix := fmt.Sprintf("items[%d].", slot)

	name := rec.Get(prefix + "name")
	quantity := ToInt(rec.Get(prefix+"quantity"), 0)
	rawPrice := rec.Get(prefix + "price")
	if name == "" || quantity < 1 || !IsDecimal(rawPrice) {
		return OrderItemRow{}, false
	}

	return OrderItemRow{
		Slot:     slot,
		SourceID: rec.Get(prefix + "id"),
		Name:     name,
		Quantity: quantity,
		Price:    ToDecimal(rawPrice, decimal.Zero),
		Image:    d.image(rec.Get(prefix + "image")),
	}, true
}

func (d *Decoder) decodeCourier(rec Record) *CourierRow {
	trackingID := ToOptionalString(rec.Get("courier.trackingId"))
	partnerID := ToOptionalString(rec.Get("courier.partnerId"))
	rawStatus := rec.Get("courier.status")
	if trackingID == nil && partnerID == nil && rawStatus == "" {
		return nil
	}

	details := make(map[string]any)
	for _, field := range rec.WithPrefix(courierDetailsPrefix) {
		if field.Value != "" && field.Name != "" {
			details[field.Name] = field.Value
		}
	}

	return &CourierRow{
		TrackingID: trackingID,
		PartnerID:  partnerID,
		Status:     entity.NormalizeStatus(rawStatus),
		Details:    details,
		CreatedAt:  d.timestamp(rec.Get("courier.createdAt")),
		UpdatedAt:  d.timestamp(rec.Get("courier.updatedAt")),
	}
}
