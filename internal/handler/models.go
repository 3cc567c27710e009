package handler

import (
	"github.com/restaurant-hunger/email-service/internal/entities"
)

const defaultDeliveryEstimate = "40-50"

// SizeRequest chosen size of an item
type SizeRequest struct {
	Name string `json:"name" validate:"required"`
}

// ExtraRequest one extra on an item
type ExtraRequest struct {
	Name string `json:"name" validate:"required"`
}

// ItemRequest one ordered product
type ItemRequest struct {
	Name     string      `json:"name" validate:"required"`
	Quantity int         `json:"quantity" validate:"required,gt=0"`
	Size     SizeRequest `json:"size" validate:"required"`
	// Price per unit at the chosen size.
	TotalPrice float64        `json:"totalPrice" validate:"gte=0"`
	Extras     []ExtraRequest `json:"extras,omitempty" validate:"dive"`
}

// DiscountRequest one applied promotion
type DiscountRequest struct {
	Name       string  `json:"name" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

// OrderRequest the new-order payload
type OrderRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	OrderNumber     string `json:"order_number,omitempty"`

	Items    []ItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal float64       `json:"subtotal"`
	// Pointer to tell "absent" apart from an explicit zero fee.
	DeliveryFee    *float64          `json:"delivery_fee,omitempty"`
	Discounts      []DiscountRequest `json:"discounts,omitempty" validate:"dive"`
	DiscountAmount float64           `json:"discount_amount,omitempty"`
	TotalAmount    float64           `json:"total_amount"`

	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Notes         string `json:"notes,omitempty"`

	EstimatedDeliveryTime string `json:"estimated_delivery_time,omitempty"`
	OrderType             string `json:"order_type,omitempty" validate:"omitempty,oneof=delivery pickup"`
}

// CancellationRequest the cancellation payload
type CancellationRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	OrderNumber   string `json:"order_number,omitempty"`

	Items       []ItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal    float64       `json:"subtotal"`
	DeliveryFee float64       `json:"delivery_fee,omitempty"`
	TotalAmount float64       `json:"total_amount"`
	Notes       string        `json:"notes,omitempty"`
}

func ItemJSONToEntity(i ItemRequest) entities.Item {
	extras := make([]string, 0, len(i.Extras))
	for _, e := range i.Extras {
		extras = append(extras, e.Name)
	}
	return entities.Item{
		Name:      i.Name,
		Quantity:  i.Quantity,
		Size:      i.Size.Name,
		UnitPrice: i.TotalPrice,
		Extras:    extras,
	}
}

func itemsJSONToEntity(items []ItemRequest) []entities.Item {
	out := make([]entities.Item, 0, len(items))
	for _, it := range items {
		out = append(out, ItemJSONToEntity(it))
	}
	return out
}

// OrderJSONToEntity converts the payload and applies the payload-level
// defaults (delivery estimate, order type).
func OrderJSONToEntity(o OrderRequest) entities.Order {
	discounts := make([]entities.Discount, 0, len(o.Discounts))
	for _, d := range o.Discounts {
		discounts = append(discounts, entities.Discount{
			Name:       d.Name,
			Percentage: d.Percentage,
			Amount:     d.Amount,
		})
	}

	eta := o.EstimatedDeliveryTime
	if eta == "" {
		eta = defaultDeliveryEstimate
	}
	orderType := o.OrderType
	if orderType == "" {
		orderType = entities.OrderTypeDelivery
	}

	return entities.Order{
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		OrderNumber:     o.OrderNumber,

		Items:          itemsJSONToEntity(o.Items),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Discounts:      discounts,
		DiscountAmount: o.DiscountAmount,
		TotalAmount:    o.TotalAmount,

		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Notes:         o.Notes,

		EstimatedDeliveryTime: eta,
		OrderType:             orderType,
	}
}

func CancellationJSONToEntity(c CancellationRequest) entities.Cancellation {
	return entities.Cancellation{
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		OrderNumber:   c.OrderNumber,

		Items:       itemsJSONToEntity(c.Items),
		Subtotal:    c.Subtotal,
		DeliveryFee: c.DeliveryFee,
		TotalAmount: c.TotalAmount,
		Notes:       c.Notes,
	}
}
