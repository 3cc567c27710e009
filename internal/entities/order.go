package entities

const (
	PaymentMethodCash = "cash"
	PaymentStatusPaid = "paid"

	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

type Item struct {
	Name     string
	Quantity int
	Size     string
	// Price per unit at the chosen size including extras.
	UnitPrice float64
	Extras    []string
}

type Discount struct {
	Name       string
	Percentage float64
	Amount     float64
}

type Order struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	OrderNumber     string

	Items    []Item
	Subtotal float64
	// nil when the caller never sent an explicit fee, see BuildSummary.
	DeliveryFee    *float64
	Discounts      []Discount
	DiscountAmount float64
	TotalAmount    float64

	PaymentMethod string
	PaymentStatus string
	Notes         string

	EstimatedDeliveryTime string
	OrderType             string
}

// Cancellation carries the subset of order data rendered into the
// rejection email. Unlike Order there is no fee fallback: the fee line
// is shown only when the caller sent a positive fee.
type Cancellation struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	OrderNumber   string

	Items       []Item
	Subtotal    float64
	DeliveryFee float64
	TotalAmount float64
	Notes       string
}
