package email_test

import (
	"testing"
	"time"

	"github.com/restaurant-hunger/email-service/internal/email"
	"github.com/restaurant-hunger/email-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

var orderedAt = time.Date(2025, time.March, 7, 18, 30, 0, 0, time.UTC)

func testOrder() entities.Order {
	return entities.Order{
		CustomerName:    "Max Mustermann",
		CustomerEmail:   "max@example.com",
		CustomerPhone:   "+49 170 1234567",
		CustomerAddress: "Hauptstraße 1, 10115 Berlin",
		OrderNumber:     "HP-1042",
		Items: []entities.Item{
			{Name: "Margherita", Quantity: 2, Size: "Large", UnitPrice: 10.00},
		},
		Subtotal:              20.00,
		TotalAmount:           23.50,
		PaymentMethod:         entities.PaymentMethodCash,
		PaymentStatus:         "pending",
		EstimatedDeliveryTime: "40-50",
		OrderType:             entities.OrderTypeDelivery,
	}
}

func TestCustomerOrder_DeliveryFeeLine(t *testing.T) {
	o := testOrder()

	t.Run("positive fee renders the fee line", func(t *testing.T) {
		html := email.CustomerOrder(o, entities.BuildSummary(o))
		assert.Contains(t, html, "Liefergebühr:</strong> €3.50")
		assert.NotContains(t, html, "Kostenlose Lieferung")
	})

	t.Run("zero fee renders the free delivery indicator", func(t *testing.T) {
		fee := 0.0
		o := testOrder()
		o.DeliveryFee = &fee
		html := email.CustomerOrder(o, entities.BuildSummary(o))
		assert.Contains(t, html, "Kostenlose Lieferung")
		assert.NotContains(t, html, "Liefergebühr")
	})
}

func TestCustomerOrder_Discounts(t *testing.T) {
	t.Run("single discount renders only its own line", func(t *testing.T) {
		o := testOrder()
		o.Discounts = []entities.Discount{{Name: "Stammkunde", Percentage: 10, Amount: 2.00}}
		o.DiscountAmount = 2.00

		html := email.CustomerOrder(o, entities.BuildSummary(o))
		assert.Contains(t, html, "🎁 Stammkunde (-10.00%): -€2.00")
		assert.NotContains(t, html, "Gesamt Rabatt")
	})

	t.Run("multiple discounts add the aggregate line from discount_amount", func(t *testing.T) {
		o := testOrder()
		o.Discounts = []entities.Discount{
			{Name: "Stammkunde", Percentage: 10, Amount: 2.00},
			{Name: "Happy Hour", Percentage: 5, Amount: 1.00},
		}
		// deliberately not the sum of the individual amounts
		o.DiscountAmount = 3.25

		html := email.CustomerOrder(o, entities.BuildSummary(o))
		assert.Contains(t, html, "🎁 Stammkunde (-10.00%): -€2.00")
		assert.Contains(t, html, "🎁 Happy Hour (-5.00%): -€1.00")
		assert.Contains(t, html, "Gesamt Rabatt: -€3.25")
	})
}

func TestCustomerOrder_Content(t *testing.T) {
	o := testOrder()
	o.Notes = "Bitte klingeln"
	html := email.CustomerOrder(o, entities.BuildSummary(o))

	assert.Contains(t, html, "Hallo Max Mustermann,")
	assert.Contains(t, html, "Bestellnummer:</strong> HP-1042")
	assert.Contains(t, html, "2x Margherita (Large) - €20.00")
	assert.Contains(t, html, "Gesamtbetrag: €23.50")
	assert.Contains(t, html, "Hauptstraße 1, 10115 Berlin")
	assert.Contains(t, html, "Barzahlung bei Lieferung")
	assert.Contains(t, html, "Anmerkungen:")
	assert.Contains(t, html, "Bitte klingeln")
	assert.Contains(t, html, "Ca. 40-50 Minuten")
}

func TestCustomerOrder_OmitsOptionalBlocks(t *testing.T) {
	o := testOrder()
	o.OrderNumber = ""
	o.PaymentMethod = "paypal"
	html := email.CustomerOrder(o, entities.BuildSummary(o))

	assert.Contains(t, html, "Bestellnummer:</strong> N/A")
	assert.Contains(t, html, "PayPal (Bereits bezahlt)")
	assert.NotContains(t, html, "Anmerkungen")
}

func TestCustomerOrder_EscapesUserInput(t *testing.T) {
	o := testOrder()
	o.CustomerName = `<script>alert("x")</script>`
	o.Notes = "a & b <i>"
	html := email.CustomerOrder(o, entities.BuildSummary(o))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b &lt;i&gt;")
}

func TestOwnerOrder_DeliveryVariant(t *testing.T) {
	o := testOrder()
	o.PaymentStatus = entities.PaymentStatusPaid
	html := email.OwnerOrder(o, entities.BuildSummary(o), orderedAt)

	assert.Contains(t, html, "NEUE BESTELLUNG")
	assert.Contains(t, html, "Bestellzeit: 7.3.2025, 18:30:00")
	assert.Contains(t, html, "max@example.com")
	assert.Contains(t, html, "Lieferadresse")
	assert.Contains(t, html, "GESAMTBETRAG: €23.50")
	assert.Contains(t, html, "BEZAHLT ✓")
	assert.Contains(t, html, "Bitte bereiten Sie die Bestellung vor und liefern Sie sie aus.")
	assert.Contains(t, html, "Lieferzeit: 40-50")
	assert.NotContains(t, html, "Abholung")
}

func TestOwnerOrder_PickupVariant(t *testing.T) {
	o := testOrder()
	o.OrderType = entities.OrderTypePickup
	html := email.OwnerOrder(o, entities.BuildSummary(o), orderedAt)

	assert.Contains(t, html, "Abholung im Restaurant")
	assert.NotContains(t, html, "Liefergebühr")
	assert.NotContains(t, html, "Lieferadresse")
	assert.Contains(t, html, "Barzahlung bei Abholung")
	assert.Contains(t, html, "Bitte bereiten Sie die Bestellung zur Abholung vor.")
	assert.Contains(t, html, "Abholzeit: 40-50")
	assert.NotContains(t, html, "Lieferzeit")
}

func TestOwnerOrder_PendingPaymentBadge(t *testing.T) {
	o := testOrder()
	o.PaymentStatus = "anything-else"
	html := email.OwnerOrder(o, entities.BuildSummary(o), orderedAt)

	assert.Contains(t, html, "AUSSTEHEND")
	assert.NotContains(t, html, "BEZAHLT")
}

func TestSubjects(t *testing.T) {
	o := testOrder()
	assert.Equal(t, "Ihre Bestellung bei Restaurant Hot Pizza - Bestellnummer HP-1042", email.CustomerOrderSubject(o))
	assert.Equal(t, "🔔 Neue Bestellung #HP-1042 - 7.3.2025, 18:30:00", email.OwnerOrderSubject(o, orderedAt))

	o.OrderNumber = ""
	assert.Equal(t, "Ihre Bestellung bei Restaurant Hot Pizza - Bestellnummer N/A", email.CustomerOrderSubject(o))
}

func TestCancellation(t *testing.T) {
	c := entities.Cancellation{
		CustomerName: "Max Mustermann",
		OrderNumber:  "HP-1042",
		Items: []entities.Item{
			{Name: "Margherita", Quantity: 1, Size: "Small", UnitPrice: 8.50},
		},
		Subtotal:    8.50,
		DeliveryFee: 2.00,
		TotalAmount: 10.50,
	}

	html := email.Cancellation(c, "+49 30 12345678")
	assert.Contains(t, html, "Bestellung wurde abgelehnt")
	assert.Contains(t, html, "1x Margherita (Small) - €8.50")
	assert.Contains(t, html, "Liefergebühr:</strong> €2.00")
	assert.Contains(t, html, "Gesamtbetrag: €10.50")
	assert.Contains(t, html, `tel:+49 30 12345678`)

	t.Run("zero fee omits the fee line", func(t *testing.T) {
		c := c
		c.DeliveryFee = 0
		html := email.Cancellation(c, "+49 30 12345678")
		assert.NotContains(t, html, "Liefergebühr")
	})

	t.Run("subject", func(t *testing.T) {
		assert.Equal(t, "Bestellung abgelehnt - Restaurant Hot Pizza - Bestellnummer HP-1042", email.CancellationSubject(c))
	})
}
