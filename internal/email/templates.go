// Package email builds the outgoing HTML documents. Every builder is a
// pure function from order data to a string: inlined CSS, no external
// resources, German presentation text. User-supplied values are escaped
// before interpolation.
package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/restaurant-hunger/email-service/internal/entities"
)

const restaurantName = "Restaurant Hot Pizza"

func esc(s string) string { return html.EscapeString(s) }

func displayOrderNumber(n string) string {
	if n == "" {
		return "N/A"
	}
	return esc(n)
}

func paymentMethodText(method string, pickup bool) string {
	if method == entities.PaymentMethodCash {
		if pickup {
			return "Barzahlung bei Abholung"
		}
		return "Barzahlung bei Lieferung"
	}
	return "PayPal (Bereits bezahlt)"
}

// summaryRows renders subtotal, discount and fee rows shared by the
// customer and owner emails. With two or more discounts an aggregate row
// using the caller-supplied discount_amount is appended; the individual
// amounts are never summed up here.
func summaryRows(b *strings.Builder, s entities.Summary, pickup bool) {
	fmt.Fprintf(b, `<p style="margin: 5px 0;"><strong>Zwischensumme:</strong> €%s</p>`, entities.FormatAmount(s.Subtotal))
	for _, d := range s.Discounts {
		fmt.Fprintf(b, `<p style="margin: 5px 0; color: #10b981; font-weight: 500;">🎁 %s (-%s%%): -€%s</p>`,
			esc(d.Name), entities.FormatAmount(d.Percentage), entities.FormatAmount(d.Amount))
	}
	if len(s.Discounts) > 1 {
		fmt.Fprintf(b, `<p style="margin: 5px 0; color: #059669; font-weight: bold; border-top: 1px solid #d1fae5; padding-top: 5px;">💰 Gesamt Rabatt: -€%s</p>`,
			entities.FormatAmount(s.DiscountAmount))
	}
	switch {
	case pickup:
		b.WriteString(`<p style="margin: 5px 0; color: #10b981; font-weight: bold;">🛍️ Abholung im Restaurant</p>`)
	case s.FreeDelivery():
		b.WriteString(`<p style="margin: 5px 0; color: #10b981; font-weight: bold;">✅ Kostenlose Lieferung!</p>`)
	default:
		fmt.Fprintf(b, `<p style="margin: 5px 0;"><strong>Liefergebühr:</strong> €%s</p>`, entities.FormatAmount(s.DeliveryFee))
	}
}

func CustomerOrderSubject(o entities.Order) string {
	num := "N/A"
	if o.OrderNumber != "" {
		num = o.OrderNumber
	}
	return fmt.Sprintf("Ihre Bestellung bei %s - Bestellnummer %s", restaurantName, num)
}

// CustomerOrder renders the order confirmation sent to the customer.
func CustomerOrder(o entities.Order, s entities.Summary) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #f97316 0%, #ea580c 100%); padding: 30px; text-align: center;">`)
	b.WriteString(`<h1 style="color: white; margin: 0;">` + restaurantName + `</h1></div>`)

	b.WriteString(`<div style="padding: 30px; background-color: #f9fafb;">`)
	fmt.Fprintf(&b, `<h2 style="color: #1f2937;">Hallo %s,</h2>`, esc(o.CustomerName))
	b.WriteString(`<p style="color: #4b5563; font-size: 16px;">vielen Dank für Ihre Bestellung bei ` + restaurantName + `!</p>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #f97316; margin-top: 0;">Bestelldetails</h3>`)
	fmt.Fprintf(&b, `<p><strong>Bestellnummer:</strong> %s</p>`, displayOrderNumber(o.OrderNumber))
	b.WriteString(`<h4 style="color: #1f2937;">Ihre Bestellung:</h4>`)
	fmt.Fprintf(&b, `<pre style="background: #f3f4f6; padding: 15px; border-radius: 4px; white-space: pre-wrap; font-family: monospace;">%s</pre>`, esc(s.ItemLines))

	b.WriteString(`<div style="border-top: 2px solid #e5e7eb; margin-top: 15px; padding-top: 15px;">`)
	summaryRows(&b, s, false)
	fmt.Fprintf(&b, `<p style="margin: 5px 0; font-size: 18px; color: #f97316;"><strong>Gesamtbetrag: €%s</strong></p>`, entities.FormatAmount(s.TotalAmount))
	b.WriteString(`</div></div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #f97316; margin-top: 0;">Lieferadresse</h3>`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0;">%s</p>`, esc(o.CustomerAddress))
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Tel:</strong> %s</p>`, esc(o.CustomerPhone))
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Zahlungsmethode:</strong> %s</p>`, paymentMethodText(o.PaymentMethod, false))
	if o.Notes != "" {
		fmt.Fprintf(&b, `<p style="margin: 15px 0 5px 0;"><strong>Anmerkungen:</strong></p><p style="margin: 5px 0; font-style: italic;">%s</p>`, esc(o.Notes))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: #fef3c7; padding: 20px; border-radius: 8px; border-left: 4px solid #f59e0b; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #92400e; margin-top: 0;">⏱️ Voraussichtliche Lieferzeit</h3>`)
	fmt.Fprintf(&b, `<p style="margin: 0; color: #78350f; font-size: 18px; font-weight: bold;">Ca. %s Minuten</p>`, esc(o.EstimatedDeliveryTime))
	b.WriteString(`<p style="margin: 5px 0 0 0; color: #78350f; font-size: 14px;">Ihre Bestellung wird in Kürze zubereitet und geliefert.</p></div>`)

	b.WriteString(`<p style="color: #4b5563; margin-top: 30px;">Vielen Dank für Ihr Vertrauen!</p>`)
	b.WriteString(`<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; text-align: center; color: #6b7280; font-size: 14px;">`)
	b.WriteString(`<p>Mit freundlichen Grüßen<br><strong>Restaurant Hunger Team</strong></p></div>`)
	b.WriteString(`</div></div>`)

	return b.String()
}

func OwnerOrderSubject(o entities.Order, orderedAt time.Time) string {
	num := "N/A"
	if o.OrderNumber != "" {
		num = o.OrderNumber
	}
	return fmt.Sprintf("🔔 Neue Bestellung #%s - %s", num, orderedAt.Format("2.1.2006, 15:04:05"))
}

// OwnerOrder renders the internal notification sent to the restaurant
// operator. Pickup orders swap the fee line for a pickup indicator and
// the delivery instruction for a prepare-for-pickup one.
func OwnerOrder(o entities.Order, s entities.Summary, orderedAt time.Time) string {
	pickup := o.OrderType == entities.OrderTypePickup

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #dc2626 0%, #991b1b 100%); padding: 30px; text-align: center;">`)
	b.WriteString(`<h1 style="color: white; margin: 0;">🔔 NEUE BESTELLUNG</h1></div>`)

	b.WriteString(`<div style="padding: 30px; background-color: #fef2f2;">`)
	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #dc2626; margin-bottom: 20px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #dc2626; margin-top: 0;">Bestellnummer: %s</h2>`, displayOrderNumber(o.OrderNumber))
	fmt.Fprintf(&b, `<p style="color: #6b7280;">Bestellzeit: %s</p>`, orderedAt.Format("2.1.2006, 15:04:05"))
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #1f2937; margin-top: 0;">Kundeninformationen</h3>`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Name:</strong> %s</p>`, esc(o.CustomerName))
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Telefon:</strong> %s</p>`, esc(o.CustomerPhone))
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>E-Mail:</strong> %s</p>`, esc(o.CustomerEmail))
	if !pickup {
		b.WriteString(`<p style="margin: 15px 0 5px 0;"><strong>Lieferadresse:</strong></p>`)
		fmt.Fprintf(&b, `<p style="margin: 5px 0; padding: 10px; background: #f3f4f6; border-radius: 4px;">%s</p>`, esc(o.CustomerAddress))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #1f2937; margin-top: 0;">Bestellung</h3>`)
	fmt.Fprintf(&b, `<pre style="background: #f3f4f6; padding: 15px; border-radius: 4px; white-space: pre-wrap; font-family: monospace;">%s</pre>`, esc(s.ItemLines))
	b.WriteString(`<div style="border-top: 2px solid #e5e7eb; margin-top: 15px; padding-top: 15px;">`)
	summaryRows(&b, s, pickup)
	fmt.Fprintf(&b, `<p style="margin: 5px 0; font-size: 20px; color: #dc2626;"><strong>GESAMTBETRAG: €%s</strong></p>`, entities.FormatAmount(s.TotalAmount))
	b.WriteString(`</div></div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #1f2937; margin-top: 0;">Zahlungsinformationen</h3>`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Zahlungsmethode:</strong> %s</p>`, paymentMethodText(o.PaymentMethod, pickup))
	if o.PaymentStatus == entities.PaymentStatusPaid {
		b.WriteString(`<p style="margin: 5px 0;"><strong>Zahlungsstatus:</strong> <span style="color: #059669; font-weight: bold;">BEZAHLT ✓</span></p>`)
	} else {
		b.WriteString(`<p style="margin: 5px 0;"><strong>Zahlungsstatus:</strong> <span style="color: #f59e0b; font-weight: bold;">AUSSTEHEND</span></p>`)
	}
	b.WriteString(`</div>`)

	if o.Notes != "" {
		b.WriteString(`<div style="background: #fef3c7; padding: 20px; border-radius: 8px; border-left: 4px solid #f59e0b; margin: 20px 0;">`)
		b.WriteString(`<h3 style="color: #92400e; margin-top: 0;">📝 Kundenanmerkungen</h3>`)
		fmt.Fprintf(&b, `<p style="margin: 0; color: #78350f;">%s</p>`, esc(o.Notes))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div style="margin-top: 30px; padding: 20px; background: #dcfce7; border-radius: 8px; text-align: center;">`)
	if pickup {
		b.WriteString(`<p style="margin: 0; color: #166534; font-weight: bold;">Bitte bereiten Sie die Bestellung zur Abholung vor.</p>`)
		fmt.Fprintf(&b, `<p style="margin: 0; color: #166534; font-weight: bold;">Abholzeit: %s</p>`, esc(o.EstimatedDeliveryTime))
	} else {
		b.WriteString(`<p style="margin: 0; color: #166534; font-weight: bold;">Bitte bereiten Sie die Bestellung vor und liefern Sie sie aus.</p>`)
		fmt.Fprintf(&b, `<p style="margin: 0; color: #166534; font-weight: bold;">Lieferzeit: %s</p>`, esc(o.EstimatedDeliveryTime))
	}
	b.WriteString(`</div></div></div>`)

	return b.String()
}

func CancellationSubject(c entities.Cancellation) string {
	num := "N/A"
	if c.OrderNumber != "" {
		num = c.OrderNumber
	}
	return fmt.Sprintf("Bestellung abgelehnt - %s - Bestellnummer %s", restaurantName, num)
}

// Cancellation renders the rejection email sent to the customer. The fee
// line only appears when the caller sent a positive fee; there is no
// fallback derivation here.
func Cancellation(c entities.Cancellation, restaurantPhone string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #dc2626 0%, #991b1b 100%); padding: 30px; text-align: center;">`)
	b.WriteString(`<h1 style="color: white; margin: 0;">` + restaurantName + `</h1></div>`)

	b.WriteString(`<div style="padding: 30px; background-color: #f9fafb;">`)
	fmt.Fprintf(&b, `<h2 style="color: #1f2937;">Hallo %s,</h2>`, esc(c.CustomerName))
	b.WriteString(`<p style="color: #4b5563; font-size: 16px;">leider konnten wir Ihre Bestellung nicht bearbeiten.</p>`)

	b.WriteString(`<div style="background: #fee2e2; padding: 20px; border-radius: 8px; border-left: 4px solid #dc2626; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #991b1b; margin-top: 0;">❌ Bestellung wurde abgelehnt</h3>`)
	b.WriteString(`<p style="color: #7f1d1d; margin: 0;">Ihre Bestellung konnte leider nicht erfolgreich bearbeitet werden.</p></div>`)

	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #f97316; margin-top: 0;">Ihre Bestelldetails</h3>`)
	fmt.Fprintf(&b, `<p><strong>Bestellnummer:</strong> %s</p>`, displayOrderNumber(c.OrderNumber))
	b.WriteString(`<h4 style="color: #1f2937;">Bestellte Artikel:</h4>`)
	fmt.Fprintf(&b, `<pre style="background: #f3f4f6; padding: 15px; border-radius: 4px; white-space: pre-wrap; font-family: monospace;">%s</pre>`, esc(entities.ItemLines(c.Items)))

	b.WriteString(`<div style="border-top: 2px solid #e5e7eb; margin-top: 15px; padding-top: 15px;">`)
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Zwischensumme:</strong> €%s</p>`, entities.FormatAmount(c.Subtotal))
	if c.DeliveryFee > 0 {
		fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Liefergebühr:</strong> €%s</p>`, entities.FormatAmount(c.DeliveryFee))
	}
	fmt.Fprintf(&b, `<p style="margin: 5px 0; font-size: 18px; color: #f97316;"><strong>Gesamtbetrag: €%s</strong></p>`, entities.FormatAmount(c.TotalAmount))
	b.WriteString(`</div>`)

	if c.Notes != "" {
		b.WriteString(`<div style="margin-top: 15px; padding-top: 15px; border-top: 1px solid #e5e7eb;">`)
		b.WriteString(`<p style="margin: 5px 0;"><strong>Ihre Anmerkungen:</strong></p>`)
		fmt.Fprintf(&b, `<p style="margin: 5px 0; font-style: italic; color: #6b7280;">%s</p>`, esc(c.Notes))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: #fef3c7; padding: 20px; border-radius: 8px; border-left: 4px solid #f59e0b; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #92400e; margin-top: 0;">📞 Bitte kontaktieren Sie uns</h3>`)
	b.WriteString(`<p style="color: #78350f; margin: 10px 0;">Für weitere Informationen oder um eine neue Bestellung aufzugeben, kontaktieren Sie uns bitte unter:</p>`)
	fmt.Fprintf(&b, `<p style="margin: 10px 0;"><a href="tel:%s" style="color: #92400e; font-size: 20px; font-weight: bold; text-decoration: none;">%s</a></p>`, esc(restaurantPhone), esc(restaurantPhone))
	b.WriteString(`<p style="color: #78350f; margin: 10px 0;">Wir helfen Ihnen gerne weiter!</p></div>`)

	b.WriteString(`<div style="margin-top: 30px; text-align: center; color: #6b7280; font-size: 14px;">`)
	b.WriteString(`<p>Vielen Dank für Ihr Verständnis!</p>`)
	b.WriteString(`<p style="margin-top: 10px;">` + restaurantName + ` Team</p></div>`)
	b.WriteString(`</div></div>`)

	return b.String()
}
