package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"storefront/internal/models"
)

// Mailer sends the three transactional order emails. Delivery is best effort:
// callers log a failed send and move on, it never blocks order processing.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	appURL string
}

// NewMailer builds a Mailer from SMTP settings. With incomplete credentials
// it returns a disabled mailer that only logs, so local runs work without an
// SMTP account.
func NewMailer(host string, port int, user, pass, from, appURL string) *Mailer {
	if user == "" || pass == "" {
		log.Println("SMTP credentials not set, email delivery disabled")
		return &Mailer{from: from, appURL: appURL}
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		appURL: appURL,
	}
}

// SendOrderConfirmed emails the order summary right after the webhook has
// persisted the order.
func (m *Mailer) SendOrderConfirmed(order models.Order) error {
	number := displayOrderNumber(order)
	subject := fmt.Sprintf("Order Confirmed! %s", number)
	return m.send(order.CustomerEmail, subject, orderConfirmedBody(order))
}

// SendOrderShipped emails tracking details when an admin marks the order
// shipped.
func (m *Mailer) SendOrderShipped(order models.Order) error {
	number := displayOrderNumber(order)
	subject := fmt.Sprintf("Your Order Has Shipped! %s", number)
	return m.send(order.CustomerEmail, subject, orderShippedBody(order))
}

// SendOrderDelivered emails the delivery notice.
func (m *Mailer) SendOrderDelivered(order models.Order) error {
	number := displayOrderNumber(order)
	subject := fmt.Sprintf("Your Order Has Been Delivered! %s", number)
	return m.send(order.CustomerEmail, subject, orderDeliveredBody(order, m.appURL))
}

func (m *Mailer) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("recipient email is empty")
	}

	if m.dialer == nil {
		log.Printf("email delivery disabled, skipping %q to %s", subject, to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return err
	}

	log.Printf("email %q sent to %s", subject, to)
	return nil
}

// displayOrderNumber falls back to the tail of the database id so an email is
// never sent without some order reference.
func displayOrderNumber(order models.Order) string {
	if order.OrderNumber != "" {
		return order.OrderNumber
	}
	hex := order.ID.Hex()
	if len(hex) >= 8 {
		return strings.ToUpper(hex[len(hex)-8:])
	}
	return "N/A"
}

func formatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func orderConfirmedBody(order models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString(fmt.Sprintf(`
		<tr>
			<td style="padding:8px 0;border-bottom:1px solid #f1f5f9;">%s<br>
				<span style="color:#64748b;font-size:13px;">Qty: %d</span></td>
			<td align="right" style="padding:8px 0;border-bottom:1px solid #f1f5f9;font-weight:600;">%s</td>
		</tr>`, item.Name, item.Quantity, formatPrice(item.Price*float64(item.Quantity))))
	}

	shippingLabel := formatPrice(order.Shipping)
	if order.Shipping == 0 {
		shippingLabel = "FREE"
	}

	return emailLayout(fmt.Sprintf(`
		<h1 style="color:#2d5016;">Order Confirmed!</h1>
		<p>Hi <strong>%s</strong>, thank you for your order! We're preparing it with care and will ship it soon.</p>
		<p style="font-size:13px;color:#64748b;margin-bottom:4px;">ORDER NUMBER</p>
		<p style="font-size:22px;font-weight:700;margin-top:0;">%s</p>
		<h3>Order Summary</h3>
		<table width="100%%" cellpadding="0" cellspacing="0">%s</table>
		<table width="100%%" cellpadding="0" cellspacing="0" style="margin-top:16px;">
			<tr><td style="color:#64748b;">Subtotal</td><td align="right">%s</td></tr>
			<tr><td style="color:#64748b;">Shipping</td><td align="right">%s</td></tr>
			<tr><td style="font-weight:700;padding-top:8px;">Total</td><td align="right" style="font-weight:700;padding-top:8px;">%s</td></tr>
		</table>
		<p style="margin-top:24px;">We'll send you another email when your order ships!</p>`,
		order.CustomerName,
		displayOrderNumber(order),
		items.String(),
		formatPrice(order.Subtotal),
		shippingLabel,
		formatPrice(order.Total),
	))
}

func orderShippedBody(order models.Order) string {
	tracking := ""
	if order.TrackingNumber != nil && *order.TrackingNumber != "" {
		tracking = fmt.Sprintf(`
		<p style="font-size:13px;color:#3b82f6;margin-bottom:4px;">TRACKING NUMBER</p>
		<p style="font-size:20px;font-weight:700;font-family:monospace;margin-top:0;">%s</p>`, *order.TrackingNumber)
	}

	address := ""
	if order.ShippingAddress != nil {
		a := order.ShippingAddress
		line2 := ""
		if a.Line2 != "" {
			line2 = a.Line2 + "<br>"
		}
		address = fmt.Sprintf(`
		<h4 style="margin-bottom:8px;">Shipping To</h4>
		<p style="color:#64748b;">%s<br>%s%s, %s %s<br>%s</p>`,
			a.Line1, line2, a.City, a.State, a.PostalCode, a.Country)
	}

	return emailLayout(fmt.Sprintf(`
		<h1 style="color:#1d4ed8;">Your Order Has Shipped!</h1>
		<p>Great news, <strong>%s</strong>! Your order is on its way to you.</p>
		<p style="font-size:13px;color:#64748b;margin-bottom:4px;">ORDER NUMBER</p>
		<p style="font-size:18px;font-weight:700;margin-top:0;">%s</p>
		%s%s
		<p>Estimated delivery: <strong>5-7 business days</strong></p>`,
		order.CustomerName,
		displayOrderNumber(order),
		tracking,
		address,
	))
}

func orderDeliveredBody(order models.Order, appURL string) string {
	return emailLayout(fmt.Sprintf(`
		<h1 style="color:#c5807d;">Your Order Has Arrived!</h1>
		<p>Hi <strong>%s</strong>, your order has been delivered! We hope you love your healthy snacks.</p>
		<p style="font-size:13px;color:#64748b;margin-bottom:4px;">ORDER NUMBER</p>
		<p style="font-size:18px;font-weight:700;margin-top:0;">%s</p>
		<p><a href="%s/shop" style="color:#2d5016;font-weight:600;">Shop Again →</a></p>
		<p style="color:#94a3b8;">Thank you for choosing UGo!</p>`,
		order.CustomerName,
		displayOrderNumber(order),
		appURL,
	))
}

func emailLayout(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"></head>
<body style="font-family:-apple-system,Segoe UI,Roboto,Arial,sans-serif;background:#fafafa;margin:0;padding:24px;">
	<div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:16px;padding:32px;">
		%s
		<hr style="border:none;border-top:1px solid #e2e8f0;margin-top:32px;">
		<p style="color:#94a3b8;font-size:12px;">This email was sent automatically. Please do not reply.<br>
		Questions? Contact us at <a href="mailto:ugofoodshelp@gmail.com" style="color:#c5807d;">ugofoodshelp@gmail.com</a></p>
	</div>
</body>
</html>`, content)
}
