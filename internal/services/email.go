package services

import (
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/xenia-tech/xenia-backend/internal/config"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
)

const defaultFromEmail = "Xenia <onboarding@resend.dev>"

// EventEmailInfo is the slice of event data that goes into notification
// emails. For verification emails it is resolved from the catalog at
// verification time, not cached from order creation.
type EventEmailInfo struct {
	Name      string
	Venue     string
	Fees      float64
	Platforms []models.Platform
}

func fromAddress() string {
	if config.AppConfig != nil && config.AppConfig.ResendFromEmail != "" {
		return config.AppConfig.ResendFromEmail
	}
	return defaultFromEmail
}

// sendEmail delivers one transactional email via Resend. Failures are logged
// and swallowed; notifications never fail the action that triggered them.
func sendEmail(to, subject, html string) {
	if config.AppConfig == nil || config.AppConfig.ResendAPIKey == "" {
		logger.Debug().Str("to", to).Str("subject", subject).Msg("Resend not configured, skipping email")
		return
	}

	client := resend.NewClient(config.AppConfig.ResendAPIKey)
	sent, err := client.Emails.Send(&resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
		return
	}

	logger.Info().Str("to", to).Str("message_id", sent.Id).Msg("Email sent")
}

func notifyOrderCreated(leader models.User, order models.Order, validated []validatedRegistration) {
	events := make([]EventEmailInfo, 0, len(validated))
	for _, v := range validated {
		events = append(events, EventEmailInfo{Name: v.event.Name, Fees: v.event.Fees})
	}

	txnID := ""
	if order.TransactionID != nil {
		txnID = *order.TransactionID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Order Received - %s</h2>", order.OrderID)
	fmt.Fprintf(&b, "<p>Hi %s,</p>", leader.FirstName)
	b.WriteString("<p>We have received your registration. Our team will verify your payment shortly.</p><ul>")
	for _, e := range events {
		fmt.Fprintf(&b, "<li>%s — ₹%.0f</li>", e.Name, e.Fees)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Total: ₹%.0f", order.TotalAmount)
	if txnID != "" {
		fmt.Fprintf(&b, "<br>Transaction ID: %s", txnID)
	}
	b.WriteString("</p>")

	subject := fmt.Sprintf("Order Received - %s | Xenia", order.OrderID)
	html := b.String()
	go sendEmail(leader.Email, subject, html)
}

// notifyOrderVerified resolves event venue and platform links from the
// catalog before dispatching, so the email reflects the latest schedule.
func notifyOrderVerified(order models.Order) {
	eventIDs := make([]string, 0, len(order.Registrations))
	for _, reg := range order.Registrations {
		eventIDs = append(eventIDs, reg.EventID)
	}

	var fresh []models.Event
	if err := database.DB.Where("id IN ?", eventIDs).Find(&fresh).Error; err != nil {
		logger.Error().Err(err).Str("order_id", order.OrderID).Msg("Failed to resolve events for verification email")
		return
	}

	events := make([]EventEmailInfo, 0, len(fresh))
	for _, e := range fresh {
		events = append(events, EventEmailInfo{Name: e.Name, Venue: e.Venue, Platforms: e.Platforms})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Payment Verified - %s</h2>", order.OrderID)
	fmt.Fprintf(&b, "<p>Hi %s,</p>", order.User.FirstName)
	b.WriteString("<p>Your payment has been verified. You're registered!</p><ul>")
	for _, e := range events {
		fmt.Fprintf(&b, "<li><strong>%s</strong>", e.Name)
		if e.Venue != "" {
			fmt.Fprintf(&b, " — Venue: %s", e.Venue)
		}
		for _, p := range e.Platforms {
			fmt.Fprintf(&b, `<br><a href="%s">%s</a>`, p.Link, p.Name)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul><p>See you at the fest!</p>")

	subject := "🎉 Payment Verified - You're Registered! | Xenia"
	html := b.String()
	go sendEmail(order.User.Email, subject, html)
}

func notifyOrderRejected(order models.Order) {
	txnID := ""
	if order.TransactionID != nil {
		txnID = *order.TransactionID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Payment Verification Failed - %s</h2>", order.OrderID)
	fmt.Fprintf(&b, "<p>Hi %s,</p>", order.User.FirstName)
	b.WriteString("<p>We could not verify your payment.</p>")
	if txnID != "" {
		fmt.Fprintf(&b, "<p>Transaction ID: %s</p>", txnID)
	}
	fmt.Fprintf(&b, "<p>Reason: %s</p>", order.RejectionReason)
	b.WriteString("<p>Please contact the team or submit a new order with a valid transaction ID.</p>")

	subject := fmt.Sprintf("Payment Verification Failed - %s | Xenia", order.OrderID)
	html := b.String()
	go sendEmail(order.User.Email, subject, html)
}
