package service

import (
	"context"
	"fmt"

	"rechtent-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, to, name string, order *domain.Order) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for renting with RechTent. Your order #%d has been received.\n\nSubtotal: %dđ", name, order.ID, order.Subtotal)
	if order.DiscountPercent > 0 {
		body += fmt.Sprintf("\nPromo discount: %d%%", order.DiscountPercent)
	}
	body += fmt.Sprintf("\nDeposit: %dđ\nTotal: %dđ\n\nThe deposit is refunded after your return request is verified.\n\nBest regards,\nThe RechTent Team", order.Deposit, order.Total)
	return s.send(to, name, fmt.Sprintf("RechTent order #%d received", order.ID), body)
}

func (s *emailService) SendReturnDecision(ctx context.Context, to, name string, req *domain.ReturnRequest) error {
	var body string
	switch req.Status {
	case domain.ReturnStatusApproved:
		body = fmt.Sprintf("Hello %s,\n\nYour return request #%d for order #%d has been approved. The deposit refund will be transferred to %s (%s).", name, req.ID, req.OrderID, req.BankAccountName, req.BankName)
	default:
		body = fmt.Sprintf("Hello %s,\n\nYour return request #%d for order #%d has been rejected.", name, req.ID, req.OrderID)
		if req.AdminNote != "" {
			body += fmt.Sprintf("\n\nReason: %s", req.AdminNote)
		}
	}
	body += "\n\nBest regards,\nThe RechTent Team"
	return s.send(to, name, fmt.Sprintf("Return request #%d %s", req.ID, req.Status), body)
}

func (s *emailService) SendPendingReturnsReminder(ctx context.Context, to string, pendingCount int32) error {
	body := fmt.Sprintf("There are %d return requests waiting for verification in the admin panel.", pendingCount)
	return s.send(to, "RechTent Admin", "Pending return requests", body)
}
