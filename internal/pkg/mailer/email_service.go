package mailer

import (
	"fmt"
	"html"
	"strings"

	"techmart-be/internal/config"
	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	Enabled() bool
	SendOrderConfirmation(toEmail string, order *entity.Order) error
	SendOrderStatusUpdate(toEmail string, order *entity.Order) error
}

type emailService struct {
	dialer     *gomail.Dialer
	sender     string
	senderName string
	baseURL    string
	logger     logger.ILogger
}

// NewEmailService returns a service that silently skips sending when no SMTP
// host is configured.
func NewEmailService(cfg config.SMTPConfig, baseURL string, log logger.ILogger) IEmailService {
	s := &emailService{
		sender:     cfg.Email,
		senderName: cfg.SenderName,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
	}
	if cfg.Host != "" {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	}
	return s
}

func (s *emailService) Enabled() bool {
	return s.dialer != nil
}

func (s *emailService) SendOrderConfirmation(toEmail string, order *entity.Order) error {
	subject := fmt.Sprintf("TechMart order %s confirmed", order.Id)
	return s.send(toEmail, subject, OrderConfirmationBody(order, s.baseURL))
}

func (s *emailService) SendOrderStatusUpdate(toEmail string, order *entity.Order) error {
	subject := fmt.Sprintf("TechMart order %s is %s", order.Id, order.Status)
	return s.send(toEmail, subject, OrderStatusBody(order, s.baseURL))
}

func (s *emailService) send(toEmail, subject, body string) error {
	if !s.Enabled() {
		s.logger.Debug("MAILER", "SMTP not configured, skipping email", map[string]interface{}{"to": toEmail, "subject": subject})
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.sender, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send email", map[string]interface{}{"to": toEmail, "subject": subject, "error": err.Error()})
		return err
	}

	s.logger.Info("MAILER", "Email sent", map[string]interface{}{"to": toEmail, "subject": subject})
	return nil
}

func itemRows(order *entity.Order) string {
	var b strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&b, `<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">$%s</td></tr>`,
			html.EscapeString(item.Name), item.Quantity, item.Subtotal().StringFixed(2))
	}
	return b.String()
}

func OrderConfirmationBody(order *entity.Order, baseURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for shopping at TechMart!</h2>
			<p>Order <strong>%s</strong> has been placed.</p>
			<table style="width:100%%; border-collapse: collapse;">%s</table>
			<h3>Total: $%s</h3>
			<p>Estimated delivery: %s</p>
			<p><a href="%s/orders">Track your order</a></p>
		</div>
	`, order.Id, itemRows(order), order.Total.StringFixed(2), order.EstimatedDelivery.Format("January 2, 2006"), baseURL)
}

func OrderStatusBody(order *entity.Order, baseURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Order update</h2>
			<p>Your order <strong>%s</strong> is now <strong>%s</strong>.</p>
			<table style="width:100%%; border-collapse: collapse;">%s</table>
			<p><a href="%s/orders">View your orders</a></p>
		</div>
	`, order.Id, order.Status, itemRows(order), baseURL)
}
