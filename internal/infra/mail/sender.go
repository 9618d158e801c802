package mail

import (
	"context"
	"fmt"
	"net/smtp"
)

// Sender emails order confirmations through a plain SMTP endpoint (a local
// relay such as Mailpit in development).
type Sender struct {
	addr string
	from string
}

func NewSender(addr, from string) *Sender {
	return &Sender{addr: addr, from: from}
}

func (s *Sender) SendConfirmation(ctx context.Context, email, orderNumber string, total float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: Your order %s\r\n"+
			"\r\n"+
			"Thank you for your purchase.\r\n"+
			"Order number: %s\r\n"+
			"Total: $%.2f\r\n",
		email, orderNumber, orderNumber, total))
	return smtp.SendMail(s.addr, nil, s.from, []string{email}, msg)
}
