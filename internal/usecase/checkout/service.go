package checkout

import (
	"context"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	domcart "example.com/gallery-storefront/internal/domain/cart"
	domorder "example.com/gallery-storefront/internal/domain/order"
	cartuc "example.com/gallery-storefront/internal/usecase/cart"
)

const orderNumberLen = 9

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ConfirmationMailer sends the order-confirmation email. Sending is
// best-effort; checkout never fails because of it.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, email, orderNumber string, total float64) error
}

type Service struct {
	delay  time.Duration
	mailer ConfirmationMailer
}

// NewService builds a checkout service with the given simulated processing
// delay. mailer may be nil when no SMTP endpoint is configured.
func NewService(delay time.Duration, mailer ConfirmationMailer) *Service {
	return &Service{delay: delay, mailer: mailer}
}

type SubmitInput struct {
	Email      string
	Name       string
	Address    string
	City       string
	Country    string
	ZipCode    string
	CardNumber string
	Expiry     string
	CVC        string
}

// Submit runs the simulated checkout for one session cart: shape the payment
// fields, wait out the fake processing delay (aborting if the request is
// canceled), then atomically drain the cart and hand back a confirmation.
// The simulated gateway never declines; the only failure paths are an empty
// cart and cancellation.
func (s *Service) Submit(ctx context.Context, store *cartuc.Store, in SubmitInput) (*domorder.Confirmation, error) {
	if len(store.Lines()) == 0 {
		return nil, domcart.ErrEmptyCart
	}

	in.CardNumber = FormatCardNumber(in.CardNumber)
	in.Expiry = FormatExpiry(in.Expiry)
	in.CVC = FormatCVC(in.CVC)

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	lines, total := store.Drain()
	if len(lines) == 0 {
		return nil, domcart.ErrEmptyCart
	}

	conf := &domorder.Confirmation{
		OrderNumber: NewOrderNumber(),
		Email:       strings.TrimSpace(in.Email),
	}

	if s.mailer != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.mailer.SendConfirmation(ctx, conf.Email, conf.OrderNumber, total); err != nil {
				log.WithError(err).WithField("order", conf.OrderNumber).
					Warn("confirmation email not sent")
			}
		}()
	}

	return conf, nil
}

// NewOrderNumber returns a 9-character upper-case base-36 token. It is
// non-cryptographic and only locally unique, matching what the confirmation
// view needs.
func NewOrderNumber() string {
	b := make([]byte, orderNumberLen)
	for i := range b {
		b[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return string(b)
}
