package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/restaurant-hunger/email-service/internal/email"
	"github.com/restaurant-hunger/email-service/internal/entities"
	"github.com/restaurant-hunger/email-service/internal/mailer"

	"golang.org/x/sync/errgroup"
)

// Dispatcher delivers one composed message. Delivery policy (timeouts,
// TLS) belongs to the implementation, not to this service.
type Dispatcher interface {
	Send(msg mailer.Message) error
}

type Senders struct {
	// Display name on customer-facing mail.
	CustomerFacing string
	// Display name on internal notifications.
	System string
	// Recipient of owner notifications.
	OwnerEmail string
	// Shown in cancellation emails as the callback number.
	RestaurantPhone string
}

type notifier struct {
	logger     *slog.Logger
	dispatcher Dispatcher
	senders    Senders
	now        func() time.Time
}

func NewNotifier(logger *slog.Logger, dispatcher Dispatcher, senders Senders) *notifier {
	return &notifier{
		logger:     logger.With(slog.String("service", "notifier")),
		dispatcher: dispatcher,
		senders:    senders,
		now:        time.Now,
	}
}

// SendOrderEmails composes the customer confirmation and the owner
// notification and dispatches both concurrently. The join is fail-fast:
// the first delivery error fails the whole operation and no
// partial-success outcome is reported.
func (s *notifier) SendOrderEmails(ctx context.Context, order entities.Order) error {
	summary := entities.BuildSummary(order)
	orderedAt := s.now()

	customerMsg := mailer.Message{
		FromName: s.senders.CustomerFacing,
		To:       order.CustomerEmail,
		Subject:  email.CustomerOrderSubject(order),
		HTML:     email.CustomerOrder(order, summary),
	}
	ownerMsg := mailer.Message{
		FromName: s.senders.System,
		To:       s.senders.OwnerEmail,
		Subject:  email.OwnerOrderSubject(order, orderedAt),
		HTML:     email.OwnerOrder(order, summary, orderedAt),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return s.dispatcher.Send(customerMsg) })
	g.Go(func() error { return s.dispatcher.Send(ownerMsg) })

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to send order emails",
			slog.String("order_number", order.OrderNumber), slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "order emails sent", slog.String("order_number", order.OrderNumber))
	return nil
}

// SendCancellationEmail sends the rejection notice to the customer only.
func (s *notifier) SendCancellationEmail(ctx context.Context, c entities.Cancellation) error {
	msg := mailer.Message{
		FromName: s.senders.CustomerFacing,
		To:       c.CustomerEmail,
		Subject:  email.CancellationSubject(c),
		HTML:     email.Cancellation(c, s.senders.RestaurantPhone),
	}

	if err := s.dispatcher.Send(msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to send cancellation email",
			slog.String("order_number", c.OrderNumber), slog.Any("error", err))
		return err
	}

	s.logger.InfoContext(ctx, "cancellation email sent", slog.String("order_number", c.OrderNumber))
	return nil
}
