package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
	"github.com/alam-gir/agency/pkg/apierror"
	"github.com/alam-gir/agency/pkg/mailer"
)

// OrderService records incoming orders and notifies the configured admin
// address. The notification is best effort; the order stands either way.
type OrderService struct {
	Orders  repository.OrderRepository
	Mail    *mailer.Mailgun
	AdminTo string
	Logger  *logrus.Logger
}

type PlaceOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Note          string
	PackageID     *string
	ServiceID     *string
}

func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*entity.Order, error) {
	o := &entity.Order{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Note:          in.Note,
		PackageID:     in.PackageID,
		ServiceID:     in.ServiceID,
		Status:        entity.OrderPending,
	}
	if err := s.Orders.Create(ctx, o); err != nil {
		return nil, apierror.FromRepository(err, "order not found")
	}

	if s.Mail != nil && s.AdminTo != "" {
		subject, text := mailer.OrderNotificationBody(o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Note)
		if err := s.Mail.Send(ctx, s.AdminTo, subject, text, ""); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("order_id", o.ID).Warn("order notification mail failed")
		}
	}
	return o, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if err := s.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, apierror.FromRepository(err, "order not found")
	}
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, apierror.FromRepository(err, "order not found")
	}
	return o, nil
}
