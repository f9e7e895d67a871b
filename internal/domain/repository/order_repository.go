package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	List(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
