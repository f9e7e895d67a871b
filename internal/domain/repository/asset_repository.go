package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

type AssetRepository interface {
	Create(ctx context.Context, a *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	Update(ctx context.Context, a *entity.Asset) error
	Delete(ctx context.Context, id string) error
}
