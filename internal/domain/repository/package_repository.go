package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

type PackageRepository interface {
	Create(ctx context.Context, p *entity.Package) error
	List(ctx context.Context) ([]entity.Package, error)
	GetByID(ctx context.Context, id string) (*entity.Package, error)
	UpdateTitle(ctx context.Context, id, title string) error
	UpdateDescription(ctx context.Context, id, description string) error
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	UpdateCategory(ctx context.Context, id, categoryID string) error
	UpdatePrice(ctx context.Context, id string, priceBDT, priceUSD float64) error
	UpdateDeliveryTime(ctx context.Context, id, deliveryTime string) error
	UpdateRevisionTime(ctx context.Context, id string, revisionTime int) error
	UpdateFeatures(ctx context.Context, id string, features []string) error
	SetIcon(ctx context.Context, id, assetID string) error
}
