package repository

import (
	"context"

	"github.com/alam-gir/agency/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	List(ctx context.Context) ([]entity.Project, error)
	// GetByID resolves the image and file collections in position order.
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	UpdateTitle(ctx context.Context, id, title string) error
	UpdateDescription(ctx context.Context, id, description string) error
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	UpdateCategory(ctx context.Context, id, categoryID string) error
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, projectID, assetID string) error
	RemoveImage(ctx context.Context, projectID, assetID string) error
	AddFile(ctx context.Context, projectID, assetID string) error
	RemoveFile(ctx context.Context, projectID, assetID string) error
}
