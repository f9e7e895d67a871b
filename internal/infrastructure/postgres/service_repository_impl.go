package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

const serviceSelect = `
	SELECT s.id, s.title, s.description, s.short_description, s.status,
	       s.icon_id, s.package_id, s.category_id, s.author_id, s.created_at, s.updated_at,
	       a.id, a.url, a.storage_key, a.folder
	FROM services s
	LEFT JOIN assets a ON a.id = s.icon_id
`

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (title, description, short_description, status, package_id, category_id, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.Title, s.Description, s.ShortDescription, s.Status, s.PackageID, s.CategoryID, s.AuthorID)
	return translate(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt))
}

func (r *ServiceRepository) List(ctx context.Context) ([]entity.Service, error) {
	rows, err := r.pool.Query(ctx, serviceSelect+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.Service, 0)
	for rows.Next() {
		s, err := scanService(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		out = append(out, *s)
	}
	return out, translate(rows.Err())
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	row := r.pool.QueryRow(ctx, serviceSelect+` WHERE s.id = $1`, id)
	s, err := scanService(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func scanService(scan func(...any) error) (*entity.Service, error) {
	s := &entity.Service{}
	var aID, aURL, aKey, aFolder *string
	if err := scan(&s.ID, &s.Title, &s.Description, &s.ShortDescription, &s.Status,
		&s.IconID, &s.PackageID, &s.CategoryID, &s.AuthorID, &s.CreatedAt, &s.UpdatedAt,
		&aID, &aURL, &aKey, &aFolder); err != nil {
		return nil, err
	}
	if aID != nil {
		s.Icon = &entity.Asset{ID: *aID, URL: deref(aURL), StorageKey: deref(aKey), Folder: deref(aFolder)}
	}
	return s, nil
}

// Update applies only the non-nil fields; COALESCE keeps the rest.
func (r *ServiceRepository) Update(ctx context.Context, id string, upd repository.ServiceUpdate) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE services
		SET title             = COALESCE($2, title),
		    description       = COALESCE($3, description),
		    short_description = COALESCE($4, short_description),
		    status            = COALESCE($5, status),
		    category_id       = COALESCE($6, category_id),
		    package_id        = COALESCE($7, package_id),
		    updated_at        = now()
		WHERE id = $1
	`, id, upd.Title, upd.Description, upd.ShortDescription, upd.Status, upd.CategoryID, upd.PackageID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) SetIcon(ctx context.Context, id, assetID string) error {
	res, err := r.pool.Exec(ctx, `UPDATE services SET icon_id = $2, updated_at = now() WHERE id = $1`, id, assetID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ServiceRepository = (*ServiceRepository)(nil)
