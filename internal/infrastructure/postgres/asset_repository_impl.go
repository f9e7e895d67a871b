package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type AssetRepository struct {
	pool *pgxpool.Pool
}

func NewAssetRepository(pool *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{pool: pool}
}

func (r *AssetRepository) Create(ctx context.Context, a *entity.Asset) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO assets (url, storage_key, folder)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.URL, a.StorageKey, a.Folder)
	return translate(row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt))
}

func (r *AssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	a := &entity.Asset{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, url, storage_key, folder, created_at, updated_at
		FROM assets
		WHERE id = $1
	`, id)
	if err := row.Scan(&a.ID, &a.URL, &a.StorageKey, &a.Folder, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *entity.Asset) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE assets
		SET url = $2, storage_key = $3, folder = $4, updated_at = now()
		WHERE id = $1
	`, a.ID, a.URL, a.StorageKey, a.Folder)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AssetRepository = (*AssetRepository)(nil)
