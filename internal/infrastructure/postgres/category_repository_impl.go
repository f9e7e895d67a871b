package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categorySelect = `
	SELECT c.id, c.title, c.icon_id, c.author_id, c.created_at, c.updated_at,
	       a.id, a.url, a.storage_key, a.folder
	FROM categories c
	LEFT JOIN assets a ON a.id = c.icon_id
`

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (title, author_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, c.Title, c.AuthorID)
	return translate(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, categorySelect+` ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		var aID, aURL, aKey, aFolder *string
		if err := rows.Scan(&c.ID, &c.Title, &c.IconID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
			&aID, &aURL, &aKey, &aFolder); err != nil {
			return nil, translate(err)
		}
		if aID != nil {
			c.Icon = &entity.Asset{ID: *aID, URL: deref(aURL), StorageKey: deref(aKey), Folder: deref(aFolder)}
		}
		out = append(out, c)
	}
	return out, translate(rows.Err())
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c := &entity.Category{}
	var aID, aURL, aKey, aFolder *string
	row := r.pool.QueryRow(ctx, categorySelect+` WHERE c.id = $1`, id)
	if err := row.Scan(&c.ID, &c.Title, &c.IconID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		&aID, &aURL, &aKey, &aFolder); err != nil {
		return nil, translate(err)
	}
	if aID != nil {
		c.Icon = &entity.Asset{ID: *aID, URL: deref(aURL), StorageKey: deref(aKey), Folder: deref(aFolder)}
	}
	return c, nil
}

func (r *CategoryRepository) UpdateTitle(ctx context.Context, id, title string) error {
	return r.exec(ctx, `UPDATE categories SET title = $2, updated_at = now() WHERE id = $1`, id, title)
}

func (r *CategoryRepository) SetIcon(ctx context.Context, id, assetID string) error {
	return r.exec(ctx, `UPDATE categories SET icon_id = $2, updated_at = now() WHERE id = $1`, id, assetID)
}

func (r *CategoryRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
