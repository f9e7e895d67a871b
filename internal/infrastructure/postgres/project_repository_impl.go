package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (title, description, status, category_id, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Description, p.Status, p.CategoryID, p.AuthorID)
	return translate(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, status, category_id, author_id, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.Project, 0)
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.CategoryID,
			&p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, p)
	}
	return out, translate(rows.Err())
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, status, category_id, author_id, created_at, updated_at
		FROM projects
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.CategoryID,
		&p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translate(err)
	}

	var err error
	if p.Images, err = r.collection(ctx, "project_images", id); err != nil {
		return nil, err
	}
	if p.Files, err = r.collection(ctx, "project_files", id); err != nil {
		return nil, err
	}
	return p, nil
}

// collection loads one of the two ordered asset collections.
func (r *ProjectRepository) collection(ctx context.Context, table, projectID string) ([]entity.Asset, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.url, a.storage_key, a.folder, a.created_at, a.updated_at
		FROM `+table+` pa
		JOIN assets a ON a.id = pa.asset_id
		WHERE pa.project_id = $1
		ORDER BY pa.position
	`, projectID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.Asset, 0)
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.URL, &a.StorageKey, &a.Folder, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, translate(err)
		}
		out = append(out, a)
	}
	return out, translate(rows.Err())
}

func (r *ProjectRepository) UpdateTitle(ctx context.Context, id, title string) error {
	return r.exec(ctx, `UPDATE projects SET title = $2, updated_at = now() WHERE id = $1`, id, title)
}

func (r *ProjectRepository) UpdateDescription(ctx context.Context, id, description string) error {
	return r.exec(ctx, `UPDATE projects SET description = $2, updated_at = now() WHERE id = $1`, id, description)
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.exec(ctx, `UPDATE projects SET status = $2, updated_at = now() WHERE id = $1`, id, status)
}

func (r *ProjectRepository) UpdateCategory(ctx context.Context, id, categoryID string) error {
	return r.exec(ctx, `UPDATE projects SET category_id = $2, updated_at = now() WHERE id = $1`, id, categoryID)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
}

func (r *ProjectRepository) AddImage(ctx context.Context, projectID, assetID string) error {
	return r.addTo(ctx, "project_images", projectID, assetID)
}

func (r *ProjectRepository) RemoveImage(ctx context.Context, projectID, assetID string) error {
	return r.exec(ctx, `DELETE FROM project_images WHERE project_id = $1 AND asset_id = $2`, projectID, assetID)
}

func (r *ProjectRepository) AddFile(ctx context.Context, projectID, assetID string) error {
	return r.addTo(ctx, "project_files", projectID, assetID)
}

func (r *ProjectRepository) RemoveFile(ctx context.Context, projectID, assetID string) error {
	return r.exec(ctx, `DELETE FROM project_files WHERE project_id = $1 AND asset_id = $2`, projectID, assetID)
}

// addTo appends at the end of the ordered collection.
func (r *ProjectRepository) addTo(ctx context.Context, table, projectID, assetID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO `+table+` (project_id, asset_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1
		FROM `+table+`
		WHERE project_id = $1
	`, projectID, assetID)
	return translate(err)
}

func (r *ProjectRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
