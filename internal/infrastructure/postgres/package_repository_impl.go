package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alam-gir/agency/internal/domain/entity"
	"github.com/alam-gir/agency/internal/domain/repository"
)

type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

const packageSelect = `
	SELECT p.id, p.title, p.description, p.price_bdt, p.price_usd, p.delivery_time,
	       p.revision_time, p.features, p.status, p.icon_id, p.category_id, p.author_id,
	       p.created_at, p.updated_at,
	       a.id, a.url, a.storage_key, a.folder
	FROM packages p
	LEFT JOIN assets a ON a.id = p.icon_id
`

func (r *PackageRepository) Create(ctx context.Context, p *entity.Package) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO packages (title, description, price_bdt, price_usd, delivery_time,
		                      revision_time, features, status, category_id, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Description, p.PriceBDT, p.PriceUSD, p.DeliveryTime,
		p.RevisionTime, p.Features, p.Status, p.CategoryID, p.AuthorID)
	return translate(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

func (r *PackageRepository) List(ctx context.Context) ([]entity.Package, error) {
	rows, err := r.pool.Query(ctx, packageSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]entity.Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		out = append(out, *p)
	}
	return out, translate(rows.Err())
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*entity.Package, error) {
	row := r.pool.QueryRow(ctx, packageSelect+` WHERE p.id = $1`, id)
	p, err := scanPackage(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func scanPackage(scan func(...any) error) (*entity.Package, error) {
	p := &entity.Package{}
	var aID, aURL, aKey, aFolder *string
	if err := scan(&p.ID, &p.Title, &p.Description, &p.PriceBDT, &p.PriceUSD, &p.DeliveryTime,
		&p.RevisionTime, &p.Features, &p.Status, &p.IconID, &p.CategoryID, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt,
		&aID, &aURL, &aKey, &aFolder); err != nil {
		return nil, err
	}
	if aID != nil {
		p.Icon = &entity.Asset{ID: *aID, URL: deref(aURL), StorageKey: deref(aKey), Folder: deref(aFolder)}
	}
	return p, nil
}

func (r *PackageRepository) UpdateTitle(ctx context.Context, id, title string) error {
	return r.exec(ctx, `UPDATE packages SET title = $2, updated_at = now() WHERE id = $1`, id, title)
}

func (r *PackageRepository) UpdateDescription(ctx context.Context, id, description string) error {
	return r.exec(ctx, `UPDATE packages SET description = $2, updated_at = now() WHERE id = $1`, id, description)
}

func (r *PackageRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return r.exec(ctx, `UPDATE packages SET status = $2, updated_at = now() WHERE id = $1`, id, status)
}

func (r *PackageRepository) UpdateCategory(ctx context.Context, id, categoryID string) error {
	return r.exec(ctx, `UPDATE packages SET category_id = $2, updated_at = now() WHERE id = $1`, id, categoryID)
}

func (r *PackageRepository) UpdatePrice(ctx context.Context, id string, priceBDT, priceUSD float64) error {
	return r.exec(ctx, `UPDATE packages SET price_bdt = $2, price_usd = $3, updated_at = now() WHERE id = $1`, id, priceBDT, priceUSD)
}

func (r *PackageRepository) UpdateDeliveryTime(ctx context.Context, id, deliveryTime string) error {
	return r.exec(ctx, `UPDATE packages SET delivery_time = $2, updated_at = now() WHERE id = $1`, id, deliveryTime)
}

func (r *PackageRepository) UpdateRevisionTime(ctx context.Context, id string, revisionTime int) error {
	return r.exec(ctx, `UPDATE packages SET revision_time = $2, updated_at = now() WHERE id = $1`, id, revisionTime)
}

func (r *PackageRepository) UpdateFeatures(ctx context.Context, id string, features []string) error {
	return r.exec(ctx, `UPDATE packages SET features = $2, updated_at = now() WHERE id = $1`, id, features)
}

func (r *PackageRepository) SetIcon(ctx context.Context, id, assetID string) error {
	return r.exec(ctx, `UPDATE packages SET icon_id = $2, updated_at = now() WHERE id = $1`, id, assetID)
}

func (r *PackageRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PackageRepository = (*PackageRepository)(nil)
