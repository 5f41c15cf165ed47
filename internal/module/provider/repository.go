package provider

import (
	"context"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
	"gorm.io/gorm"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields = map[string]string{
		"name":       "name",
		"created_at": "created_at",
		"view_count": "view_count",
	}
	defaultSortOrder    = "created_at desc"
	allowedFilterFields = []string{"city", "type", "price_range", "name", "name_en", "description"}
	searchColumns       = []string{"name", "name_en", "description", "city"}
)

// providerRepository implements domain.ProviderRepository using GORM.
type providerRepository struct {
	db *gorm.DB
}

// NewRepository creates a new ProviderRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) Create(ctx context.Context, p *domain.Provider) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *providerRepository) GetByID(ctx context.Context, id uint) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

func (r *providerRepository) GetByUserID(ctx context.Context, userID uint) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

func (r *providerRepository) GetBySlug(ctx context.Context, slug string) (*domain.Provider, error) {
	var p domain.Provider
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

// List returns a paginated, sorted, and filtered list of providers.
// With onlyActive set, inactive storefronts are excluded (the public catalog).
func (r *providerRepository) List(ctx context.Context, req domain.PageRequest, onlyActive bool) (*domain.PageResult[domain.Provider], error) {
	base := r.db.WithContext(ctx).Model(&domain.Provider{}).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)
	if onlyActive {
		base = base.Where("is_active = ?", true)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var providers []domain.Provider
	if err := base.Scopes(
		pkg.Paginate(req),
		pkg.Sort(req, allowedSortFields, defaultSortOrder),
	).Find(&providers).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(providers, total, req), nil
}

func (r *providerRepository) Update(ctx context.Context, p *domain.Provider) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Provider{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SlugExists reports whether another provider already holds slug.
// Provider slugs are globally scoped.
func (r *providerRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Provider{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

// IncrementViewCount bumps the storefront view counter atomically in the store.
func (r *providerRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&domain.Provider{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
