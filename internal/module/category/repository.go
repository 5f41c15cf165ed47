package category

import (
	"context"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
	"gorm.io/gorm"
)

var (
	allowedSortFields = map[string]string{
		"name":       "name",
		"order":      "sort_order",
		"created_at": "created_at",
	}
	defaultSortOrder    = "sort_order asc, id asc"
	allowedFilterFields = []string{"is_active", "name", "name_en"}
	searchColumns       = []string{"name", "name_en"}
)

// categoryRepository implements domain.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewRepository creates a new CategoryRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		First(&c, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &c, nil
}

// ListByProvider returns one provider's categories, paginated. Active and
// inactive alike; this backs the owner's management view.
func (r *categoryRepository) ListByProvider(ctx context.Context, providerID uint, req domain.PageRequest) (*domain.PageResult[domain.Category], error) {
	base := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("provider_id = ?", providerID).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var categories []domain.Category
	err := base.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		Scopes(
			pkg.Paginate(req),
			pkg.Sort(req, allowedSortFields, defaultSortOrder),
		).
		Find(&categories).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(categories, total, req), nil
}

// ListActiveByProvider returns the active categories in display order. This
// backs the public menu.
func (r *categoryRepository) ListActiveByProvider(ctx context.Context, providerID uint) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND is_active = ?", providerID, true).
		Order("sort_order asc, id asc").
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, id asc")
		}).
		Find(&categories).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	if err := r.db.WithContext(ctx).Omit("Subcategories").Save(c).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ReplaceSubcategories swaps a category's subcategories for the given set in
// one transaction.
func (r *categoryRepository) ReplaceSubcategories(ctx context.Context, categoryID uint, subs []domain.Subcategory) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", categoryID).Delete(&domain.Subcategory{}).Error; err != nil {
			return err
		}
		for i := range subs {
			subs[i].ID = 0
			subs[i].CategoryID = categoryID
		}
		if len(subs) == 0 {
			return nil
		}
		return tx.Create(&subs).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&domain.Subcategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return pkg.MapDBError(err)
	}
	return nil
}

// SlugExists reports whether another category of the same provider holds slug.
// Category slugs are scoped per provider.
func (r *categoryRepository) SlugExists(ctx context.Context, providerID uint, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("provider_id = ? AND slug = ?", providerID, slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

// MaxOrder returns the highest sort_order among the provider's categories,
// or 0 when it has none.
func (r *categoryRepository) MaxOrder(ctx context.Context, providerID uint) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("provider_id = ?", providerID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return max, nil
}
