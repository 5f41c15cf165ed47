package menuitem

import (
	"context"

	"github.com/digimenu/digimenu/internal/domain"
	"github.com/digimenu/digimenu/internal/pkg"
	"gorm.io/gorm"
)

var (
	allowedSortFields = map[string]string{
		"name":       "name",
		"price":      "price",
		"order":      "sort_order",
		"created_at": "created_at",
	}
	defaultSortOrder    = "sort_order asc, id asc"
	allowedFilterFields = []string{"category_id", "is_active", "is_available", "name", "name_en", "description"}
	searchColumns       = []string{"name", "name_en", "description"}
)

// menuItemRepository implements domain.MenuItemRepository using GORM.
type menuItemRepository struct {
	db *gorm.DB
}

// NewRepository creates a new MenuItemRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uint) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Addons").
		First(&item, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &item, nil
}

// ListByProvider returns one provider's items, paginated. This backs the
// owner's management view, so inactive and unavailable items are included.
func (r *menuItemRepository) ListByProvider(ctx context.Context, providerID uint, req domain.PageRequest) (*domain.PageResult[domain.MenuItem], error) {
	base := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("provider_id = ?", providerID).
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Search(req, searchColumns),
		)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}

	var items []domain.MenuItem
	err := base.
		Preload("Variants").
		Preload("Addons").
		Scopes(
			pkg.Paginate(req),
			pkg.Sort(req, allowedSortFields, defaultSortOrder),
		).
		Find(&items).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}

	return pkg.NewPageResult(items, total, req), nil
}

// ListVisibleByCategory returns a category's active items in display order,
// with variants and addons loaded. This backs the public menu. Unavailable
// items stay in the list; the storefront renders them via the is_available
// flag instead of hiding them.
func (r *menuItemRepository) ListVisibleByCategory(ctx context.Context, categoryID uint) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("sort_order asc, id asc").
		Preload("Variants").
		Preload("Addons").
		Find(&items).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return items, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.WithContext(ctx).
		Omit("Variants", "Addons").
		Save(item).Error
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ReplaceVariants swaps an item's variants for the given set in one transaction.
func (r *menuItemRepository) ReplaceVariants(ctx context.Context, itemID uint, variants []domain.ItemVariant) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", itemID).Delete(&domain.ItemVariant{}).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ID = 0
			variants[i].MenuItemID = itemID
		}
		if len(variants) == 0 {
			return nil
		}
		return tx.Create(&variants).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// ReplaceAddons swaps an item's addons for the given set in one transaction.
func (r *menuItemRepository) ReplaceAddons(ctx context.Context, itemID uint, addons []domain.ItemAddon) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", itemID).Delete(&domain.ItemAddon{}).Error; err != nil {
			return err
		}
		for i := range addons {
			addons[i].ID = 0
			addons[i].MenuItemID = itemID
		}
		if len(addons) == 0 {
			return nil
		}
		return tx.Create(&addons).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id uint) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&domain.ItemVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&domain.ItemAddon{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.MenuItem{}, id)
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

// SlugExists reports whether another item of the same provider holds slug.
// Item slugs are scoped per provider, not per category.
func (r *menuItemRepository) SlugExists(ctx context.Context, providerID uint, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("provider_id = ? AND slug = ?", providerID, slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, pkg.MapDBError(err)
	}
	return count > 0, nil
}

// MaxOrder returns the highest sort_order among the category's items, or 0
// when it has none.
func (r *menuItemRepository) MaxOrder(ctx context.Context, categoryID uint) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return max, nil
}

func (r *menuItemRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, pkg.MapDBError(err)
	}
	return count, nil
}

// IncrementViewCount bumps the item view counter atomically in the store.
func (r *menuItemRepository) IncrementViewCount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
