package menu

import (
	"context"
	"log/slog"

	"github.com/digimenu/digimenu/internal/domain"
)

// Service assembles the public menu view of a storefront.
type Service interface {
	GetBySlug(ctx context.Context, slug string, viewerUserID uint) (*PublicMenu, error)
	RecordItemView(ctx context.Context, slug string, itemID uint) error
}

// PublicMenu is the fully assembled public menu of one provider: the
// storefront header plus its active categories and their visible items.
type PublicMenu struct {
	Provider   *domain.Provider
	Categories []MenuCategory
}

// MenuCategory pairs a category with its visible items.
type MenuCategory struct {
	Category domain.Category
	Items    []domain.MenuItem
}

// menuService implements Service.
type menuService struct {
	providers  domain.ProviderRepository
	categories domain.CategoryRepository
	items      domain.MenuItemRepository
	log        *slog.Logger
}

// NewService creates a new public menu Service.
func NewService(providers domain.ProviderRepository, categories domain.CategoryRepository, items domain.MenuItemRepository, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &menuService{providers: providers, categories: categories, items: items, log: log}
}

// GetBySlug loads the public menu for a storefront slug. Inactive storefronts
// are visible to their owner only and reported as not found to everyone else.
// Each successful non-owner view bumps the storefront view counter; a failed
// bump is logged and never fails the request.
func (s *menuService) GetBySlug(ctx context.Context, slug string, viewerUserID uint) (*PublicMenu, error) {
	p, err := s.providers.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	owner := viewerUserID != 0 && p.UserID == viewerUserID
	if !p.IsActive && !owner {
		return nil, domain.ErrNotFound
	}

	cats, err := s.categories.ListActiveByProvider(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	menu := &PublicMenu{Provider: p, Categories: make([]MenuCategory, 0, len(cats))}
	for i := range cats {
		items, err := s.items.ListVisibleByCategory(ctx, cats[i].ID)
		if err != nil {
			return nil, err
		}
		menu.Categories = append(menu.Categories, MenuCategory{Category: cats[i], Items: items})
	}

	if !owner {
		if err := s.providers.IncrementViewCount(ctx, p.ID); err != nil {
			s.log.WarnContext(ctx, "failed to increment provider view count",
				slog.Uint64("provider_id", uint64(p.ID)),
				slog.Any("error", err),
			)
		}
	}

	return menu, nil
}

// RecordItemView bumps an item's view counter. The item must belong to the
// storefront identified by slug so counters cannot be bumped across tenants.
func (s *menuService) RecordItemView(ctx context.Context, slug string, itemID uint) error {
	p, err := s.providers.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if !p.IsActive {
		return domain.ErrNotFound
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ProviderID != p.ID || !item.IsActive {
		return domain.ErrNotFound
	}

	return s.items.IncrementViewCount(ctx, item.ID)
}
