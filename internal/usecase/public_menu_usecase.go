package usecase

import (
	"context"

	"menudash/internal/domain/entity"
)

// PublicMenuUsecase builds the read-only menu shown to customers.
type PublicMenuUsecase interface {
	GetPublicMenu(ctx context.Context) (*PublicMenu, error)
}

// PublicMenu is the customer view: settings, active categories in order and
// their available items keyed by category slug.
type PublicMenu struct {
	Settings   *entity.Settings                `json:"settings"`
	Categories []*entity.Category              `json:"categories"`
	Items      map[string][]*entity.MenuItem `json:"items"`
}
