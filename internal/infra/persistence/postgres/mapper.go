package postgres

import (
	"menudash/internal/domain/entity"
	"menudash/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toMenuItemDomain(m *model.MenuItemModel) *entity.MenuItem {
	if m == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Category:    m.Category,
		Description: m.Description,
		Image:       m.Image,
		Available:   m.Available,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromMenuItemDomain(item *entity.MenuItem) *model.MenuItemModel {
	if item == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.Category,
		Description: item.Description,
		Image:       item.Image,
		Available:   item.Available,
		Order:       item.Order,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Slug:        m.Slug,
		Label:       m.Label,
		Icon:        m.Icon,
		Description: m.Description,
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	if category == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          category.ID,
		Slug:        category.Slug,
		Label:       category.Label,
		Icon:        category.Icon,
		Description: category.Description,
		Order:       category.Order,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toSettingsDomain(m *model.SettingsModel) *entity.Settings {
	if m == nil {
		return nil
	}

	return &entity.Settings{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		Instagram:      m.Instagram,
		Address:        m.Address,
		Description:    m.Description,
		Logo:           m.Logo,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		AccentColor:    m.AccentColor,
		Currency:       m.Currency,
		CurrencySymbol: m.CurrencySymbol,
		Timezone:       m.Timezone,
		Language:       m.Language,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromSettingsDomain(settings *entity.Settings) *model.SettingsModel {
	if settings == nil {
		return nil
	}

	return &model.SettingsModel{
		ID:             settings.ID,
		Name:           settings.Name,
		Phone:          settings.Phone,
		Email:          settings.Email,
		Instagram:      settings.Instagram,
		Address:        settings.Address,
		Description:    settings.Description,
		Logo:           settings.Logo,
		PrimaryColor:   settings.PrimaryColor,
		SecondaryColor: settings.SecondaryColor,
		AccentColor:    settings.AccentColor,
		Currency:       settings.Currency,
		CurrencySymbol: settings.CurrencySymbol,
		Timezone:       settings.Timezone,
		Language:       settings.Language,
		CreatedAt:      settings.CreatedAt,
		UpdatedAt:      settings.UpdatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Phone:        m.Phone,
		Image:        m.Image,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		Phone:        user.Phone,
		Image:        user.Image,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toActivityDomain(m *model.ActivityModel) *entity.Activity {
	if m == nil {
		return nil
	}

	var details map[string]any
	if len(m.Details) > 0 {
		details = map[string]any(m.Details)
	}

	return &entity.Activity{
		ID:        m.ID,
		Type:      entity.ActivityType(m.Type),
		Item:      m.Item,
		Category:  m.Category,
		User:      m.User,
		Details:   details,
		Timestamp: m.Timestamp,
	}
}

func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	if activity == nil {
		return nil
	}

	var details datatypes.JSONMap
	if len(activity.Details) > 0 {
		details = datatypes.JSONMap(activity.Details)
	}

	return &model.ActivityModel{
		ID:        activity.ID,
		Type:      string(activity.Type),
		Item:      activity.Item,
		Category:  activity.Category,
		User:      activity.User,
		Details:   details,
		Timestamp: activity.Timestamp,
	}
}
