package main

import "menudash/internal/domain/entity"

type starterCategory struct {
	slug  string
	label string
	icon  string
}

var categoryCatalogue = []starterCategory{
	{slug: "SALAD", label: "Salad", icon: "🥗"},
	{slug: "PROTEINS", label: "Proteins", icon: "🍖"},
	{slug: "GRILLS", label: "Grills", icon: "🍗"},
	{slug: "PASTRY", label: "Pastry", icon: "🥐"},
	{slug: "RICE_DISH", label: "Rice Dish", icon: "🍚"},
	{slug: "SOUPS", label: "Soups", icon: "🍲"},
	{slug: "SWALLOW", label: "Swallow", icon: "🫓"},
	{slug: "NOODLES_PASTA", label: "Noodles/Pasta", icon: "🍝"},
	{slug: "CHIPS", label: "Chips", icon: "🍟"},
	{slug: "SAUCE", label: "Sauce", icon: "🥫"},
}

type starterItem struct {
	name        string
	price       float64
	category    string
	unavailable bool
}

// Listed in display order within each category.
var itemCatalogue = []starterItem{
	{name: "Chicken Salad", price: 5000, category: "SALAD"},
	{name: "Caesar Salad", price: 6000, category: "SALAD"},
	{name: "Coleslaw", price: 1500, category: "SALAD"},

	{name: "Turkey", price: 6000, category: "PROTEINS"},
	{name: "Grilled Chicken", price: 2000, category: "PROTEINS"},
	{name: "Croaker Fish", price: 3000, category: "PROTEINS"},
	{name: "Goat Meat", price: 1500, category: "PROTEINS"},
	{name: "Egg", price: 500, category: "PROTEINS"},

	{name: "Grilled Croaker & Chips", price: 17000, category: "GRILLS"},
	{name: "Chicken Wings & Chips", price: 5000, category: "GRILLS"},
	{name: "Catfish Barbecue", price: 15000, category: "GRILLS"},

	{name: "Chicken Shawarma", price: 3500, category: "PASTRY"},
	{name: "Beef Burger", price: 4000, category: "PASTRY"},
	{name: "Meat Pie", price: 1500, category: "PASTRY"},
	{name: "Sausage Roll", price: 1000, category: "PASTRY"},

	{name: "Special Fried Rice", price: 7000, category: "RICE_DISH"},
	{name: "Jollof Rice", price: 3000, category: "RICE_DISH"},
	{name: "Coconut Rice", price: 3000, category: "RICE_DISH"},
	{name: "Ofada Rice", price: 2000, category: "RICE_DISH"},

	{name: "Egusi Soup", price: 3000, category: "SOUPS"},
	{name: "Okra Soup", price: 3000, category: "SOUPS"},
	{name: "Banga Soup", price: 5000, category: "SOUPS"},

	{name: "Pounded Yam", price: 2000, category: "SWALLOW"},
	{name: "Semo", price: 1500, category: "SWALLOW"},
	{name: "Eba", price: 1000, category: "SWALLOW"},

	{name: "Singapore Noodles", price: 5500, category: "NOODLES_PASTA"},
	{name: "Jollof Pasta", price: 4000, category: "NOODLES_PASTA"},

	{name: "Irish Potato", price: 0, category: "CHIPS", unavailable: true},
	{name: "Yam", price: 0, category: "CHIPS", unavailable: true},
	{name: "French Fries", price: 0, category: "CHIPS", unavailable: true},

	{name: "Chicken Curry Sauce", price: 5000, category: "SAUCE"},
	{name: "Shredded Beef Sauce", price: 5000, category: "SAUCE"},
	{name: "Ofada Sauce", price: 3000, category: "SAUCE"},
}

func starterCategories() []*entity.Category {
	categories := make([]*entity.Category, 0, len(categoryCatalogue))
	for i, c := range categoryCatalogue {
		categories = append(categories, &entity.Category{
			Slug:     c.slug,
			Label:    c.label,
			Icon:     c.icon,
			Order:    i,
			IsActive: true,
		})
	}

	return categories
}

func starterItems() []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(itemCatalogue))
	for _, i := range itemCatalogue {
		items = append(items, &entity.MenuItem{
			Name:      i.name,
			Price:     i.price,
			Category:  i.category,
			Available: !i.unavailable,
		})
	}

	return items
}
