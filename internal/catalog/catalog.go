// Package catalog holds the static category catalog. Categories are a fixed
// lookup table loaded at startup; they are never created, edited, or deleted
// at runtime.
package catalog

import "duitku/internal/models"

// Category describes the display metadata for a category id.
type Category struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Icon  string                 `json:"icon"`
	Color string                 `json:"color"`
	Type  models.TransactionType `json:"type"`
}

// Fallback display values for ids that do not resolve against the catalog.
const (
	FallbackIcon  = "📦"
	FallbackColor = "#64748b"
)

var expenseCategories = []Category{
	{ID: "food", Name: "Makanan & Minuman", Icon: "🍽️", Color: "#ef4444", Type: models.TransactionTypeExpense},
	{ID: "transport", Name: "Transportasi", Icon: "🚗", Color: "#3b82f6", Type: models.TransactionTypeExpense},
	{ID: "entertainment", Name: "Hiburan", Icon: "🎬", Color: "#8b5cf6", Type: models.TransactionTypeExpense},
	{ID: "shopping", Name: "Belanja", Icon: "🛍️", Color: "#ec4899", Type: models.TransactionTypeExpense},
	{ID: "health", Name: "Kesehatan", Icon: "🏥", Color: "#10b981", Type: models.TransactionTypeExpense},
	{ID: "education", Name: "Pendidikan", Icon: "📚", Color: "#f59e0b", Type: models.TransactionTypeExpense},
	{ID: "utilities", Name: "Tagihan", Icon: "💡", Color: "#6b7280", Type: models.TransactionTypeExpense},
	{ID: "other", Name: "Lainnya", Icon: "📦", Color: "#64748b", Type: models.TransactionTypeExpense},
}

var incomeCategories = []Category{
	{ID: "salary", Name: "Gaji", Icon: "💼", Color: "#059669", Type: models.TransactionTypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "💻", Color: "#0891b2", Type: models.TransactionTypeIncome},
	{ID: "investment", Name: "Investasi", Icon: "📈", Color: "#7c3aed", Type: models.TransactionTypeIncome},
	{ID: "business", Name: "Bisnis", Icon: "🏢", Color: "#dc2626", Type: models.TransactionTypeIncome},
	{ID: "gift", Name: "Hadiah", Icon: "🎁", Color: "#ea580c", Type: models.TransactionTypeIncome},
	{ID: "other-income", Name: "Lainnya", Icon: "💰", Color: "#16a34a", Type: models.TransactionTypeIncome},
}

var byID = func() map[string]Category {
	m := make(map[string]Category, len(expenseCategories)+len(incomeCategories))
	for _, c := range expenseCategories {
		m[c.ID] = c
	}
	for _, c := range incomeCategories {
		m[c.ID] = c
	}
	return m
}()

// Lookup resolves a category id against the catalog.
func Lookup(id string) (Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// Resolve returns the catalog entry for id, or a fallback entry carrying the
// raw id as its name so consumers never fail on an unknown category.
func Resolve(id string) Category {
	if c, ok := byID[id]; ok {
		return c
	}
	return Category{ID: id, Name: id, Icon: FallbackIcon, Color: FallbackColor}
}

// All returns every category, expenses first.
func All() []Category {
	out := make([]Category, 0, len(expenseCategories)+len(incomeCategories))
	out = append(out, expenseCategories...)
	out = append(out, incomeCategories...)
	return out
}

// ByType returns the categories belonging to the given transaction type.
func ByType(t models.TransactionType) []Category {
	if t == models.TransactionTypeIncome {
		return append([]Category(nil), incomeCategories...)
	}
	return append([]Category(nil), expenseCategories...)
}
