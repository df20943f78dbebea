package models

// Defaults applied when the category export omits or mangles fields.
const (
	// UncategorizedID is the reserved category for transactions that
	// cannot be resolved to a real category.
	UncategorizedID int64 = 0

	UncategorizedName = "Uncategorized"
	UnnamedLabel      = "Unnamed"

	// DefaultColor is the gray badge placeholder used when a category
	// carries no color or a malformed one.
	DefaultColor = "#777777"
)

// CategoryRecord is one entry of a category-mapping export.
type CategoryRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
