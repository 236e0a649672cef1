package entity

// Category is a top-level product grouping.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Subcategory is a second-level grouping under a category.
type Subcategory struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
}
