package entity

// Category groups products. Categories form a two-level tree: a category
// with a ParentID must point at a top-level category.
type Category struct {
	ID          uint
	Name        string
	Slug        string
	Description string
	ParentID    *uint
	IsActive    bool
	SortOrder   int
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}
