package entity

// HomepageSection is a configurable block of the storefront home page.
// SectionName is expected to be unique but the store does not enforce it.
type HomepageSection struct {
	ID             uint
	SectionName    string
	Title          string
	Subtitle       string
	Content        string
	ButtonText     string
	ButtonURL      string
	AdditionalData map[string]any
	IsActive       bool
	SortOrder      int
}
