// Package model holds the GORM persistence structs.
package model

// All returns every model in dependency order, for AutoMigrate and the
// query generator.
func All() []any {
	return []any{
		&CategoryModel{},
		&ProductModel{},
		&ProductImageModel{},
		&ProductMetaTagModel{},
		&ProductReviewModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderTrackingModel{},
		&HomepageSectionModel{},
	}
}
