package scope

import "gorm.io/gorm"

// NewestFirst orders by created_at then id, both descending, so equal timestamps page deterministically.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}
