package scope

import "gorm.io/gorm"

// WithSoftDelete disables GORM's implicit soft-delete filter. Callers decide
// inclusion explicitly through specifications.
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
