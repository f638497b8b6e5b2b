// Package specification holds composable query filters. Repositories accept
// them variadically and fold them onto a *gorm.DB in argument order.
package specification

import "gorm.io/gorm"

type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Apply folds specs onto db in order. Nil entries are skipped.
func Apply(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		db = spec.Apply(db)
	}
	return db
}
