package specification

import (
	"fmt"
	"math"

	"ustory-be/internal/repository/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	Table string
	ID    uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(column(s.Table, "id")+" = ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// NewestFirst orders by created_at then id, both descending.
type NewestFirst struct {
	Table string
}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.NewestFirst(s.Table))
}

// NotDeleted filters out soft-deleted records. Repositories that query unscoped
// rely on this being passed explicitly.
type NotDeleted struct {
	Table string
}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(column(s.Table, "deleted_at") + " IS NULL")
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// Page converts a 1-based page number and page size into a Pagination.
// An offset that would overflow int saturates at math.MaxInt, which is past
// the end of any table.
func Page(page, size int) Pagination {
	if size > 0 && page-1 > math.MaxInt/size {
		return Pagination{Limit: size, Offset: math.MaxInt}
	}
	return Pagination{Limit: size, Offset: (page - 1) * size}
}

// Limit caps the number of rows returned.
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	if s.N <= 0 {
		return db
	}
	return db.Limit(s.N)
}

func column(table, name string) string {
	if table == "" {
		return name
	}
	return table + "." + name
}
