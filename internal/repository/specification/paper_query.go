package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaperQuery composes paper filters, ordering and paging into one Specification.
// Soft-deleted papers are excluded unless IncludeDeleted(true) is set.
type PaperQuery struct {
	specs          []Specification
	includeDeleted bool
}

func NewPaperQuery() *PaperQuery {
	return &PaperQuery{}
}

func (q *PaperQuery) with(spec Specification) *PaperQuery {
	q.specs = append(q.specs, spec)
	return q
}

func (q *PaperQuery) InDiary(diaryID uuid.UUID) *PaperQuery {
	return q.with(ByDiaryID{DiaryID: diaryID})
}

func (q *PaperQuery) WrittenBy(writerID uuid.UUID) *PaperQuery {
	return q.with(ByWriterID{WriterID: writerID})
}

func (q *PaperQuery) InDiariesOf(userID uuid.UUID) *PaperQuery {
	return q.with(InDiariesOfMember{UserID: userID})
}

func (q *PaperQuery) AtAddress(city, store string) *PaperQuery {
	return q.with(AtAddress{City: city, Store: store})
}

func (q *PaperQuery) LikedBy(userID uuid.UUID) *PaperQuery {
	return q.with(LikedBy{UserID: userID})
}

// CreatedAtOrBefore bounds the result by a request cursor.
func (q *PaperQuery) CreatedAtOrBefore(cursor time.Time) *PaperQuery {
	return q.with(CreatedAtOrBefore{Time: cursor})
}

// CreatedOnOrAfter keeps papers created at or after 00:00:00 of date. A nil date is no bound.
func (q *PaperQuery) CreatedOnOrAfter(date *time.Time) *PaperQuery {
	if date == nil {
		return q
	}
	return q.with(CreatedAtOrAfter{Time: StartOfDay(*date)})
}

// CreatedOnOrBefore keeps papers created at or before 23:59:59.999999999 of date. A nil date is no bound.
func (q *PaperQuery) CreatedOnOrBefore(date *time.Time) *PaperQuery {
	if date == nil {
		return q
	}
	return q.with(CreatedAtOrBefore{Time: EndOfDay(*date)})
}

func (q *PaperQuery) IncludeDeleted(include bool) *PaperQuery {
	q.includeDeleted = include
	return q
}

func (q *PaperQuery) IncludesDeleted() bool {
	return q.includeDeleted
}

// OrderByCreatedDesc sorts newest first; id breaks ties so paging is stable.
func (q *PaperQuery) OrderByCreatedDesc() *PaperQuery {
	return q.with(NewestFirst{Table: "papers"})
}

func (q *PaperQuery) OrderByIdDesc() *PaperQuery {
	return q.with(OrderBy{Field: "papers.id", Desc: true})
}

// OrderByLikedDesc sorts by like recency. Requires LikedBy.
func (q *PaperQuery) OrderByLikedDesc() *PaperQuery {
	return q.with(OrderBy{Field: "greats.created_at", Desc: true}).
		with(OrderBy{Field: "papers.id", Desc: true})
}

func (q *PaperQuery) Page(page, size int) *PaperQuery {
	return q.with(Page(page, size))
}

func (q *PaperQuery) Limit(n int) *PaperQuery {
	return q.with(Limit{N: n})
}

func (q *PaperQuery) Apply(db *gorm.DB) *gorm.DB {
	if !q.includeDeleted {
		db = NotDeleted{Table: "papers"}.Apply(db)
	}
	for _, spec := range q.specs {
		db = spec.Apply(db)
	}
	return db
}

func StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

func EndOfDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
