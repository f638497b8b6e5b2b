package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDiaryID struct {
	DiaryID uuid.UUID
}

func (s ByDiaryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("papers.diary_id = ?", s.DiaryID)
}

type ByWriterID struct {
	WriterID uuid.UUID
}

func (s ByWriterID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("papers.writer_id = ?", s.WriterID)
}

// CreatedAtOrAfter is inclusive.
type CreatedAtOrAfter struct {
	Time time.Time
}

func (s CreatedAtOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("papers.created_at >= ?", s.Time.UTC())
}

// CreatedAtOrBefore is inclusive.
type CreatedAtOrBefore struct {
	Time time.Time
}

func (s CreatedAtOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("papers.created_at <= ?", s.Time.UTC())
}

// InDiariesOfMember keeps papers whose diary has the user as a member.
type InDiariesOfMember struct {
	UserID uuid.UUID
}

func (s InDiariesOfMember) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("papers.diary_id IN (SELECT diary_users.diary_id FROM diary_users WHERE diary_users.user_id = ?)", s.UserID)
}

type AtAddress struct {
	City  string
	Store string
}

func (s AtAddress) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN addresses ON addresses.id = papers.address_id").
		Where("addresses.city = ? AND addresses.store = ?", s.City, s.Store)
}

// LikedBy joins the user's greats; pair with OrderBy{Field: "greats.created_at"} for like recency.
type LikedBy struct {
	UserID uuid.UUID
}

func (s LikedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN greats ON greats.paper_id = papers.id").
		Where("greats.user_id = ?", s.UserID)
}

// Great Specs

type ByUserAndPaper struct {
	UserID  uuid.UUID
	PaperID uuid.UUID
}

func (s ByUserAndPaper) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("greats.user_id = ? AND greats.paper_id = ?", s.UserID, s.PaperID)
}

type GreatsOfPaper struct {
	PaperID uuid.UUID
}

func (s GreatsOfPaper) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("greats.paper_id = ?", s.PaperID)
}

// Notice Specs

type ByRecipient struct {
	RecipientID uuid.UUID
}

func (s ByRecipient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notices.recipient_id = ?", s.RecipientID)
}
