package service

import (
	"context"
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/entity"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/repository/specification"
	"ustory-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPaperService interface {
	// FindByDiaryAndDateRange pages a diary's papers created at or before cursor.
	// startDate and endDate are optional and inclusive over whole days.
	FindByDiaryAndDateRange(ctx context.Context, diaryId uuid.UUID, cursor time.Time, page, size int, startDate, endDate *time.Time) ([]*dto.PaperResponse, error)
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*dto.PaperResponse, error)
	FindByWriter(ctx context.Context, writerId uuid.UUID, cursor time.Time, page, size int) ([]*dto.PaperResponse, error)
	// FindByAddress does not filter soft-deleted papers.
	FindByAddress(ctx context.Context, city, store string) ([]*dto.PaperResponse, error)
}

type paperService struct {
	uowFactory     unitofwork.RepositoryFactory
	maxUnboundedRs int
	logger         logger.ILogger
}

func NewPaperService(uowFactory unitofwork.RepositoryFactory, maxUnboundedResults int, logger logger.ILogger) IPaperService {
	return &paperService{
		uowFactory:     uowFactory,
		maxUnboundedRs: maxUnboundedResults,
		logger:         logger,
	}
}

func validatePage(page, size int) error {
	if page < 1 {
		return apperror.BadRequest("page must be at least 1")
	}
	if size < 1 || size > serverutils.MaxPageSize {
		return apperror.BadRequest("size must be between 1 and 100")
	}
	return nil
}

func (s *paperService) find(ctx context.Context, query *specification.PaperQuery) ([]*dto.PaperResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	papers, err := uow.PaperRepository().FindAll(ctx, query)
	if err != nil {
		return nil, apperror.Internal("failed to query papers", err)
	}
	return toPaperResponses(papers), nil
}

func (s *paperService) FindByDiaryAndDateRange(ctx context.Context, diaryId uuid.UUID, cursor time.Time, page, size int, startDate, endDate *time.Time) ([]*dto.PaperResponse, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	query := specification.NewPaperQuery().
		InDiary(diaryId).
		CreatedAtOrBefore(cursor).
		CreatedOnOrAfter(startDate).
		CreatedOnOrBefore(endDate).
		OrderByCreatedDesc().
		Page(page, size)
	return s.find(ctx, query)
}

func (s *paperService) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*dto.PaperResponse, error) {
	query := specification.NewPaperQuery().
		InDiariesOf(userId).
		OrderByCreatedDesc().
		Limit(s.maxUnboundedRs)

	res, err := s.find(ctx, query)
	if err == nil && s.maxUnboundedRs > 0 && len(res) == s.maxUnboundedRs {
		s.logger.Warn("PaperService", "Member paper listing truncated", map[string]interface{}{
			"user_id": userId.String(),
			"limit":   s.maxUnboundedRs,
		})
	}
	return res, err
}

func (s *paperService) FindByWriter(ctx context.Context, writerId uuid.UUID, cursor time.Time, page, size int) ([]*dto.PaperResponse, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	query := specification.NewPaperQuery().
		WrittenBy(writerId).
		CreatedAtOrBefore(cursor).
		OrderByCreatedDesc().
		Page(page, size)
	return s.find(ctx, query)
}

func (s *paperService) FindByAddress(ctx context.Context, city, store string) ([]*dto.PaperResponse, error) {
	// Soft-deleted papers stay in the recommendation listing.
	// TODO: decide with the product owner whether recommendations should hide deleted papers.
	query := specification.NewPaperQuery().
		IncludeDeleted(true).
		AtAddress(city, store).
		OrderByIdDesc().
		Limit(s.maxUnboundedRs)
	return s.find(ctx, query)
}

func toPaperResponse(p *entity.Paper) *dto.PaperResponse {
	return &dto.PaperResponse{
		Id:              p.Id,
		DiaryId:         p.DiaryId,
		WriterId:        p.WriterId,
		AddressId:       p.AddressId,
		Title:           p.Title,
		ThumbnailImgURL: p.ThumbnailImgURL,
		CreatedAt:       p.CreatedAt,
		IsDeleted:       p.IsDeleted,
	}
}

func toPaperResponses(papers []*entity.Paper) []*dto.PaperResponse {
	res := make([]*dto.PaperResponse, len(papers))
	for i, p := range papers {
		res[i] = toPaperResponse(p)
	}
	return res
}
