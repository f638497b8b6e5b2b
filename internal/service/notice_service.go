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

type INoticeService interface {
	// ListByUser returns every notice of the user, newest first.
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.NoticeResponse, error)
	// DeleteByID fails with NotFound when nothing was deleted, including on a repeat call.
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
}

type noticeService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNoticeService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) INoticeService {
	return &noticeService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *noticeService) ListByUser(ctx context.Context, userId uuid.UUID) ([]*dto.NoticeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notices, err := uow.NoticeRepository().FindAll(ctx,
		specification.ByRecipient{RecipientID: userId},
		specification.NewestFirst{Table: "notices"},
	)
	if err != nil {
		return nil, apperror.Internal("failed to list notices", err)
	}

	res := make([]*dto.NoticeResponse, len(notices))
	for i, n := range notices {
		res[i] = toNoticeResponse(n)
	}
	return res, nil
}

func (s *noticeService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.NoticeRepository().DeleteByID(ctx, id)
	if err != nil {
		return apperror.Internal("failed to delete notice", err)
	}
	if deleted == 0 {
		return apperror.NotFound("notice not found")
	}

	s.logger.Info("NoticeService", "Notice deleted", map[string]interface{}{"notice_id": id.String()})
	return nil
}

func (s *noticeService) Create(ctx context.Context, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	noticeType := entity.NoticeType(req.Type)
	if !noticeType.Valid() {
		return nil, apperror.BadRequest("unknown notice type " + req.Type)
	}
	if noticeType.Navigable() && req.PaperId == nil {
		return nil, apperror.BadRequest("paper_id is required for " + req.Type + " notices")
	}
	if !noticeType.Navigable() && req.PaperId != nil {
		return nil, apperror.BadRequest("paper_id must be empty for " + req.Type + " notices")
	}

	notice := &entity.Notice{
		Id:          uuid.Must(uuid.NewV7()),
		RecipientId: req.RecipientId,
		SenderId:    req.SenderId,
		Type:        noticeType,
		PaperId:     req.PaperId,
		Message:     req.Message,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now().UTC(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoticeRepository().Create(ctx, notice); err != nil {
		return nil, apperror.Internal("failed to save notice", err)
	}

	s.logger.Info("NoticeService", "Notice created", map[string]interface{}{
		"notice_id":    notice.Id.String(),
		"recipient_id": notice.RecipientId.String(),
		"type":         req.Type,
	})
	return toNoticeResponse(notice), nil
}

func toNoticeResponse(n *entity.Notice) *dto.NoticeResponse {
	res := &dto.NoticeResponse{
		Id:        n.Id,
		Type:      string(n.Type),
		SenderId:  n.SenderId,
		Message:   n.Message,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
	if n.Type.Navigable() {
		res.PaperId = n.PaperId
	}
	return res
}
