package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/entity"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/repository/specification"
	"ustory-be/internal/repository/unitofwork"
	"ustory-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventPublisher is satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IGreatService interface {
	Like(ctx context.Context, userId, paperId uuid.UUID) error
	Unlike(ctx context.Context, userId, paperId uuid.UUID) error
	IsLiked(ctx context.Context, userId, paperId uuid.UUID) (*dto.GreatStatusResponse, error)
	CountLikes(ctx context.Context, paperId uuid.UUID) (*dto.GreatCountResponse, error)
	// ListLikedPapers returns the user's liked papers, most recent like first.
	ListLikedPapers(ctx context.Context, userId uuid.UUID, page, size int) ([]*dto.PaperResponse, error)
}

type greatService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
	logger         logger.ILogger
}

// NewGreatService accepts a nil publisher; likes then raise no notices.
func NewGreatService(uowFactory unitofwork.RepositoryFactory, eventPublisher EventPublisher, logger logger.ILogger) IGreatService {
	return &greatService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *greatService) Like(ctx context.Context, userId, paperId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paper, err := uow.PaperRepository().FindOne(ctx,
		specification.ByID{Table: "papers", ID: paperId},
		specification.NewPaperQuery(),
	)
	if err != nil {
		return apperror.Internal("failed to load paper", err)
	}
	if paper == nil {
		return apperror.NotFound("paper not found")
	}

	great := &entity.Great{
		Id:        uuid.Must(uuid.NewV7()),
		UserId:    userId,
		PaperId:   paperId,
		CreatedAt: time.Now().UTC(),
	}
	// The unique index on (user_id, paper_id) decides concurrent duplicates.
	if err := uow.GreatRepository().Create(ctx, great); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("paper already liked")
		}
		return apperror.Internal("failed to save like", err)
	}

	s.logger.Info("GreatService", "Paper liked", map[string]interface{}{
		"user_id":  userId.String(),
		"paper_id": paperId.String(),
	})
	s.notifyWriter(ctx, userId, paper)
	return nil
}

func (s *greatService) notifyWriter(ctx context.Context, userId uuid.UUID, paper *entity.Paper) {
	if s.eventPublisher == nil || paper.WriterId == userId {
		return
	}

	evt := events.BaseEvent{
		Type: events.TypeNoticeCreated,
		Data: map[string]interface{}{
			"recipient_id": paper.WriterId.String(),
			"sender_id":    userId.String(),
			"type":         string(entity.NoticeTypeRecord),
			"paper_id":     paper.Id.String(),
			"message":      fmt.Sprintf("Someone liked your paper %q", paper.Title),
			"reason":       "GREAT",
		},
		OccurredAt: time.Now().UTC(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("GreatService", "Failed to publish like notice", map[string]interface{}{
			"paper_id": paper.Id.String(),
			"error":    err.Error(),
		})
	}
}

func (s *greatService) Unlike(ctx context.Context, userId, paperId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.GreatRepository().Delete(ctx, specification.ByUserAndPaper{UserID: userId, PaperID: paperId})
	if err != nil {
		return apperror.Internal("failed to remove like", err)
	}
	if deleted == 0 {
		return apperror.NotFound("like not found")
	}

	s.logger.Info("GreatService", "Paper unliked", map[string]interface{}{
		"user_id":  userId.String(),
		"paper_id": paperId.String(),
	})
	return nil
}

func (s *greatService) IsLiked(ctx context.Context, userId, paperId uuid.UUID) (*dto.GreatStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.GreatRepository().Exists(ctx, specification.ByUserAndPaper{UserID: userId, PaperID: paperId})
	if err != nil {
		return nil, apperror.Internal("failed to check like", err)
	}
	return &dto.GreatStatusResponse{IsGreat: exists}, nil
}

func (s *greatService) CountLikes(ctx context.Context, paperId uuid.UUID) (*dto.GreatCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.GreatRepository().Count(ctx, specification.GreatsOfPaper{PaperID: paperId})
	if err != nil {
		return nil, apperror.Internal("failed to count likes", err)
	}
	return &dto.GreatCountResponse{CountGreat: count}, nil
}

func (s *greatService) ListLikedPapers(ctx context.Context, userId uuid.UUID, page, size int) ([]*dto.PaperResponse, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	papers, err := uow.PaperRepository().FindAll(ctx, specification.NewPaperQuery().
		LikedBy(userId).
		OrderByLikedDesc().
		Page(page, size),
	)
	if err != nil {
		return nil, apperror.Internal("failed to list liked papers", err)
	}
	return toPaperResponses(papers), nil
}
