package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/entity"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/pkg/nickname"
	"ustory-be/internal/pkg/token"
	"ustory-be/internal/repository/contract"
	"ustory-be/internal/repository/specification"
	"ustory-be/internal/repository/unitofwork"
	"ustory-be/pkg/naver"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	refreshKeyPrefix = "refresh:"
	naverKeyPrefix   = "naver:"
	stateKeyPrefix   = "naver-state:"

	oauthStateTTL        = 10 * time.Minute
	nicknameSuffixTries  = 5
	throwawayPasswordLen = 8
)

// NaverClient is satisfied by *naver.Client.
type NaverClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code, state string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, accessToken string) (*naver.Profile, error)
}

type INaverService interface {
	// SignUp provisions a NAVER user with a default personal diary in one transaction.
	SignUp(ctx context.Context, externalNickname, email string) (*entity.User, error)
	LogIn(ctx context.Context, email, naverToken string) (*dto.LoginResponse, error)
	// LogOut forgets the Naver token stored for accessToken. Unknown tokens are not an error.
	LogOut(ctx context.Context, accessToken string) error
	Exists(ctx context.Context, email string) (bool, error)

	LoginURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code, state string) (*dto.LoginResponse, error)
	// LoginWithToken signs up on first visit, then logs in.
	LoginWithToken(ctx context.Context, naverToken string) (*dto.LoginResponse, error)
}

type naverService struct {
	uowFactory    unitofwork.RepositoryFactory
	sessionStore  contract.SessionStore
	tokenProvider *token.Provider
	naverClient   NaverClient
	logger        logger.ILogger

	bcryptCost int
	nextTag    func() int
}

func NewNaverService(
	uowFactory unitofwork.RepositoryFactory,
	sessionStore contract.SessionStore,
	tokenProvider *token.Provider,
	naverClient NaverClient,
	logger logger.ILogger,
) INaverService {
	return &naverService{
		uowFactory:    uowFactory,
		sessionStore:  sessionStore,
		tokenProvider: tokenProvider,
		naverClient:   naverClient,
		logger:        logger,
		bcryptCost:    bcrypt.DefaultCost,
		nextTag:       nickname.RandomTag,
	}
}

func (s *naverService) SignUp(ctx context.Context, externalNickname, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.BadRequest("email is required")
	}

	passwordHash, err := s.throwawayPasswordHash()
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("failed to begin transaction", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	nick, err := s.uniqueNickname(ctx, uow, nickname.Format(externalNickname))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		Id:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         strings.TrimSpace(externalNickname),
		Nickname:     nick,
		PasswordHash: passwordHash,
		LoginType:    entity.LoginTypeNaver,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Name == "" {
		user.Name = nick
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("email or nickname already registered")
		}
		return nil, apperror.Internal("failed to create user", err)
	}

	diary := &entity.Diary{
		Id:          uuid.Must(uuid.NewV7()),
		Name:        fmt.Sprintf("%s's diary", nick),
		Description: fmt.Sprintf("%s's personal diary", nick),
		Category:    entity.DiaryCategoryIndividual,
		Color:       entity.DiaryColorRed,
		CreatedAt:   now,
	}
	if err := uow.DiaryRepository().Create(ctx, diary); err != nil {
		return nil, apperror.Internal("failed to create default diary", err)
	}
	if err := uow.DiaryRepository().AddMember(ctx, &entity.DiaryUser{DiaryId: diary.Id, UserId: user.Id}); err != nil {
		return nil, apperror.Internal("failed to add diary member", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal("failed to commit signup", err)
	}
	committed = true

	s.logger.Info("NaverService", "User signed up", map[string]interface{}{
		"user_id":  user.Id.String(),
		"diary_id": diary.Id.String(),
	})
	return user, nil
}

func (s *naverService) throwawayPasswordHash() (string, error) {
	password := uuid.NewString()[:throwawayPasswordLen]
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// uniqueNickname returns base when free, otherwise base with a "#0000" tag.
func (s *naverService) uniqueNickname(ctx context.Context, uow unitofwork.UnitOfWork, base string) (string, error) {
	candidate := base
	for attempt := 0; attempt <= nicknameSuffixTries; attempt++ {
		if attempt > 0 {
			candidate = nickname.WithSuffix(base, s.nextTag())
		}
		taken, err := uow.UserRepository().Count(ctx, specification.ByNickname{Nickname: candidate})
		if err != nil {
			return "", apperror.Internal("failed to check nickname", err)
		}
		if taken == 0 {
			return candidate, nil
		}
	}
	return "", apperror.Conflict("could not find a free nickname")
}

func (s *naverService) LogIn(ctx context.Context, email, naverToken string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.TrimSpace(email)})
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	userID := user.Id.String()
	loginType := string(user.LoginType)
	accessToken, err := s.tokenProvider.GenerateAccessToken(userID, loginType)
	if err != nil {
		return nil, apperror.Internal("failed to issue access token", err)
	}
	refreshToken, err := s.tokenProvider.GenerateRefreshToken(userID, loginType)
	if err != nil {
		return nil, apperror.Internal("failed to issue refresh token", err)
	}

	session, err := json.Marshal(dto.RefreshSession{UserId: userID, AccessToken: accessToken})
	if err != nil {
		return nil, apperror.Internal("failed to encode session", err)
	}
	ttl := s.tokenProvider.RefreshTTL()
	if err := s.sessionStore.Save(ctx, refreshKeyPrefix+refreshToken, string(session), ttl); err != nil {
		return nil, apperror.Internal("failed to store refresh session", err)
	}
	if err := s.sessionStore.Save(ctx, naverKeyPrefix+accessToken, naverToken, ttl); err != nil {
		return nil, apperror.Internal("failed to store naver token", err)
	}

	s.logger.Info("NaverService", "User logged in", map[string]interface{}{"user_id": userID})
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *naverService) LogOut(ctx context.Context, accessToken string) error {
	if err := s.sessionStore.Remove(ctx, naverKeyPrefix+accessToken); err != nil {
		return apperror.Internal("failed to remove naver token", err)
	}
	return nil
}

func (s *naverService) Exists(ctx context.Context, email string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.UserRepository().Count(ctx, specification.ByEmail{Email: strings.TrimSpace(email)})
	if err != nil {
		return false, apperror.Internal("failed to look up user", err)
	}
	return count > 0, nil
}

func (s *naverService) LoginURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.sessionStore.Save(ctx, stateKeyPrefix+state, "1", oauthStateTTL); err != nil {
		return "", apperror.Internal("failed to store oauth state", err)
	}
	return s.naverClient.AuthCodeURL(state), nil
}

func (s *naverService) HandleCallback(ctx context.Context, code, state string) (*dto.LoginResponse, error) {
	_, ok, err := s.sessionStore.Take(ctx, stateKeyPrefix+state)
	if err != nil {
		return nil, apperror.Internal("failed to consume oauth state", err)
	}
	if !ok {
		return nil, apperror.Unauthorized("invalid oauth state")
	}

	tok, err := s.naverClient.Exchange(ctx, code, state)
	if err != nil {
		s.logger.Warn("NaverService", "Code exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Unauthorized("naver authorization failed")
	}
	return s.LoginWithToken(ctx, tok.AccessToken)
}

func (s *naverService) LoginWithToken(ctx context.Context, naverToken string) (*dto.LoginResponse, error) {
	profile, err := s.naverClient.FetchProfile(ctx, naverToken)
	if err != nil {
		if errors.Is(err, naver.ErrInvalidToken) {
			return nil, apperror.Unauthorized("invalid naver token")
		}
		return nil, apperror.Internal("failed to fetch naver profile", err)
	}

	exists, err := s.Exists(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if !exists {
		name := profile.Nickname
		if name == "" {
			name = profile.Name
		}
		// A concurrent first login may have created the account already.
		if _, err := s.SignUp(ctx, name, profile.Email); err != nil && !apperror.Is(err, apperror.KindConflict) {
			return nil, err
		}
	}
	return s.LogIn(ctx, profile.Email, naverToken)
}
