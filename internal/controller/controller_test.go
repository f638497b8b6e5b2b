package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/entity"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/pkg/token"
	"ustory-be/internal/repository/implementation"
	"ustory-be/internal/repository/memory"
	"ustory-be/internal/repository/unitofwork"
	"ustory-be/internal/service"
	"ustory-be/internal/testutil"
	"ustory-be/pkg/naver"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type stubNaver struct{}

func (stubNaver) AuthCodeURL(state string) string { return "https://nid.naver.com/authorize?state=" + state }

func (stubNaver) Exchange(context.Context, string, string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "naver-token"}, nil
}

func (stubNaver) FetchProfile(_ context.Context, tok string) (*naver.Profile, error) {
	if tok != "naver-token" {
		return nil, naver.ErrInvalidToken
	}
	return &naver.Profile{Email: "minsu@example.com", Nickname: "Minsu"}, nil
}

type testServer struct {
	app      *fiber.App
	db       *gorm.DB
	provider *token.Provider
}

func newTestServer(t *testing.T) *testServer {
	db := testutil.NewDB(t)
	log := logger.NewNopLogger()
	uow := unitofwork.NewRepositoryFactory(db)
	provider := token.NewProvider("secret", time.Hour, 7*24*time.Hour)
	auth := serverutils.NewJwtMiddleware(provider)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(log)})
	api := app.Group("/api")
	NewGreatController(service.NewGreatService(uow, nil, log), auth).RegisterRoutes(api)
	NewNoticeController(service.NewNoticeService(uow, log), auth).RegisterRoutes(api)
	NewPaperController(service.NewPaperService(uow, 500, log), auth, time.UTC).RegisterRoutes(api)
	NewNaverController(service.NewNaverService(uow, memory.NewSessionRepository(time.Minute), provider, stubNaver{}, log), auth).RegisterRoutes(api)

	return &testServer{app: app, db: db, provider: provider}
}

func (s *testServer) do(t *testing.T, method, path, bearer, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (s *testServer) seedPaper(t *testing.T) (*entity.User, *entity.Paper) {
	ctx := context.Background()
	user := &entity.User{Id: uuid.New(), Email: "w@example.com", Name: "w", Nickname: "w", PasswordHash: "x", LoginType: entity.LoginTypeBasic}
	require.NoError(t, implementation.NewUserRepository(s.db).Create(ctx, user))
	diary := &entity.Diary{Id: uuid.New(), Name: "d", Category: entity.DiaryCategoryIndividual, Color: entity.DiaryColorRed}
	require.NoError(t, implementation.NewDiaryRepository(s.db).Create(ctx, diary))
	require.NoError(t, implementation.NewDiaryRepository(s.db).AddMember(ctx, &entity.DiaryUser{DiaryId: diary.Id, UserId: user.Id}))
	paper := &entity.Paper{Id: uuid.New(), DiaryId: diary.Id, WriterId: user.Id, Title: "t", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	require.NoError(t, implementation.NewPaperRepository(s.db).Create(ctx, paper))
	return user, paper
}

func decodeBody[T any](t *testing.T, resp *http.Response) serverutils.BaseResponse[T] {
	var body serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGreatEndpoints(t *testing.T) {
	s := newTestServer(t)
	user, paper := s.seedPaper(t)
	access, err := s.provider.GenerateAccessToken(user.Id.String(), "BASIC")
	require.NoError(t, err)
	base := "/api/papers/" + paper.Id.String()

	assert.Equal(t, fiber.StatusUnauthorized, s.do(t, "POST", base+"/great", "", "").StatusCode)
	assert.Equal(t, fiber.StatusCreated, s.do(t, "POST", base+"/great", access, "").StatusCode)
	assert.Equal(t, fiber.StatusConflict, s.do(t, "POST", base+"/great", access, "").StatusCode)

	status := decodeBody[dto.GreatStatusResponse](t, s.do(t, "GET", base+"/great", access, ""))
	assert.True(t, status.Success)
	assert.True(t, status.Data.IsGreat)

	count := decodeBody[dto.GreatCountResponse](t, s.do(t, "GET", base+"/count", "", ""))
	assert.Equal(t, int64(1), count.Data.CountGreat)

	liked := decodeBody[[]dto.PaperResponse](t, s.do(t, "GET", "/api/papers/greats?page=1&size=20", access, ""))
	require.Len(t, liked.Data, 1)
	assert.Equal(t, paper.Id, liked.Data[0].Id)

	assert.Equal(t, fiber.StatusBadRequest, s.do(t, "GET", "/api/papers/greats?page=0", access, "").StatusCode)
	assert.Equal(t, fiber.StatusNoContent, s.do(t, "DELETE", base+"/great", access, "").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, s.do(t, "DELETE", base+"/great", access, "").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, s.do(t, "POST", "/api/papers/"+uuid.NewString()+"/great", access, "").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, s.do(t, "POST", "/api/papers/not-an-id/great", access, "").StatusCode)
}

func TestPaperEndpoints(t *testing.T) {
	s := newTestServer(t)
	user, paper := s.seedPaper(t)
	access, err := s.provider.GenerateAccessToken(user.Id.String(), "BASIC")
	require.NoError(t, err)
	today := time.Now().UTC().Format(civilDateLayout)

	mine := decodeBody[[]dto.PaperResponse](t, s.do(t, "GET", "/api/papers/mine", access, ""))
	require.Len(t, mine.Data, 1)
	assert.Equal(t, paper.Id, mine.Data[0].Id)

	diary := decodeBody[[]dto.PaperResponse](t, s.do(t, "GET",
		"/api/papers/diaries/"+paper.DiaryId.String()+"?startDate=2000-01-01&endDate="+today, access, ""))
	assert.Len(t, diary.Data, 1)

	old := decodeBody[[]dto.PaperResponse](t, s.do(t, "GET",
		"/api/papers/writers/"+user.Id.String()+"?requestTime=2000-01-01T00:00:00Z", access, ""))
	assert.Empty(t, old.Data)

	assert.Equal(t, fiber.StatusBadRequest, s.do(t, "GET", "/api/papers/diaries/"+paper.DiaryId.String()+"?startDate=01/02/2024", access, "").StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, s.do(t, "GET", "/api/papers/recommend?city=Seoul", access, "").StatusCode)
}

func TestNaverLoginAndLogout(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/naver/login", "", `{"accessToken":"naver-token"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, body.Data.RefreshToken)
	assert.Equal(t, "Bearer "+body.Data.AccessToken, resp.Header.Get("Authorization"))

	assert.Equal(t, fiber.StatusUnauthorized, s.do(t, "POST", "/api/naver/login", "", `{"accessToken":"forged"}`).StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, s.do(t, "POST", "/api/naver/login", "", `{}`).StatusCode)

	assert.Equal(t, fiber.StatusNoContent, s.do(t, "POST", "/api/naver/logout", body.Data.AccessToken, "").StatusCode)
	assert.Equal(t, fiber.StatusNoContent, s.do(t, "POST", "/api/naver/logout", body.Data.AccessToken, "").StatusCode)

	redirect := s.do(t, "GET", "/api/naver/login", "", "")
	assert.Equal(t, fiber.StatusTemporaryRedirect, redirect.StatusCode)
	assert.Contains(t, redirect.Header.Get("Location"), "state=")
}

func TestNoticeEndpoints(t *testing.T) {
	s := newTestServer(t)
	user, _ := s.seedPaper(t)
	access, err := s.provider.GenerateAccessToken(user.Id.String(), "BASIC")
	require.NoError(t, err)
	notice := &entity.Notice{Id: uuid.New(), RecipientId: user.Id, Type: entity.NoticeTypeFriend, Message: "hi", CreatedAt: time.Now().UTC()}
	require.NoError(t, implementation.NewNoticeRepository(s.db).Create(context.Background(), notice))

	list := decodeBody[[]dto.NoticeResponse](t, s.do(t, "GET", "/api/notice/notices", access, ""))
	require.Len(t, list.Data, 1)
	assert.Nil(t, list.Data[0].PaperId)

	assert.Equal(t, fiber.StatusNoContent, s.do(t, "DELETE", "/api/notice/"+notice.Id.String(), access, "").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, s.do(t, "DELETE", "/api/notice/"+notice.Id.String(), access, "").StatusCode)
}
