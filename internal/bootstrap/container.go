package bootstrap

import (
	"context"
	"log"
	"time"

	"ustory-be/internal/config"
	"ustory-be/internal/controller"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/pkg/token"
	"ustory-be/internal/repository/cache"
	"ustory-be/internal/repository/contract"
	"ustory-be/internal/repository/memory"
	"ustory-be/internal/repository/unitofwork"
	"ustory-be/internal/service"
	"ustory-be/pkg/naver"

	pktNats "ustory-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const sessionCleanupInterval = 10 * time.Minute

type Container struct {
	// Controllers
	PaperController  controller.IPaperController
	GreatController  controller.IGreatController
	NoticeController controller.INoticeController
	NaverController  controller.INaverController

	// Background consumer; Subscriber is nil when NATS is unreachable.
	NoticeConsumer *service.NoticeConsumer
	Subscriber     *pktNats.Subscriber

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	sessionStore := newSessionStore(ctx, cfg.App.RedisURL, c)

	var publisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(ctx, cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	natsSub, err := pktNats.NewSubscriber(ctx, cfg.App.NatsURL, eventLogger)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		c.Subscriber = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	tokenProvider := token.NewProvider(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	naverClient := naver.NewClient(naver.Config{
		ClientID:     cfg.Naver.ClientID,
		ClientSecret: cfg.Naver.ClientSecret,
		RedirectURL:  cfg.Naver.RedirectURL,
	})

	// 3. Services
	paperService := service.NewPaperService(uowFactory, cfg.App.MaxUnboundedResults, sysLogger)
	greatService := service.NewGreatService(uowFactory, publisher, sysLogger)
	noticeService := service.NewNoticeService(uowFactory, sysLogger)
	naverService := service.NewNaverService(uowFactory, sessionStore, tokenProvider, naverClient, sysLogger)

	c.NoticeConsumer = service.NewNoticeConsumer(noticeService, eventLogger)

	// 4. Controllers
	auth := serverutils.NewJwtMiddleware(tokenProvider)

	c.PaperController = controller.NewPaperController(paperService, auth, cfg.App.Location())
	c.GreatController = controller.NewGreatController(greatService, auth)
	c.NoticeController = controller.NewNoticeController(noticeService, auth)
	c.NaverController = controller.NewNaverController(naverService, auth)

	c.closers = append(c.closers, func() { _ = sysLogger.Sync() }, func() { _ = eventLogger.Sync() })
	return c
}

// Close releases broker connections and flushes loggers, newest first.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// newSessionStore prefers Redis and falls back to the in-process cache when
// Redis is unset or unreachable. The fallback does not survive restarts.
func newSessionStore(ctx context.Context, redisURL string, c *Container) contract.SessionStore {
	if redisURL == "" {
		log.Println("[INFO] REDIS_URL not set, using in-memory session store")
		return memory.NewSessionRepository(sessionCleanupInterval)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory session store", err)
		_ = rdb.Close()
		return memory.NewSessionRepository(sessionCleanupInterval)
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return cache.NewRedisSessionStore(rdb)
}
