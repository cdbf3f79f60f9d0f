package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/clubwallet/clubwallet/internal/accesskey"
	"github.com/clubwallet/clubwallet/internal/config"
	"github.com/clubwallet/clubwallet/internal/coupon"
	"github.com/clubwallet/clubwallet/internal/ledger"
	"github.com/clubwallet/clubwallet/internal/logging"
	"github.com/clubwallet/clubwallet/internal/member"
	"github.com/clubwallet/clubwallet/internal/middleware"
	"github.com/clubwallet/clubwallet/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a
// database the service falls back to in-memory stores, which is only
// acceptable in development.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	if d.Logger == nil {
		d.Logger = logging.Discard()
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Timeout(d.Cfg.StoreTimeout))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)

	// Repositories
	var (
		memberRepo member.Repository
		walletRepo wallet.Repository
		couponRepo coupon.Repository
		keyRepo    accesskey.Repository
	)
	if d.DB != nil {
		memberRepo = member.NewPostgresRepository(d.DB)
		walletRepo = wallet.NewPostgresRepository(d.DB)
		couponRepo = coupon.NewPostgresRepository(d.DB)
		keyRepo = accesskey.NewPostgresRepository(d.DB)
	} else {
		memberRepo = member.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
		couponRepo = coupon.NewMemoryRepository()
		keyRepo = accesskey.NewMemoryRepository()
	}

	// Services
	walletCache := wallet.NewCache(d.Cache, d.Cfg.WalletCacheTTL)
	memberSvc := member.NewService(memberRepo)
	walletSvc := wallet.NewService(walletRepo, memberRepo, walletCache)
	couponSvc := coupon.NewService(couponRepo)
	keySvc := accesskey.NewService(keyRepo, d.Cfg.AccessKeyTTL)
	engine := ledger.NewEngine(walletRepo, memberRepo, couponSvc, walletCache, d.Logger)

	// Handlers
	memberHandler := member.NewHandler(memberSvc)
	walletHandler := wallet.NewHandler(walletSvc)
	ledgerHandler := ledger.NewHandler(engine)
	keyHandler := accesskey.NewHandler(keySvc, d.Cfg.ClubSecret)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	api.Post("/access-keys", keyHandler.Mint)

	protected := api.Group("")
	if d.Cfg.RequireAuth {
		protected = api.Group("", middleware.AccessKey(keySvc, accesskey.RoleOperator, accesskey.RoleAdmin))
	}
	protected.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		protected.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterMemberRoutes(protected, memberHandler)
	RegisterWalletRoutes(protected, walletHandler, ledgerHandler)

	return nil
}
