package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/blackcobradev90/waterLillyDemo/internal/app/router"
	authadapters "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/adapters"
	authhandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/transport/handler"
	authusecase "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/usecase"
	intakeadapters "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/adapters"
	intakehandler "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/transport/handler"
	intakeusecase "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/usecase"
	"github.com/blackcobradev90/waterLillyDemo/internal/platform/cache"
	"github.com/blackcobradev90/waterLillyDemo/internal/platform/config"
	infradb "github.com/blackcobradev90/waterLillyDemo/internal/platform/db"
	jwtmw "github.com/blackcobradev90/waterLillyDemo/internal/platform/jwt"
	infraredis "github.com/blackcobradev90/waterLillyDemo/internal/platform/redis"
	"github.com/blackcobradev90/waterLillyDemo/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis is optional; without it the review reads go straight to the store.
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	formRepo := intakeadapters.NewFormPostgres(db)
	cachedFormRepo := cache.NewCachingFormRepository(rdb, cfg.CacheTTL, formRepo, "userforms")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen, cfg.QueryTimeout)
	intakeUC := intakeusecase.NewIntakeUsecase(cachedFormRepo, cfg.QueryTimeout)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	intakeH := intakehandler.NewIntakeHandler(intakeUC)

	// 10 auth attempts per client per minute.
	authLimiter := ratelimiter.NewLimiter(10, time.Minute)

	r := router.NewRouter(cfg.CORSAllowOrigins, authH, intakeH, authLimiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
