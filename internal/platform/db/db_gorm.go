// Package db opens the gorm connection used by every repository.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "github.com/blackcobradev90/waterLillyDemo/internal/feature/auth/domain/entity"
	intakeentity "github.com/blackcobradev90/waterLillyDemo/internal/feature/intake/domain/entity"
	"github.com/blackcobradev90/waterLillyDemo/internal/platform/config"
)

// OpenDB connects to postgres, retrying for up to a minute so the server
// survives the database coming up after it. TranslateError lets the driver
// report duplicate keys as gorm.ErrDuplicatedKey.
func OpenDB(cfg config.Config) *gorm.DB {
	dsn := cfg.DatabaseDSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&intakeentity.UserForm{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
