package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cecepns/rnstore/internal/config"
	mydb "github.com/cecepns/rnstore/internal/db"
	"github.com/cecepns/rnstore/internal/handlers"
	"github.com/cecepns/rnstore/internal/uploads"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	db := mydb.MustOpen(cfg.DBDSN)
	if err := mydb.Migrate(db); err != nil {
		log.Fatalw("migration failed", "err", err)
	}
	if err := mydb.Seed(db); err != nil {
		log.Fatalw("seeding failed", "err", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	store, err := uploads.NewStore(cfg.UploadDir, log)
	if err != nil {
		log.Fatalw("upload dir unavailable", "dir", cfg.UploadDir, "err", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	// раздача загруженных картинок
	r.Static("/uploads", store.Dir())

	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h := handlers.New(db, store, log, cfg)
	h.RegisterRoutes(r)

	log.Infof("Server listening on :%s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
