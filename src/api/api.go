package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/truthlens/truthlens/src/api/config"
	"github.com/truthlens/truthlens/src/api/data"
	"github.com/truthlens/truthlens/src/api/types"
	"github.com/truthlens/truthlens/src/api/webserver"
	"gorm.io/gorm"
)

var allModels = []interface{}{
	&types.Detection{},
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(allModels...)

	if err == nil {
		return
	}

	log.Printf("auto‑migrate failed (%v) – dropping & recreating schema", err)
	_ = db.Migrator().DropTable("detections")
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("migrate after drop: %v", err)
	}
}

func main() {
	cfg := config.Load()

	db := data.MustMySQL(cfg.MySQLDSN)
	migrate(db)

	rdb := data.MustRedis(cfg.RedisURL)

	router := webserver.New(cfg, db, rdb)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	if cfg.BackendURL != "" {
		log.Printf("TruthLens API listening on %s (ML backend %s)", cfg.Port, cfg.BackendURL)
	} else {
		log.Printf("TruthLens API listening on %s (heuristic engine only)", cfg.Port)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
