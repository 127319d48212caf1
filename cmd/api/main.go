package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dommestudio/lash-studio-api/internal/audit"
	"github.com/dommestudio/lash-studio-api/internal/config"
	dbpkg "github.com/dommestudio/lash-studio-api/internal/db"
	"github.com/dommestudio/lash-studio-api/internal/reminder"
	"github.com/dommestudio/lash-studio-api/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	store := dbpkg.NewStore(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, cfg)

	if cfg.TwilioAccountSID != "" {
		dispatcher := audit.NewDispatcher(audit.New(store))
		svc := reminder.NewService(store, reminder.NewTwilioNotifier(cfg), dispatcher)
		svc.StartScheduler()
	}

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
