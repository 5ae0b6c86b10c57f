package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reservas-server/internal/config"
	"reservas-server/internal/db"
	"reservas-server/internal/handlers/reservations"
	"reservas-server/internal/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	d, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer d.Close()

	if err := db.EnsureSchema(d); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	r.Use(limiter.Middleware())

	resH := reservations.New(d)

	r.GET("/reservas", resH.List)
	r.GET("/reserva/:id", resH.Get)
	r.POST("/guardar-reserva", resH.Create)
	r.PUT("/actualizar-reserva/:id", resH.Update)
	r.DELETE("/eliminar-reserva/:id", resH.Delete)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Static assets (booking form, etc.) are served for any path no API
	// route claims.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
