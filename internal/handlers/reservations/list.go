package reservations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-server/internal/db"
)

// List returns at most 10 reservations in storage-native order.
func (h *Handler) List(c *gin.Context) {
	rows := []db.Reservation{}
	if err := h.db.Select(&rows, "SELECT * FROM reservas LIMIT 10"); err != nil {
		log.Printf("list reservas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudieron obtener las reservas"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
