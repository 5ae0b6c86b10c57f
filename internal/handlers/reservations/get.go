package reservations

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-server/internal/db"
)

// Get returns a single reservation by id. The path parameter is passed
// straight to a parameterized query; a non-numeric id simply matches no row.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	var r db.Reservation
	if err := h.db.Get(&r, "SELECT * FROM reservas WHERE id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Reserva no encontrada"})
			return
		}
		log.Printf("get reserva %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo obtener la reserva"})
		return
	}
	c.JSON(http.StatusOK, r)
}
