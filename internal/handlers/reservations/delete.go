package reservations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Delete removes a reservation by id.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	res, err := h.db.Exec("DELETE FROM reservas WHERE id=?", id)
	if err != nil {
		log.Printf("delete reserva %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo eliminar la reserva"})
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Printf("delete reserva %s: rows affected: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo eliminar la reserva"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Reserva no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva eliminada correctamente"})
}
