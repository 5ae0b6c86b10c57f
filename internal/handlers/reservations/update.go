package reservations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Update replaces every field of a reservation by id. The payload is bound
// without the create rules.
// TODO: apply the same validation and sanitization as Create; the current
// contract lets an update write values a create would reject.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var in struct {
		Apellidos         string  `json:"apellidos"`
		Nombres           string  `json:"nombres"`
		Email             string  `json:"email"`
		Telefono          string  `json:"telefono"`
		TipoEvento        string  `json:"tipo_evento"`
		PlanEvento        string  `json:"plan_evento"`
		CantidadAnticipo  float64 `json:"cantidad_anticipo"`
		ServicioAdicional string  `json:"servicio_adicional"`
		HorasRenta        string  `json:"horas_renta"`
		CompromisoPago    bool    `json:"compromiso_pago"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Cuerpo de la petición inválido"})
		return
	}

	const q = `UPDATE reservas SET
		apellidos=?, nombres=?, email=?, telefono=?, tipo_evento=?, plan_evento=?,
		cantidad_anticipo=?, servicio_adicional=?, horas_renta=?, compromiso_pago=?
		WHERE id=?`
	res, err := h.db.Exec(q,
		in.Apellidos, in.Nombres, in.Email, in.Telefono, in.TipoEvento,
		in.PlanEvento, in.CantidadAnticipo, in.ServicioAdicional, in.HorasRenta, in.CompromisoPago, id)
	if err != nil {
		log.Printf("update reserva %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo actualizar la reserva"})
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Printf("update reserva %s: rows affected: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo actualizar la reserva"})
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Reserva no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva actualizada correctamente"})
}
