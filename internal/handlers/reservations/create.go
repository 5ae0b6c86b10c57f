package reservations

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-server/internal/sanitize"
)

// Create stores a new reservation.
// KISS flow:
// 1) Validate the full payload field by field
// 2) Sanitize the free-text fields (markup and entity stripping)
// 3) Insert one row and confirm
// Email, telefono and the enum fields are left untouched: validation already
// constrains them.
func (h *Handler) Create(c *gin.Context) {
	var in reservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if errs, ok := fieldErrors(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "errors": errs})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Cuerpo de la petición inválido"})
		return
	}

	in.Apellidos = sanitize.Clean(in.Apellidos)
	in.Nombres = sanitize.Clean(in.Nombres)
	in.TipoEvento = sanitize.Clean(in.TipoEvento)
	in.ServicioAdicional = sanitize.Clean(in.ServicioAdicional)

	const q = `INSERT INTO reservas
		(apellidos, nombres, email, telefono, tipo_evento, plan_evento, cantidad_anticipo, servicio_adicional, horas_renta, compromiso_pago)
		VALUES (?,?,?,?,?,?,?,?,?,?)`
	if _, err := h.db.Exec(q,
		in.Apellidos, in.Nombres, in.Email, in.Telefono, in.TipoEvento,
		in.PlanEvento, *in.CantidadAnticipo, in.ServicioAdicional, in.HorasRenta, *in.CompromisoPago,
	); err != nil {
		log.Printf("insert reserva: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": "No se pudo guardar la reserva"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reserva guardada correctamente"})
}
