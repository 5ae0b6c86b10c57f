package reservations

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"reservas-server/internal/db"
)

// newTestHandler returns a handler backed by a mocked database. The mock is
// also used to prove that an operation performed no write at all.
func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return New(&db.DB{DB: sqlx.NewDb(mockDB, "mysql")}), mock
}

func newRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reservas", h.List)
	r.GET("/reserva/:id", h.Get)
	r.POST("/guardar-reserva", h.Create)
	r.PUT("/actualizar-reserva/:id", h.Update)
	r.DELETE("/eliminar-reserva/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// validPayload satisfies every field rule. Tests mutate single fields to
// break one rule at a time.
func validPayload() map[string]any {
	return map[string]any{
		"apellidos":          "García López",
		"nombres":            "María",
		"email":              "maria@example.com",
		"telefono":           "5512345678",
		"tipo_evento":        "Boda",
		"plan_evento":        "Premium",
		"cantidad_anticipo":  1500.50,
		"servicio_adicional": "Mesa de dulces",
		"horas_renta":        "5",
		"compromiso_pago":    true,
	}
}

func reservationColumns() []string {
	return []string{
		"id", "apellidos", "nombres", "email", "telefono", "tipo_evento",
		"plan_evento", "cantidad_anticipo", "servicio_adicional", "horas_renta", "compromiso_pago",
	}
}
