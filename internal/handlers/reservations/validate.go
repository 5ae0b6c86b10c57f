package reservations

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// reservationInput is the full create payload. Every field rule lives in its
// binding tag; cantidad_anticipo and compromiso_pago are pointers so that 0
// and false still satisfy "required".
type reservationInput struct {
	Apellidos         string   `json:"apellidos" binding:"required,min=2,max=27"`
	Nombres           string   `json:"nombres" binding:"required,min=2,max=20"`
	Email             string   `json:"email" binding:"required,email"`
	Telefono          string   `json:"telefono" binding:"required,len=10,number"`
	TipoEvento        string   `json:"tipo_evento" binding:"required,min=3,max=10"`
	PlanEvento        string   `json:"plan_evento" binding:"required,oneof=Clasico Premium Golden"`
	CantidadAnticipo  *float64 `json:"cantidad_anticipo" binding:"required"`
	ServicioAdicional string   `json:"servicio_adicional"`
	HorasRenta        string   `json:"horas_renta" binding:"required,oneof=3 4 5 6 7"`
	CompromisoPago    *bool    `json:"compromiso_pago" binding:"required"`
}

// FieldError is one entry of the batched validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report JSON field names instead of Go struct names in FieldError.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldErrors converts a binding failure into per-field descriptors. The
// second return is false when err is not a validation error (e.g. malformed
// JSON or a type mismatch).
func fieldErrors(err error) ([]FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out, true
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es obligatorio"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
	case "len":
		return fmt.Sprintf("debe tener exactamente %s caracteres", fe.Param())
	case "number":
		return "debe contener solo dígitos"
	case "email":
		return "debe ser un correo electrónico válido"
	case "oneof":
		return "debe ser uno de: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	return "valor inválido"
}
