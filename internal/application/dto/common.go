package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// ErrorResponse cuerpo de error HTTP. Details solo se incluye en la falla de
// validación itemizada de POST /extractions.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse cuerpo mínimo de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// IntField es un entero que acepta tanto números JSON como strings numéricos
// ("5"), replicando la coerción int() del frontend original.
type IntField int

// UnmarshalJSON implementa json.Unmarshaler.
func (f *IntField) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("valor no convertible a entero: %s", b)
	}
	*f = IntField(n)
	return nil
}

// Int devuelve el valor como int nativo.
func (f IntField) Int() int { return int(f) }
