package store

import "fmt"

// Errores del dominio. Los handlers los traducen a códigos HTTP:
// ValidationError/ErrConflict/ErrInvalidID → 400, ErrInvalidCredentials → 401,
// ErrNotFound → 404, cualquier otro → 500.
var (
	ErrNotFound           = fmt.Errorf("record not found")
	ErrConflict           = fmt.Errorf("record already exists")
	ErrInvalidID          = fmt.Errorf("invalid id")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

// ValidationError representa un campo de entrada ausente o malformado.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
