package handler

import (
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

func requiredField(name string) error {
	return dErrors.New(dErrors.CodeValidation, "Campo '"+name+"' es requerido")
}

// VerifyCedulaRequest is the HTTP request body for POST /identity/verificar-cedula.
// A present but empty cedula reaches the validator and fails with empty_input.
type VerifyCedulaRequest struct {
	Cedula *string `json:"cedula"`
}

// Validate implements httputil.Validatable.
func (r *VerifyCedulaRequest) Validate() error {
	if r.Cedula == nil {
		return requiredField("cedula")
	}
	return nil
}

// CalculateAgeRequest is the HTTP request body for POST /identity/calcular-edad.
type CalculateAgeRequest struct {
	BirthDate *string `json:"fecha_nacimiento"`
}

// Validate implements httputil.Validatable.
func (r *CalculateAgeRequest) Validate() error {
	if r.BirthDate == nil {
		return requiredField("fecha_nacimiento")
	}
	return nil
}
