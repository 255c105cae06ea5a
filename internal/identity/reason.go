package identity

import (
	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

// Reason is the closed set of validation failures. The zero value means the
// input passed every check.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonEmptyInput        Reason = "empty_input"
	ReasonNonNumeric        Reason = "non_numeric"
	ReasonInvalidLength     Reason = "invalid_length"
	ReasonInvalidProvince   Reason = "invalid_province"
	ReasonInvalidThirdDigit Reason = "invalid_third_digit"
	ReasonInvalidChecksum   Reason = "invalid_checksum"
	ReasonInvalidFormat     Reason = "invalid_format"
	ReasonFutureDate        Reason = "future_date"
)

var reasonMessages = map[Reason]string{
	ReasonEmptyInput:        "El valor es obligatorio",
	ReasonNonNumeric:        "La cédula debe contener solo números",
	ReasonInvalidLength:     "La cédula debe tener 10 dígitos",
	ReasonInvalidProvince:   "Código de provincia inválido",
	ReasonInvalidThirdDigit: "Tercer dígito inválido",
	ReasonInvalidChecksum:   "Dígito verificador incorrecto",
	ReasonInvalidFormat:     "Formato inválido. Use YYYY-MM-DD",
	ReasonFutureDate:        "La fecha no puede ser futura",
}

// Reasons lists every failure reason in declaration order.
func Reasons() []Reason {
	return []Reason{
		ReasonEmptyInput,
		ReasonNonNumeric,
		ReasonInvalidLength,
		ReasonInvalidProvince,
		ReasonInvalidThirdDigit,
		ReasonInvalidChecksum,
		ReasonInvalidFormat,
		ReasonFutureDate,
	}
}

func (r Reason) String() string { return string(r) }

// OK reports whether r is the success value.
func (r Reason) OK() bool { return r == ReasonNone }

// Message returns the user-facing Spanish message for r.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return ""
}

// Err converts a failure reason into a validation domain error; nil for success.
func (r Reason) Err() error {
	if r.OK() {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, r.Message())
}
