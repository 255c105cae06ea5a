// Package numwords spells amounts of US dollars in Spanish words, the way
// they are written on cheques and invoices in Ecuador.
package numwords

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

const (
	thousand = int64(1_000)
	million  = int64(1_000_000)
	billion  = int64(1_000_000_000_000) // Spanish "billón", 10^12
)

// maxAmount is the first amount that can no longer be spelled (a trillón).
var maxAmount = decimal.New(1, 18)

var (
	errNull       = dErrors.New(dErrors.CodeValidation, "El valor no puede ser nulo")
	errNotNumeric = dErrors.New(dErrors.CodeValidation, "El valor debe ser numérico")
	errNegative   = dErrors.New(dErrors.CodeValidation, "El monto no puede ser negativo")
	errOutOfRange = dErrors.New(dErrors.CodeValidation, "El monto es demasiado grande")
)

var units = [...]string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
	"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var tens = [...]string{
	3: "treinta", 4: "cuarenta", 5: "cincuenta", 6: "sesenta", 7: "setenta", 8: "ochenta", 9: "noventa",
}

var hundreds = [...]string{
	1: "ciento", 2: "doscientos", 3: "trescientos", 4: "cuatrocientos", 5: "quinientos",
	6: "seiscientos", 7: "setecientos", 8: "ochocientos", 9: "novecientos",
}

// ParseAmount reads a JSON number or numeric string into a decimal. JSON null,
// non-numeric values and negative amounts are rejected.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Decimal{}, errNull
	}

	var literal string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &literal); err != nil {
			return decimal.Decimal{}, errNotNumeric
		}
		literal = strings.TrimSpace(literal)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		literal = string(raw)
	default:
		return decimal.Decimal{}, errNotNumeric
	}

	amount, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Decimal{}, errNotNumeric
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, errNegative
	}
	return amount, nil
}

// Currency rounds amount to cents and spells it in upper-case Spanish, e.g.
// 123.45 is "CIENTO VEINTITRÉS DÓLARES CON CUARENTA Y CINCO CENTAVOS".
func Currency(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", errNegative
	}
	amount = amount.Round(2)
	if amount.GreaterThanOrEqual(maxAmount) {
		return "", errOutOfRange
	}

	dollars := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(dollars)).Shift(2).IntPart()

	var b strings.Builder
	b.WriteString(spell(dollars, true))
	if dollars >= million && dollars%million == 0 {
		b.WriteString(" de")
	}
	b.WriteString(plural(dollars, " dólar", " dólares"))
	b.WriteString(" con ")
	b.WriteString(spell(cents, true))
	b.WriteString(plural(cents, " centavo", " centavos"))

	return strings.ToUpper(b.String()), nil
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// spell writes n in words. apocope shortens a trailing "uno" to "un" for use
// before a masculine noun.
func spell(n int64, apocope bool) string {
	switch {
	case n == 0:
		return units[0]
	case n >= billion:
		return scaled(n, billion, "un billón", " billones", apocope)
	case n >= million:
		return scaled(n, million, "un millón", " millones", apocope)
	case n >= thousand:
		return scaled(n, thousand, "mil", " mil", apocope)
	default:
		return belowThousand(int(n), apocope)
	}
}

func scaled(n, unit int64, single, multiple string, apocope bool) string {
	count, rest := n/unit, n%unit

	head := single
	if count > 1 {
		head = spell(count, true) + multiple
	}
	if rest == 0 {
		return head
	}
	return head + " " + spell(rest, apocope)
}

func belowThousand(n int, apocope bool) string {
	if n == 100 {
		return "cien"
	}
	h, rest := n/100, n%100

	var parts []string
	if h > 0 {
		parts = append(parts, hundreds[h])
	}
	if rest > 0 {
		parts = append(parts, belowHundred(rest, apocope))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int, apocope bool) string {
	if n < len(units) {
		switch {
		case apocope && n == 1:
			return "un"
		case apocope && n == 21:
			return "veintiún"
		default:
			return units[n]
		}
	}
	t, u := n/10, n%10
	if u == 0 {
		return tens[t]
	}
	return tens[t] + " y " + belowHundred(u, apocope)
}
