// Package identity validates Ecuadorian cédulas and computes calendar ages.
// Both operations are pure; request-scoped concerns live in the service package.
package identity

const (
	cedulaLength = 10

	// MaxThirdDigit is the highest third digit of a natural-person cédula;
	// 6 and above identify public or juridical entities.
	MaxThirdDigit = 5
)

var checksumWeights = [cedulaLength - 1]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// Verdict is the outcome of ValidateIdentification. Province is set only when
// Valid is true; Reason only when it is false.
type Verdict struct {
	Valid    bool
	Province Province
	Reason   Reason
}

func reject(r Reason) Verdict {
	return Verdict{Reason: r}
}

// ValidateIdentification checks a 10-digit cédula. The first failing check
// determines the reason: empty, non-numeric, length, province, third digit,
// checksum.
func ValidateIdentification(id string) Verdict {
	if id == "" {
		return reject(ReasonEmptyInput)
	}
	if !allDigits(id) {
		return reject(ReasonNonNumeric)
	}
	if len(id) != cedulaLength {
		return reject(ReasonInvalidLength)
	}

	province, ok := LookupProvince(digit(id, 0)*10 + digit(id, 1))
	if !ok {
		return reject(ReasonInvalidProvince)
	}
	if digit(id, 2) > MaxThirdDigit {
		return reject(ReasonInvalidThirdDigit)
	}

	check, _ := CheckDigit(id[:cedulaLength-1])
	if check != digit(id, cedulaLength-1) {
		return reject(ReasonInvalidChecksum)
	}
	return Verdict{Valid: true, Province: province}
}

// CheckDigit computes the modulus-10 check digit for the first nine digits of
// a cédula. ok is false when first9 is not exactly nine ASCII digits.
func CheckDigit(first9 string) (check int, ok bool) {
	if len(first9) != cedulaLength-1 || !allDigits(first9) {
		return 0, false
	}
	sum := 0
	for i, w := range checksumWeights {
		p := digit(first9, i) * w
		if p > 9 {
			p -= 9
		}
		sum += p
	}
	return (10 - sum%10) % 10, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digit(s string, i int) int {
	return int(s[i] - '0')
}
