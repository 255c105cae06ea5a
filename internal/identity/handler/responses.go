package handler

import "github.com/NicoBar2/scrapingdarwin/internal/identity"

// VerifyCedulaResponse is the HTTP response for POST /identity/verificar-cedula.
// Province fields are present only for valid cédulas; reason and message only
// for rejected ones.
type VerifyCedulaResponse struct {
	Valid        bool   `json:"valid"`
	ProvinceCode int    `json:"province_code,omitempty"`
	ProvinceName string `json:"province_name,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Message      string `json:"message,omitempty"`
}

func FromVerdict(v identity.Verdict) *VerifyCedulaResponse {
	if !v.Valid {
		return &VerifyCedulaResponse{Reason: v.Reason.String(), Message: v.Reason.Message()}
	}
	return &VerifyCedulaResponse{
		Valid:        true,
		ProvinceCode: v.Province.Code,
		ProvinceName: v.Province.Name,
	}
}

// AgeResponse is the HTTP response for a computed age.
type AgeResponse struct {
	Years   int  `json:"years"`
	Months  int  `json:"months"`
	Days    int  `json:"days"`
	IsAdult bool `json:"is_adult"`
}

// ReasonResponse is the HTTP response for a rejected age calculation.
type ReasonResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func FromAge(a identity.AgeBreakdown) *AgeResponse {
	return &AgeResponse{Years: a.Years, Months: a.Months, Days: a.Days, IsAdult: a.IsAdult}
}
