package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/NicoBar2/scrapingdarwin/internal/identity"
	"github.com/NicoBar2/scrapingdarwin/internal/identity/handler/mocks"
	"github.com/NicoBar2/scrapingdarwin/internal/identity/service"
	"github.com/NicoBar2/scrapingdarwin/pkg/testutil"
)

type IdentityHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func (s *IdentityHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func TestIdentityHandlerSuite(t *testing.T) {
	suite.Run(t, new(IdentityHandlerSuite))
}

func (s *IdentityHandlerSuite) post(path string, body any) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, path, body)
	return testutil.Do(s.router, req)
}

func (s *IdentityHandlerSuite) TestVerifyCedula_Valid() {
	s.service.EXPECT().VerifyIdentification(gomock.Any(), "1710034065").Return(identity.Verdict{
		Valid:    true,
		Province: identity.Province{Code: 17, Name: "Pichincha"},
	})

	rr := s.post("/identity/verificar-cedula", map[string]string{"cedula": "1710034065"})

	s.Equal(http.StatusOK, rr.Code)
	resp := testutil.DecodeJSON[map[string]any](s.T(), rr)
	s.Equal(true, resp["valid"])
	s.EqualValues(17, resp["province_code"])
	s.Equal("Pichincha", resp["province_name"])
	s.NotContains(resp, "reason")
}

func (s *IdentityHandlerSuite) TestVerifyCedula_Rejected() {
	s.service.EXPECT().VerifyIdentification(gomock.Any(), "1710034064").Return(identity.Verdict{
		Reason: identity.ReasonInvalidChecksum,
	})

	rr := s.post("/identity/verificar-cedula", map[string]string{"cedula": "1710034064"})

	s.Equal(http.StatusBadRequest, rr.Code)
	resp := testutil.DecodeJSON[VerifyCedulaResponse](s.T(), rr)
	s.False(resp.Valid)
	s.Equal("invalid_checksum", resp.Reason)
	s.Equal(identity.ReasonInvalidChecksum.Message(), resp.Message)
	s.Zero(resp.ProvinceCode)
}

func (s *IdentityHandlerSuite) TestVerifyCedula_EmptyValueReachesValidator() {
	s.service.EXPECT().VerifyIdentification(gomock.Any(), "").Return(identity.Verdict{
		Reason: identity.ReasonEmptyInput,
	})

	rr := s.post("/identity/verificar-cedula", map[string]string{"cedula": ""})

	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("empty_input", testutil.DecodeJSON[VerifyCedulaResponse](s.T(), rr).Reason)
}

func (s *IdentityHandlerSuite) TestVerifyCedula_MissingField() {
	rr := s.post("/identity/verificar-cedula", map[string]string{"numero": "1710034065"})

	testutil.AssertError(s.T(), rr, http.StatusBadRequest, "validation_error")
	s.Contains(rr.Body.String(), "Campo 'cedula' es requerido")
}

func (s *IdentityHandlerSuite) TestVerifyCedula_MalformedJSON() {
	req := testutil.NewRawJSONRequest(s.T(), http.MethodPost, "/identity/verificar-cedula", `{"cedula":`)
	rr := testutil.Do(s.router, req)

	testutil.AssertError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *IdentityHandlerSuite) TestVerifyCedula_NumericValueIsBadRequest() {
	req := testutil.NewRawJSONRequest(s.T(), http.MethodPost, "/identity/verificar-cedula", `{"cedula":1710034065}`)
	rr := testutil.Do(s.router, req)

	testutil.AssertError(s.T(), rr, http.StatusBadRequest, "bad_request")
}

func (s *IdentityHandlerSuite) TestCalculateAge_OK() {
	s.service.EXPECT().CalculateAge(gomock.Any(), "2000-05-15").Return(identity.AgeResult{
		Age: identity.AgeBreakdown{Years: 23, Months: 11, Days: 29, IsAdult: true},
	})

	rr := s.post("/identity/calcular-edad", map[string]string{"fecha_nacimiento": "2000-05-15"})

	s.Equal(http.StatusOK, rr.Code)
	s.Equal(AgeResponse{Years: 23, Months: 11, Days: 29, IsAdult: true}, testutil.DecodeJSON[AgeResponse](s.T(), rr))
}

func (s *IdentityHandlerSuite) TestCalculateAge_Rejected() {
	s.service.EXPECT().CalculateAge(gomock.Any(), "15-05-2000").Return(identity.AgeResult{
		Reason: identity.ReasonInvalidFormat,
	})

	rr := s.post("/identity/calcular-edad", map[string]string{"fecha_nacimiento": "15-05-2000"})

	s.Equal(http.StatusBadRequest, rr.Code)
	resp := testutil.DecodeJSON[ReasonResponse](s.T(), rr)
	s.Equal("invalid_format", resp.Reason)
	s.Equal("Formato inválido. Use YYYY-MM-DD", resp.Message)
}

func (s *IdentityHandlerSuite) TestCalculateAge_MissingField() {
	rr := s.post("/identity/calcular-edad", map[string]string{})

	testutil.AssertError(s.T(), rr, http.StatusBadRequest, "validation_error")
	s.Contains(rr.Body.String(), "fecha_nacimiento")
}

// Runs the real service behind the handler with the request clock pinned.
func TestCalculateAge_EndToEnd(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	New(service.NewService(nil, nil, nil, logger), logger).Register(router)

	testutil.Given(t, "a request pinned to 2024-05-16", func(t *testing.T) {
		ref := time.Date(2024, 5, 16, 12, 0, 0, 0, time.UTC)

		testutil.When(t, "the birthday was the day before", func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/identity/calcular-edad",
				map[string]string{"fecha_nacimiento": "2000-05-15"})
			rr := testutil.Do(router, testutil.WithRequestTime(req, ref))

			testutil.Then(t, "the age has just rolled over", func(t *testing.T) {
				if rr.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
				}
				got := testutil.DecodeJSON[AgeResponse](t, rr)
				if got != (AgeResponse{Years: 24, Months: 0, Days: 1, IsAdult: true}) {
					t.Fatalf("unexpected age %+v", got)
				}
			})
		})

		testutil.When(t, "the birth date is in the future", func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/identity/calcular-edad",
				map[string]string{"fecha_nacimiento": "2999-01-01"})
			rr := testutil.Do(router, testutil.WithRequestTime(req, ref))

			testutil.Then(t, "it is rejected as future_date", func(t *testing.T) {
				if rr.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rr.Code)
				}
				if got := testutil.DecodeJSON[ReasonResponse](t, rr).Reason; got != "future_date" {
					t.Fatalf("expected future_date, got %q", got)
				}
			})
		})
	})
}
