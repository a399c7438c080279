package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClaimer struct {
	result *usecase.ClaimResult
	err    error
	params usecase.ClaimParams
	called bool
}

func (s *stubClaimer) Claim(ctx context.Context, params usecase.ClaimParams) (*usecase.ClaimResult, error) {
	s.called = true
	s.params = params
	return s.result, s.err
}

func performClaim(t *testing.T, claimer *stubClaimer, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/promotions/claim", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewClaimHandler(zap.NewNop(), claimer)
	require.NoError(t, handler.ClaimPromotion(c))
	return rec
}

func validClaimBody() string {
	return `{
		"promotion_id": "7b7cbe46-9e09-4b39-8e6c-d3b9e36e6a1c",
		"property_id": "0a7b3f7d-6c4e-4f19-b7c4-62a1b3b9f111",
		"guest_name": "Guest One",
		"guest_email": "guest@example.com",
		"guest_phone": "+15550100"
	}`
}

func TestClaimHandler_Success(t *testing.T) {
	claimer := &stubClaimer{
		result: &usecase.ClaimResult{
			Message:        "Promotion claimed successfully",
			ConversationID: "conv-1",
			GuestUserID:    "acct-1",
			IsNewUser:      true,
		},
	}

	rec := performClaim(t, claimer, validClaimBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, claimer.called)
	assert.Equal(t, "guest@example.com", claimer.params.GuestEmail)

	var resp usecase.ClaimResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conv-1", resp.ConversationID)
	assert.True(t, resp.IsNewUser)
}

func TestClaimHandler_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing email",
			body: `{"promotion_id":"7b7cbe46-9e09-4b39-8e6c-d3b9e36e6a1c","property_id":"0a7b3f7d-6c4e-4f19-b7c4-62a1b3b9f111","guest_name":"Guest"}`,
		},
		{
			name: "malformed email",
			body: `{"promotion_id":"7b7cbe46-9e09-4b39-8e6c-d3b9e36e6a1c","property_id":"0a7b3f7d-6c4e-4f19-b7c4-62a1b3b9f111","guest_name":"Guest","guest_email":"not-an-email"}`,
		},
		{
			name: "promotion id not a uuid",
			body: `{"promotion_id":"123","property_id":"0a7b3f7d-6c4e-4f19-b7c4-62a1b3b9f111","guest_name":"Guest","guest_email":"guest@example.com"}`,
		},
		{
			name: "missing name",
			body: `{"promotion_id":"7b7cbe46-9e09-4b39-8e6c-d3b9e36e6a1c","property_id":"0a7b3f7d-6c4e-4f19-b7c4-62a1b3b9f111","guest_email":"guest@example.com"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claimer := &stubClaimer{}
			rec := performClaim(t, claimer, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, claimer.called)
		})
	}
}

func TestClaimHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "promotion not found",
			err:            errs.NewNotFoundError("promotion", "promo-1"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   errs.ErrTypeNotFound,
		},
		{
			name:           "promotion not claimable",
			err:            errs.NewBadRequestError("promotion is not active or not claimable"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.ErrTypeBadRequest,
		},
		{
			name:           "validation error",
			err:            errs.NewValidationError("invalid profile", nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   errs.ErrTypeValidation,
		},
		{
			name:           "internal error hides cause",
			err:            errs.NewInternalError("failed to create conversation", errors.New("pq: connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   errs.ErrTypeInternal,
		},
		{
			name:           "auth provider error maps to internal",
			err:            errs.NewAuthProviderError("failed to create auth account", errors.New("upstream 500")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   errs.ErrTypeInternal,
		},
		{
			name:           "untyped error maps to internal",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   errs.ErrTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claimer := &stubClaimer{err: tt.err}
			rec := performClaim(t, claimer, validClaimBody())

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp["code"])
			if tt.expectedStatus == http.StatusInternalServerError {
				// Stack internals never leak to the caller.
				assert.NotContains(t, resp["error"], "pq:")
				assert.NotContains(t, resp["error"], "upstream")
				assert.NotContains(t, resp["error"], "boom")
			}
		})
	}
}
