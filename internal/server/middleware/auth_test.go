package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return stubClaims{userID: v.userID}, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	mw := AuthMiddleware(stubValidator{userID: userID})

	var gotID uuid.UUID
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw := AuthMiddleware(stubValidator{userID: uuid.New()})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw := AuthMiddleware(stubValidator{err: errors.New("token expired")})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", ""},
		{"standard bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"uppercase scheme", "BEARER abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
		{"too many parts", "Bearer abc def", ""},
		{"extra whitespace", "Bearer   abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractBearerToken(req))
		})
	}
}

func TestGetUserID_NoContext(t *testing.T) {
	_, err := GetUserID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}

func TestWithUserID_RoundTrip(t *testing.T) {
	userID := uuid.New()
	req := WithUserID(httptest.NewRequest(http.MethodGet, "/", nil), userID)

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
