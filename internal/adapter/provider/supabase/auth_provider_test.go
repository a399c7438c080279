package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/staylodge/guest-service/internal/domain/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthProvider_CreateAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "guest@example.com", payload["email"])
		assert.Equal(t, false, payload["email_confirm"])
		assert.NotEmpty(t, payload["password"])

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "acct-1",
			"email": "guest@example.com",
			"user_metadata": map[string]interface{}{
				"full_name": "Guest One",
			},
		})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	account, err := p.CreateAccount(context.Background(), provider.CreateAccountParams{
		Email:    "Guest@Example.com",
		Password: "throwaway",
		Metadata: map[string]interface{}{"full_name": "Guest One"},
	})

	require.NoError(t, err)
	assert.Equal(t, "acct-1", account.ID)
	assert.Equal(t, "guest@example.com", account.Email)
	assert.False(t, account.Confirmed)
	assert.Equal(t, "Guest One", account.Metadata["full_name"])
}

func TestAuthProvider_CreateAccountEmailExists(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   map[string]interface{}
	}{
		{
			name:   "error_code signal",
			status: http.StatusUnprocessableEntity,
			body: map[string]interface{}{
				"error_code": "email_exists",
				"msg":        "A user with this email address has already been registered",
			},
		},
		{
			name:   "message-only signal",
			status: http.StatusBadRequest,
			body: map[string]interface{}{
				"msg": "User already registered",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

			_, err := p.CreateAccount(context.Background(), provider.CreateAccountParams{
				Email:    "guest@example.com",
				Password: "throwaway",
			})

			assert.ErrorIs(t, err, provider.ErrEmailExists)
		})
	}
}

func TestAuthProvider_CreateAccountServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"msg": "database error"})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	_, err := p.CreateAccount(context.Background(), provider.CreateAccountParams{
		Email:    "guest@example.com",
		Password: "throwaway",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, provider.ErrEmailExists)
}

func TestAuthProvider_FindAccountByEmailPaginates(t *testing.T) {
	// Target sits on the second page; the first page is full.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		page := r.URL.Query().Get("page")

		var users []map[string]interface{}
		switch page {
		case "1":
			for i := 0; i < adminUserPageSize; i++ {
				users = append(users, map[string]interface{}{
					"id":    fmt.Sprintf("acct-filler-%d", i),
					"email": fmt.Sprintf("filler-%d@example.com", i),
				})
			}
		case "2":
			users = append(users, map[string]interface{}{
				"id":    "acct-target",
				"email": "Guest@Example.com",
			})
		}

		json.NewEncoder(w).Encode(map[string]interface{}{"users": users})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	account, err := p.FindAccountByEmail(context.Background(), "guest@example.com")

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "acct-target", account.ID)
}

func TestAuthProvider_FindAccountByEmailNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"users": []map[string]interface{}{
				{"id": "acct-1", "email": "someone-else@example.com"},
			},
		})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	account, err := p.FindAccountByEmail(context.Background(), "guest@example.com")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAuthProvider_GenerateVerificationLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/generate_link", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "signup", payload["type"])
		assert.Equal(t, "guest@example.com", payload["email"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"action_link": "https://auth.example/verify?token=abc",
		})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	link, err := p.GenerateVerificationLink(context.Background(), "guest@example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://auth.example/verify?token=abc", link)
}

func TestAuthProvider_GenerateVerificationLinkEmptyLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer server.Close()

	p := NewAuthProvider(server.URL, "service-key", zap.NewNop())

	_, err := p.GenerateVerificationLink(context.Background(), "guest@example.com")

	assert.Error(t, err)
}
