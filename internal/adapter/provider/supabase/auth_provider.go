package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/staylodge/guest-service/internal/domain/entity"
	"github.com/staylodge/guest-service/internal/domain/provider"
	"go.uber.org/zap"
)

// adminUserPageSize is the page size used when scanning the admin user list
// on the duplicate-email reconciliation path.
const adminUserPageSize = 50

// AuthProvider implements the administrative GoTrue surface over the
// Supabase REST API using the service-role key.
type AuthProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewAuthProvider creates a Supabase admin auth client.
func NewAuthProvider(baseURL, apiKey string, logger *zap.Logger) *AuthProvider {
	return &AuthProvider{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

type adminUser struct {
	ID               string                 `json:"id"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at"`
	UserMetadata     map[string]interface{} `json:"user_metadata"`
}

func (u *adminUser) toAccount() *provider.Account {
	return &provider.Account{
		ID:        u.ID,
		Email:     u.Email,
		Confirmed: u.EmailConfirmedAt != nil,
		Metadata:  u.UserMetadata,
	}
}

type adminErrorResponse struct {
	Message   string `json:"msg"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

func (e *adminErrorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// isEmailExists recognizes GoTrue's "already registered" signal.
func (e *adminErrorResponse) isEmailExists() bool {
	if e.ErrorCode == "email_exists" {
		return true
	}
	msg := strings.ToLower(e.text())
	return strings.Contains(msg, "already") && strings.Contains(msg, "registered")
}

func (p *AuthProvider) setHeaders(req *http.Request) {
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// CreateAccount creates an auth account through the admin API. Returns
// provider.ErrEmailExists when GoTrue reports the email as taken.
func (p *AuthProvider) CreateAccount(ctx context.Context, params provider.CreateAccountParams) (*provider.Account, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":         entity.NormalizeEmail(params.Email),
		"password":      params.Password,
		"email_confirm": params.Confirmed,
		"user_metadata": params.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create account request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth provider response: %w", err)
	}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var user adminUser
		if err := json.Unmarshal(respBody, &user); err != nil {
			return nil, fmt.Errorf("failed to decode auth provider response: %w", err)
		}
		p.logger.Info("Created auth account",
			zap.String("account_id", user.ID),
		)
		return user.toAccount(), nil
	}

	var errResp adminErrorResponse
	_ = json.Unmarshal(respBody, &errResp)

	if errResp.isEmailExists() {
		return nil, provider.ErrEmailExists
	}

	return nil, fmt.Errorf("auth provider returned status %d: %s", resp.StatusCode, errResp.text())
}

// FindAccountByEmail scans the admin user list for an exact email match.
// Only called on the duplicate-error path, so the pagination walk is fine.
func (p *AuthProvider) FindAccountByEmail(ctx context.Context, email string) (*provider.Account, error) {
	target := entity.NormalizeEmail(email)

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/auth/v1/admin/users?page=%d&per_page=%d", p.baseURL, page, adminUserPageSize)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		p.setHeaders(req)

		resp, err := p.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("auth provider request failed: %w", err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read auth provider response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
		}

		var listResp struct {
			Users []adminUser `json:"users"`
		}
		if err := json.Unmarshal(respBody, &listResp); err != nil {
			return nil, fmt.Errorf("failed to decode auth provider response: %w", err)
		}

		for i := range listResp.Users {
			if entity.NormalizeEmail(listResp.Users[i].Email) == target {
				return listResp.Users[i].toAccount(), nil
			}
		}

		if len(listResp.Users) < adminUserPageSize {
			return nil, nil
		}
	}
}

// GenerateVerificationLink asks GoTrue for a signup confirmation link.
func (p *AuthProvider) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"type":  "signup",
		"email": entity.NormalizeEmail(email),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate link request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/admin/generate_link", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read auth provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp adminErrorResponse
		_ = json.Unmarshal(respBody, &errResp)
		return "", fmt.Errorf("auth provider returned status %d: %s", resp.StatusCode, errResp.text())
	}

	var linkResp struct {
		ActionLink string `json:"action_link"`
	}
	if err := json.Unmarshal(respBody, &linkResp); err != nil {
		return "", fmt.Errorf("failed to decode auth provider response: %w", err)
	}
	if linkResp.ActionLink == "" {
		return "", fmt.Errorf("auth provider returned empty action link")
	}

	return linkResp.ActionLink, nil
}
