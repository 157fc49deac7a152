package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
	"github.com/go-resty/resty/v2"
)

const facebookGraphURL = "https://graph.facebook.com"

// facebookDebugTokenResponse is the envelope of the Graph API debug_token
// endpoint.
type facebookDebugTokenResponse struct {
	Data *facebookTokenData `json:"data"`
}

type facebookTokenData struct {
	IsValid   bool     `json:"is_valid"`
	AppID     string   `json:"app_id"`
	UserID    string   `json:"user_id"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
}

type facebookUserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// facebookValidator validates user access tokens against the Facebook Graph
// API. Validation is a two-step exchange: debug_token establishes that the
// token is live and belongs to the configured application, then /me fetches
// the profile fields.
type facebookValidator struct {
	client  *resty.Client
	baseURL string

	appID     string
	appSecret string

	logger *logger.Logger
}

// NewFacebookValidator constructs the Facebook adapter. When the app
// credentials are not configured the debug_token call is made best-effort
// without an app access token, and the app_id check is skipped.
func NewFacebookValidator(client *resty.Client, cfg config.Facebook, logger *logger.Logger) Validator {
	if cfg.AppID == "" || cfg.AppSecret == "" {
		logger.Warn().Msg("facebook app credentials not set; using best-effort validation")
	}

	return &facebookValidator{
		client:    client,
		baseURL:   facebookGraphURL,
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		logger:    logger,
	}
}

func (v *facebookValidator) Validate(ctx context.Context, socialToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{"input_token": socialToken}
	if v.appID != "" && v.appSecret != "" {
		params["access_token"] = v.appID + "|" + v.appSecret
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(v.baseURL + "/debug_token")
	if err != nil {
		log.Err(err).Msg("facebook debug_token request failed")
		return models.Identity{}, wrapTransportError(models.ProviderFacebook, err)
	}

	if resp.StatusCode() >= 500 {
		log.Error().Int("status", resp.StatusCode()).Msg("facebook debug_token server error")
		return models.Identity{}, wrapTransportError(models.ProviderFacebook, fmt.Errorf("status %d", resp.StatusCode()))
	}
	if resp.StatusCode() != 200 {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("facebook token debug failed")
		return models.Identity{}, wrapValidationError(models.ProviderFacebook, "token debug rejected")
	}

	var debug facebookDebugTokenResponse
	if err = json.Unmarshal(resp.Body(), &debug); err != nil || debug.Data == nil {
		return models.Identity{}, wrapValidationError(models.ProviderFacebook, "malformed debug_token response")
	}

	info := debug.Data
	if !info.IsValid {
		return models.Identity{}, wrapValidationError(models.ProviderFacebook, "token is not valid")
	}
	if v.appID != "" && info.AppID != v.appID {
		return models.Identity{}, wrapValidationError(models.ProviderFacebook, "token app_id mismatch")
	}
	if info.UserID == "" {
		return models.Identity{}, wrapValidationError(models.ProviderFacebook, "response missing user id")
	}

	user, err := v.fetchUserInfo(ctx, socialToken)
	if err != nil {
		return models.Identity{}, err
	}

	return models.Identity{
		UID:       info.UserID,
		Name:      user.Name,
		Email:     user.Email,
		ExpiresAt: info.ExpiresAt,
		Scopes:    info.Scopes,
		Raw: map[string]any{
			"validation": map[string]any{
				"app_id":     info.AppID,
				"expires_at": info.ExpiresAt,
				"scopes":     info.Scopes,
			},
			"user": map[string]any{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		},
	}, nil
}

// fetchUserInfo retrieves the profile fields (id, name, email) for the
// token's owner from the Graph API /me endpoint.
func (v *facebookValidator) fetchUserInfo(ctx context.Context, socialToken string) (facebookUserInfo, error) {
	log := logger.FromContext(ctx)

	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       "id,name,email",
			"access_token": socialToken,
		}).
		Get(v.baseURL + "/me")
	if err != nil {
		log.Err(err).Msg("facebook user info request failed")
		return facebookUserInfo{}, wrapTransportError(models.ProviderFacebook, err)
	}

	if resp.StatusCode() >= 500 {
		return facebookUserInfo{}, wrapTransportError(models.ProviderFacebook, fmt.Errorf("status %d", resp.StatusCode()))
	}
	if resp.StatusCode() != 200 {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("facebook user info fetch failed")
		return facebookUserInfo{}, wrapValidationError(models.ProviderFacebook, "failed to fetch user info")
	}

	var user facebookUserInfo
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return facebookUserInfo{}, wrapValidationError(models.ProviderFacebook, "malformed user info response")
	}

	return user, nil
}
