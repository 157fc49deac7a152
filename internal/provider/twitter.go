package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/akarpov/go-social-auth/internal/config"
	"github.com/akarpov/go-social-auth/internal/logger"
	"github.com/akarpov/go-social-auth/models"
	"github.com/go-resty/resty/v2"
)

const twitterAPIURL = "https://api.twitter.com"

// twitterV2Response is the envelope of the v2 users/me endpoint used for
// OAuth2 bearer tokens.
type twitterV2Response struct {
	Data *twitterV2User `json:"data"`
}

type twitterV2User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// twitterV1User is the relevant subset of the v1.1 verify_credentials
// response used for OAuth 1.0a tokens.
type twitterV1User struct {
	IDStr      string `json:"id_str"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ScreenName string `json:"screen_name"`
	Email      string `json:"email"`
}

// twitterValidator validates access tokens against the Twitter API. The
// oauth2 switch selects the v2 "users/me" endpoint for bearer tokens;
// otherwise the legacy v1.1 "verify_credentials" endpoint is used.
type twitterValidator struct {
	client  *resty.Client
	baseURL string
	oauth2  bool

	logger *logger.Logger
}

// NewTwitterValidator constructs the Twitter adapter.
func NewTwitterValidator(client *resty.Client, cfg config.Twitter, logger *logger.Logger) Validator {
	return &twitterValidator{
		client:  client,
		baseURL: twitterAPIURL,
		oauth2:  cfg.OAuth2,
		logger:  logger,
	}
}

func (v *twitterValidator) Validate(ctx context.Context, socialToken string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	url := v.baseURL + "/1.1/account/verify_credentials.json"
	if v.oauth2 {
		url = v.baseURL + "/2/users/me"
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(socialToken).
		Get(url)
	if err != nil {
		log.Err(err).Msg("twitter validation request failed")
		return models.Identity{}, wrapTransportError(models.ProviderTwitter, err)
	}

	if resp.StatusCode() >= 500 {
		log.Error().Int("status", resp.StatusCode()).Msg("twitter validation server error")
		return models.Identity{}, wrapTransportError(models.ProviderTwitter, fmt.Errorf("status %d", resp.StatusCode()))
	}
	if resp.StatusCode() != 200 {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("twitter token validation failed")
		return models.Identity{}, wrapValidationError(models.ProviderTwitter, fmt.Sprintf("status=%d", resp.StatusCode()))
	}

	if v.oauth2 {
		return v.parseV2(resp.Body())
	}

	return v.parseV1(resp.Body())
}

func (v *twitterValidator) parseV2(body []byte) (models.Identity, error) {
	var parsed twitterV2Response
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Data == nil {
		return models.Identity{}, wrapValidationError(models.ProviderTwitter, "malformed response (missing data)")
	}
	if parsed.Data.ID == "" {
		return models.Identity{}, wrapValidationError(models.ProviderTwitter, "response missing user id")
	}

	return models.Identity{
		UID:  parsed.Data.ID,
		Name: parsed.Data.Name,
		Raw: map[string]any{
			"id":       parsed.Data.ID,
			"name":     parsed.Data.Name,
			"username": parsed.Data.Username,
		},
	}, nil
}

func (v *twitterValidator) parseV1(body []byte) (models.Identity, error) {
	var parsed twitterV1User
	if err := json.Unmarshal(body, &parsed); err != nil {
		return models.Identity{}, wrapValidationError(models.ProviderTwitter, "malformed response")
	}

	uid := parsed.IDStr
	if uid == "" && parsed.ID != 0 {
		uid = strconv.FormatInt(parsed.ID, 10)
	}
	if uid == "" {
		return models.Identity{}, wrapValidationError(models.ProviderTwitter, "response missing user id")
	}

	return models.Identity{
		UID:   uid,
		Name:  parsed.Name,
		Email: parsed.Email,
		Raw: map[string]any{
			"id_str":      parsed.IDStr,
			"name":        parsed.Name,
			"screen_name": parsed.ScreenName,
		},
	}, nil
}
