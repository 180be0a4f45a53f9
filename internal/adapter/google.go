// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// GoogleProviderName is the Provider value of profiles returned by
	// the Google adapter.
	GoogleProviderName = "google"

	// GoogleUserInfoURL is the OpenID userinfo endpoint queried after the
	// code exchange.
	GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	defaultProviderTimeout = 10 * time.Second
)

var googleScopes = []string{"profile", "email"}

type googleUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type googleProvider struct {
	oauth       *oauth2.Config
	client      *resty.Client
	userInfoURL string

	logger *logger.Logger
}

// GoogleOption customises the Google provider. Used to point the adapter
// at non-production endpoints.
type GoogleOption func(*googleProvider)

// WithEndpoint replaces the OAuth2 authorization and token endpoints.
func WithEndpoint(endpoint oauth2.Endpoint) GoogleOption {
	return func(p *googleProvider) {
		p.oauth.Endpoint = endpoint
	}
}

// WithUserInfoURL replaces the userinfo endpoint.
func WithUserInfoURL(url string) GoogleOption {
	return func(p *googleProvider) {
		p.userInfoURL = url
	}
}

// WithTimeout sets the timeout of userinfo requests.
func WithTimeout(timeout time.Duration) GoogleOption {
	return func(p *googleProvider) {
		p.client.SetTimeout(timeout)
	}
}

// NewGoogleProvider constructs an [IdentityProvider] for Google from the
// client credentials in cfg.
func NewGoogleProvider(cfg config.Google, logger *logger.Logger, opts ...GoogleOption) IdentityProvider {
	p := &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       googleScopes,
		},
		client:      resty.New().SetTimeout(defaultProviderTimeout),
		userInfoURL: GoogleUserInfoURL,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *googleProvider) Name() string {
	return GoogleProviderName
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (models.OAuthProfile, error) {
	log := logger.FromContext(ctx)

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("code exchange failed")
		return models.OAuthProfile{}, fmt.Errorf("%w: %w", ErrCodeExchangeFailed, err)
	}

	var info googleUserInfo
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Accept", "application/json").
		SetResult(&info).
		Get(p.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Msg("userinfo request failed")
		return models.OAuthProfile{}, fmt.Errorf("userinfo request failed: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "googleProvider.Exchange").Int("status", resp.StatusCode()).Msg("userinfo request rejected")
		return models.OAuthProfile{}, err
	}

	if strings.TrimSpace(info.Sub) == "" {
		return models.OAuthProfile{}, ErrMissingSubject
	}

	return models.OAuthProfile{
		Provider:       GoogleProviderName,
		ProviderUserID: info.Sub,
		Email:          info.Email,
		Name:           info.Name,
	}, nil
}
