package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Identity is the subset of ID token claims used to upsert a user.
type Identity struct {
	Subject         string `json:"sub"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// IdentityProvider is the OpenID Connect collaborator behind login, callback,
// logout and token refresh.
type IdentityProvider interface {
	AuthCodeURL(state, nonce string) string
	Exchange(ctx context.Context, code, nonce string) (*Identity, *Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (*Tokens, error)
	EndSessionURL(postLogoutRedirectURI string) string
}

type OIDCProvider struct {
	verifier      *oidc.IDTokenVerifier
	oauth         oauth2.Config
	endSessionURL string
}

var _ IdentityProvider = (*OIDCProvider)(nil)

// NewOIDCProvider runs discovery against issuerURL.
func NewOIDCProvider(ctx context.Context, issuerURL, clientID, clientSecret, redirectURL string) (*OIDCProvider, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery failed: %w", err)
	}

	var discovery struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := provider.Claims(&discovery); err != nil {
		return nil, fmt.Errorf("failed to read discovery document: %w", err)
	}

	return &OIDCProvider{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile", oidc.ScopeOfflineAccess},
		},
		endSessionURL: discovery.EndSessionEndpoint,
	}, nil
}

func (p *OIDCProvider) AuthCodeURL(state, nonce string) string {
	return p.oauth.AuthCodeURL(state,
		oidc.Nonce(nonce),
		oauth2.SetAuthURLParam("prompt", "login consent"),
	)
}

// Exchange trades the authorization code for tokens and verifies the ID token
// against the expected nonce.
func (p *OIDCProvider) Exchange(ctx context.Context, code, nonce string) (*Identity, *Tokens, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("code exchange failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, nil, errors.New("token response has no id_token")
	}
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, nil, fmt.Errorf("id token verification failed: %w", err)
	}
	if idToken.Nonce != nonce {
		return nil, nil, errors.New("id token nonce mismatch")
	}

	var identity Identity
	if err := idToken.Claims(&identity); err != nil {
		return nil, nil, fmt.Errorf("failed to decode id token claims: %w", err)
	}

	return &identity, &Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}, nil
}

func (p *OIDCProvider) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	src := p.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	tokens := &Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	// providers may omit the refresh token when it is not rotated
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}
	return tokens, nil
}

// EndSessionURL is the provider logout URL, or the post-logout target when the
// provider advertises no end_session_endpoint.
func (p *OIDCProvider) EndSessionURL(postLogoutRedirectURI string) string {
	if p.endSessionURL == "" {
		return postLogoutRedirectURI
	}
	q := url.Values{}
	q.Set("client_id", p.oauth.ClientID)
	q.Set("post_logout_redirect_uri", postLogoutRedirectURI)
	return p.endSessionURL + "?" + q.Encode()
}
