// Package naver talks to Naver Login: the OAuth2 authorization code flow and
// the member profile API.
package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	DefaultAuthURL    = "https://nid.naver.com/oauth2.0/authorize"
	DefaultTokenURL   = "https://nid.naver.com/oauth2.0/token"
	DefaultProfileURL = "https://openapi.naver.com/v1/nid/me"

	resultCodeSuccess = "00"
)

var ErrInvalidToken = errors.New("naver rejected the access token")

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Endpoint overrides, empty means the public Naver endpoints.
	AuthURL    string
	TokenURL   string
	ProfileURL string
}

type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Name         string `json:"name"`
	ProfileImage string `json:"profile_image"`
}

type profileResponse struct {
	ResultCode string  `json:"resultcode"`
	Message    string  `json:"message"`
	Response   Profile `json:"response"`
}

type Client struct {
	oauth      *oauth2.Config
	profileURL string
}

func NewClient(cfg Config) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = DefaultProfileURL
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: profileURL,
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a Naver access token. Naver
// requires the state value on the token request as well.
func (c *Client) Exchange(ctx context.Context, code, state string) (*oauth2.Token, error) {
	tok, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("state", state))
	if err != nil {
		return nil, fmt.Errorf("naver code exchange failed: %w", err)
	}
	return tok, nil
}

func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver profile request returned %d", resp.StatusCode)
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode naver profile: %w", err)
	}
	if body.ResultCode != resultCodeSuccess {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, body.Message)
	}
	if body.Response.Email == "" {
		return nil, errors.New("naver profile has no email; the email scope must be granted")
	}
	return &body.Response, nil
}
