// ABOUTME: Authorization client performing the OAuth2 client-credentials grant
// ABOUTME: Credentials are sent in the form body as the token endpoint expects

package twitch

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"twitch-vod-rss/core/domain"
	apperrors "twitch-vod-rss/core/errors"
)

// DefaultTokenURL is the platform's OAuth2 token endpoint
const DefaultTokenURL = "https://id.twitch.tv/oauth2/token"

// AuthClient implements interfaces.AuthClient
type AuthClient struct {
	tokenURL   string
	httpClient *http.Client
}

// NewAuthClient creates an authorization client. A nil httpClient falls
// back to http.DefaultClient.
func NewAuthClient(tokenURL string, httpClient *http.Client) *AuthClient {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AuthClient{
		tokenURL:   tokenURL,
		httpClient: httpClient,
	}
}

// ExchangeCredentials mints an app access token for creds
func (c *AuthClient) ExchangeCredentials(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	if creds.IsZero() {
		return domain.AccessToken{}, &apperrors.TokenError{Message: "client id and secret are required"}
	}

	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     c.tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := cfg.Token(ctx)
	if err != nil {
		return domain.AccessToken{}, tokenError(err)
	}

	return domain.AccessToken{
		Value:     tok.AccessToken,
		TokenType: tok.Type(),
		ExpiresAt: tok.Expiry,
	}, nil
}

func tokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		msg := re.ErrorDescription
		if msg == "" {
			msg = string(re.Body)
		}
		if re.Response != nil {
			return &apperrors.TokenError{Message: http.StatusText(re.Response.StatusCode) + ": " + msg, Err: err}
		}
		return &apperrors.TokenError{Message: msg, Err: err}
	}
	return &apperrors.TokenError{Message: err.Error(), Err: err}
}
