package webex

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// Credentials holds the OAuth client credentials and the long-lived refresh
// token used to obtain access tokens.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Authenticate exchanges the refresh token for an access token at the Webex
// token endpoint under apiBase. The exchange happens once, eagerly; there is
// no refresh-on-expiry, a run either completes within the token lifetime or
// fails on a later call.
//
// Webex expects the client credentials in the form body, so the endpoint is
// configured with AuthStyleInParams. If httpClient is nil the default client
// is used.
func Authenticate(ctx context.Context, creds Credentials, apiBase string, httpClient *http.Client) (*oauth2.Token, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimRight(apiBase, "/") + "/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	tok, err := ts.Token()
	if err != nil {
		return nil, mapTokenError(err)
	}
	return tok, nil
}

// mapTokenError converts token endpoint failures into the error kinds the
// rest of the tool distinguishes: a rejected exchange becomes an *AuthError,
// anything else (malformed response, missing access token, transport
// failure) becomes a *ProtocolError.
func mapTokenError(err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		authErr := &AuthError{
			RawBody: rerr.Body,
			Err:     err,
		}
		if rerr.Response != nil {
			authErr.StatusCode = rerr.Response.StatusCode
			authErr.Status = rerr.Response.Status
		}
		msg := rerr.ErrorCode
		if rerr.ErrorDescription != "" {
			if msg != "" {
				msg += ": "
			}
			msg += rerr.ErrorDescription
		}
		authErr.Message = msg
		return authErr
	}
	return &ProtocolError{Op: "token exchange", Err: err}
}
