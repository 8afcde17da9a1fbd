// Package webex provides the authenticated HTTP core for the Webex REST API.
//
// It has two halves:
//
//   - Authenticate exchanges a long-lived refresh token for a short-lived
//     access token at the Webex OAuth token endpoint. The exchange is eager
//     and happens once per run.
//   - Client wraps *http.Client with the base URL, bearer token and JSON
//     conventions every Webex call shares. Domain packages (reports,
//     meetings) build their operations on Get, Post and GetURL, and decode
//     responses through ParseResponse.
//
// Failures are classified into three kinds: *AuthError when the token
// endpoint rejects the exchange, *APIError for any non-2xx API response,
// and *ProtocolError when a response does not have the expected shape.
// Commands can branch on them with IsAuthError, IsAPIError and
// IsProtocolError.
package webex
