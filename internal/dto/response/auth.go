package response

// TokenResponse is the login payload. The token is stateless; revocation
// is impossible short of rotating the signing secret or waiting out the TTL.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
