package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
	About    string `json:"about"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthBody is the login response carrying the bearer token. Clients treat
// the token as an opaque string.
type AuthBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAuthBody wraps an access token in the standard bearer envelope.
func NewAuthBody(accessToken string) AuthBody {
	return AuthBody{AccessToken: accessToken, TokenType: "Bearer"}
}
