package domain

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Session carries the bearer credential issued by the backend.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
