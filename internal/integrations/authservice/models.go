package authservice

// loginRequest is the credentials payload for POST /auth/login
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the auth backend's login payload. The backend has shipped
// three different expiry fields over time; all are handled, in this order of
// preference: expiresIn (seconds), expiresAt, expiration (timestamps).
type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	ExpiresAt string `json:"expiresAt"`
	Expiration string `json:"expiration"`
}
