package session

type OpenResponse struct {
	SessionToken string `json:"session_token"` // Передаётся в Authorization: Bearer
	ExpiresAt    string `json:"expires_at"`    // RFC3339
}
