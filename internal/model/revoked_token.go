package model

// RevokedToken marks a JWT id as dead before its natural expiry.
// Rows become garbage once expires_at passes and are purged by a job.
type RevokedToken struct {
	JTI       string `json:"jti"`
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
	Ctime     int64  `json:"ctime"`
}
