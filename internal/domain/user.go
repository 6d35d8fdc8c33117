package domain

// Role values carried by validated tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserProfile represents the validated identity of a caller
type UserProfile struct {
	Sub           string `json:"sub"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture,omitempty"`
	Role          string `json:"role"`
}

// IsAdmin reports whether the caller holds the administrative capability
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
