package services

// AuthService checks a caller-supplied secret against the admin password.
type AuthService interface {
	Verify(secret string) bool
}

type authService struct {
	adminPassword string
}

// NewAuthService creates an AuthService for the given admin password.
func NewAuthService(adminPassword string) AuthService {
	return &authService{adminPassword: adminPassword}
}

// Verify is plain string equality; there is no hashing and no rate limiting.
func (s *authService) Verify(secret string) bool {
	return secret == s.adminPassword
}
