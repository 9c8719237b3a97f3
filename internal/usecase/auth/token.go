package auth

// TokenManager abstracts token issuance and verification.
type TokenManager interface {
	Generate(email string) (string, error)
	Validate(token string) (string, error)
}
