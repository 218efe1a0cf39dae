package models

// Credential is a stored portal login. The password is kept only as a
// bcrypt hash.
type Credential struct {
	Email        string
	PasswordHash []byte
	DisplayName  string
}
