package domain

// Hasher turns sensitive values into stable identifiers safe for logs.
type Hasher interface {
	Hash(data []byte) string
}
