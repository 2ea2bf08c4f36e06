package users

// User is the caller-supplied username/credential-secret pair. It is
// unvalidated input until it has passed through Register or Login.
//
// Secret is an opaque verifier (normally a password hash computed by the
// caller). The service stores and compares it verbatim.
type User struct {
	Username string
	Secret   string
}
