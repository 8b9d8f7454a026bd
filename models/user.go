package models

// User is the public session identity. It deliberately has no password
// field; credentials live only in Credential records.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credential is a stored login record. Username and email are unique keys.
// Passwords are stored in plaintext; hash them before pointing this at
// real users.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
