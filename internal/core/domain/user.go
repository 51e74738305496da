package domain

import "time"

// User is an account holder. Passwords are stored and compared as opaque
// strings, exactly as entered at registration.
// TODO: hash passwords before storing them.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
}
