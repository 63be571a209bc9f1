package model

const (
	EntityName = "usuario"
	StoreName  = "usuarios"
	AdminID    = "USR-001"
)

// User is an account allowed into the admin area.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
}

func IDOf(u User) string {
	return u.ID
}
