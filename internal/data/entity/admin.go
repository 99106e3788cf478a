package entity

type Admin struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Active       bool   `db:"active"`
}
