package entity

type User struct {
	Base
	Name         string  `db:"name"`
	Email        string  `db:"email"` // stored lowercase, unique
	PasswordHash string  `db:"password"`
	Address      *string `db:"address"`
	Role         Role    `db:"role"`
}
