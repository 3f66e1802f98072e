package entity

import "time"

// User representa uma conta do aplicativo. A senha só existe como hash
// bcrypt; texto plano nunca é persistido nem logado.
type User struct {
	ID           int64
	Name         string
	Email        string // único
	PasswordHash string
	WhatsApp     *string
	CreatedAt    time.Time
}
