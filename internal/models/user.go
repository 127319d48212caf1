package models

import "time"

// User é a dona do estúdio. Aplicação single-tenant: um cadastro, um login.
type User struct {
	ID string `json:"id"`

	StudioName string `json:"studio_name"`

	Name  string `json:"name"`
	Email string `json:"email"`
	// Persistido pelo record store; handlers nunca devolvem o modelo cru.
	PasswordHash string `json:"password_hash"`
	Phone        string `json:"phone,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GetID() string     { return u.ID }
func (u *User) SetID(id string)   { u.ID = id }
func (u *User) Touch(t time.Time) { u.UpdatedAt = t }
