package auth

import "github.com/pentaview/core/internal/models"

type RegisterDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Identity is the public view of an account. The password hash never leaves
// the service layer.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

func toIdentity(u *models.UserModel) Identity {
	return Identity{ID: u.ID, Email: u.Email, Name: u.Name}
}
