package dto

import "tourbook/internal/domains/user/model"

type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

func (u *UserResponse) FromModel(m model.User) {
	u.ID = m.ID
	u.Email = m.Email
	u.Nombre = m.Name
	u.Rol = m.Role
}
