package models

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Dni   string `json:"dni"`
	Type  string `json:"type"` // 'client' o 'admin'
}

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)
