package user

import (
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// User is the API response model for a user. The password hash is never
// included.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role" enum:"user,admin"`
	CreatedAt string `json:"createdAt" format:"date-time"`
}

func FromService(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Email:     u.Email,
		Nickname:  u.Nickname,
		Role:      u.Role.String(),
		CreatedAt: handlers.FormatTime(u.CreatedAt),
	}
}
