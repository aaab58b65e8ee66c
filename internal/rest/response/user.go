package response

import "github.com/jakduk/jakduk-go/domain"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	About    string `json:"about,omitempty"`
}

func NewUserFromDomain(u *domain.User) *User {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &User{
		ID:       u.ID,
		Username: u.Username,
		About:    u.About,
	}
}
