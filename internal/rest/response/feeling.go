package response

import "github.com/jakduk/jakduk-go/domain"

// UserFeeling is the toggle result: the caller's feeling after the change
// plus the recomputed ledger counts.
type UserFeeling struct {
	MyFeeling       *string `json:"my_feeling"`
	NumberOfLike    int64   `json:"number_of_like"`
	NumberOfDislike int64   `json:"number_of_dislike"`
}

func NewUserFeelingFromDomain(r domain.FeelingResult) UserFeeling {
	res := UserFeeling{
		NumberOfLike:    r.Counts.Likes,
		NumberOfDislike: r.Counts.Dislikes,
	}
	if r.MyFeeling != domain.FeelingNone {
		feeling := r.MyFeeling.String()
		res.MyFeeling = &feeling
	}
	return res
}

type FeelingUsers struct {
	UsersLiking    []User `json:"users_liking"`
	UsersDisliking []User `json:"users_disliking"`
}

func NewFeelingUsersFromDomain(fu domain.FeelingUsers) FeelingUsers {
	res := FeelingUsers{
		UsersLiking:    make([]User, 0, len(fu.UsersLiking)),
		UsersDisliking: make([]User, 0, len(fu.UsersDisliking)),
	}
	for i := range fu.UsersLiking {
		if u := NewUserFromDomain(&fu.UsersLiking[i]); u != nil {
			res.UsersLiking = append(res.UsersLiking, *u)
		}
	}
	for i := range fu.UsersDisliking {
		if u := NewUserFromDomain(&fu.UsersDisliking[i]); u != nil {
			res.UsersDisliking = append(res.UsersDisliking, *u)
		}
	}
	return res
}
