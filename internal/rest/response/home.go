package response

import "github.com/jakduk/jakduk-go/domain"

type Gallery struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FileName  string `json:"file_name"`
	CreatedAt string `json:"created_at"`
}

// Home mirrors the snapshot: every category is present even when empty.
type Home struct {
	HomeDescription string    `json:"home_description"`
	Users           []User    `json:"users"`
	Articles        []Article `json:"articles"`
	Comments        []Comment `json:"comments"`
	Galleries       []Gallery `json:"galleries"`
}

func NewHomeFromDomain(s domain.HomeSnapshot) Home {
	res := Home{
		HomeDescription: s.HomeDescription,
		Users:           make([]User, 0, len(s.Users)),
		Articles:        make([]Article, 0, len(s.Articles)),
		Comments:        make([]Comment, 0, len(s.Comments)),
		Galleries:       make([]Gallery, 0, len(s.Galleries)),
	}

	for i := range s.Users {
		if u := NewUserFromDomain(&s.Users[i]); u != nil {
			res.Users = append(res.Users, *u)
		}
	}
	for i := range s.Articles {
		article := NewArticleFromDomain(&s.Articles[i])
		article.Content = ""
		res.Articles = append(res.Articles, article)
	}
	for i := range s.Comments {
		if c := NewCommentFromDomain(&s.Comments[i]); c != nil {
			res.Comments = append(res.Comments, *c)
		}
	}
	for _, g := range s.Galleries {
		res.Galleries = append(res.Galleries, Gallery{
			ID:        g.ID,
			Name:      g.Name,
			FileName:  g.FileName,
			CreatedAt: g.CreatedAt.Format(DateTimeFormat),
		})
	}

	return res
}
