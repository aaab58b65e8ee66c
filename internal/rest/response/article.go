package response

import (
	"github.com/jakduk/jakduk-go/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Article struct {
	ID             int64  `json:"id"`
	Board          string `json:"board"`
	Seq            int64  `json:"seq"`
	Subject        string `json:"subject"`
	Content        string `json:"content,omitempty"`
	Writer         *User  `json:"writer,omitempty"`
	Views          int64  `json:"views"`
	LikingCount    int64  `json:"liking_count"`
	DislikingCount int64  `json:"disliking_count"`
	UpdatedAt      string `json:"updated_at"`
	CreatedAt      string `json:"created_at"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:             a.ID,
		Board:          string(a.Board),
		Seq:            a.Seq,
		Subject:        a.Subject,
		Content:        a.Content,
		Writer:         NewUserFromDomain(&a.Writer),
		Views:          a.Views,
		LikingCount:    a.LikingCount,
		DislikingCount: a.DislikingCount,
		UpdatedAt:      a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:      a.CreatedAt.Format(DateTimeFormat),
	}
}

// ArticleDetail adds the caller's own feeling to the article view.
type ArticleDetail struct {
	Article
	MyFeeling *string `json:"my_feeling,omitempty"`
}

func NewArticleDetailFromDomain(d *domain.ArticleDetail) ArticleDetail {
	res := ArticleDetail{
		Article: NewArticleFromDomain(&d.Article),
	}
	if d.MyFeeling != domain.FeelingNone {
		feeling := d.MyFeeling.String()
		res.MyFeeling = &feeling
	}
	return res
}

// ArticlePage is one board listing window with pagination metadata.
type ArticlePage struct {
	Items         []Article `json:"items"`
	Number        int64     `json:"number"`
	Size          int64     `json:"size"`
	TotalElements int64     `json:"total_elements"`
	TotalPages    int64     `json:"total_pages"`
	First         bool      `json:"first"`
	Last          bool      `json:"last"`
}

func NewArticlePageFromDomain(p domain.Page[domain.Article]) ArticlePage {
	items := make([]Article, len(p.Items))
	for i := range p.Items {
		items[i] = NewArticleFromDomain(&p.Items[i])
		items[i].Content = "" // listings carry no body
	}
	return ArticlePage{
		Items:         items,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}
