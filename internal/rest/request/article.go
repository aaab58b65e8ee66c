package request

import "github.com/jakduk/jakduk-go/domain"

type Article struct {
	Subject string `json:"subject" binding:"required,max=60"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Subject: r.Subject,
		Content: r.Content,
	}
}
