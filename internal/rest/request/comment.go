package request

import "github.com/jakduk/jakduk-go/domain"

type Comment struct {
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Content: r.Content,
	}
}
