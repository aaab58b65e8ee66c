package response

import "github.com/jakduk/jakduk-go/domain"

type Comment struct {
	ID             int64  `json:"id"`
	ArticleID      int64  `json:"article_id"`
	Content        string `json:"content"`
	LikingCount    int64  `json:"liking_count"`
	DislikingCount int64  `json:"disliking_count"`
	CreatedAt      string `json:"created_at"`

	// Writer 댓글 작성자 정보
	Writer *User `json:"writer,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:             c.ID,
		ArticleID:      c.ArticleID,
		Content:        c.Content,
		LikingCount:    c.LikingCount,
		DislikingCount: c.DislikingCount,
		CreatedAt:      c.CreatedAt.Format(DateTimeFormat),
		Writer:         NewUserFromDomain(c.Writer),
	}
}
