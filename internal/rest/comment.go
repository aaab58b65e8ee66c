package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
	"github.com/jakduk/jakduk-go/internal/rest/request"
	"github.com/jakduk/jakduk-go/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := req.ToDomain()
	comment.UserID = c.GetInt64(middleware.ContextUserID)

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, board, seq, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)
	if err := h.Service.Delete(c.Request.Context(), commentID, userID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *commentHandler) FetchCommentsByArticle(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("size", "0"), 10, 64)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	cursor := c.Query("cursor")

	ctx := c.Request.Context()
	comments, nextCursor, err := h.Service.FetchByArticle(ctx, board, seq, cursor, limit)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(comments[i])
	}
	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
