package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
	"github.com/jakduk/jakduk-go/internal/rest/response"
)

type feelingHandler struct {
	Service domain.FeelingUsecase
}

func NewFeelingHandler(svc domain.FeelingUsecase) *feelingHandler {
	return &feelingHandler{
		Service: svc,
	}
}

// SetArticleFeeling toggles the caller's like/dislike on an article.
// Calling with the same kind twice withdraws it.
func (h *feelingHandler) SetArticleFeeling(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}
	feeling, err := domain.ParseFeelingType(c.Param("feeling"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid feeling"})
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)
	result, err := h.Service.SetArticleFeeling(c.Request.Context(), userID, board, seq, feeling)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFeelingFromDomain(result))
}

// SetCommentFeeling toggles the caller's like/dislike on a comment.
func (h *feelingHandler) SetCommentFeeling(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	feeling, err := domain.ParseFeelingType(c.Param("feeling"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid feeling"})
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)
	target := domain.FeelingTarget{Type: domain.TargetComment, ID: commentID}
	result, err := h.Service.SetFeeling(c.Request.Context(), userID, target, feeling)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFeelingFromDomain(result))
}

// ArticleFeelingUsers lists who liked and who disliked an article.
func (h *feelingHandler) ArticleFeelingUsers(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	users, err := h.Service.ArticleFeelingUsers(c.Request.Context(), board, seq)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFeelingUsersFromDomain(users))
}
