package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
	"github.com/jakduk/jakduk-go/internal/rest/request"
	"github.com/jakduk/jakduk-go/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// ArticleHandler represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// GetBySeq will get one article by board and seq. Viewing counts once per
// viewer key within the dedup window.
func (a *ArticleHandler) GetBySeq(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	viewerKey := c.GetString(middleware.ContextViewerKey)
	userID := contextUserID(c)

	detail, err := a.Service.GetBySeq(c.Request.Context(), board, seq, viewerKey, userID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleDetailFromDomain(&detail))
}

// List will fetch one page of a board listing
func (a *ArticleHandler) List(c *gin.Context) {
	board, err := domain.ParseBoardType(c.Param("board"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid board"})
		return
	}

	page, err := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.ParseInt(c.DefaultQuery("size", "0"), 10, 64)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	result, err := a.Service.List(c.Request.Context(), board, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticlePageFromDomain(result))
}

// Write will store the article by given request body
func (a *ArticleHandler) Write(c *gin.Context) {
	board, err := domain.ParseBoardType(c.Param("board"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid board"})
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := req.ToDomain()
	article.Board = board
	article.Writer.ID = c.GetInt64(middleware.ContextUserID)

	if err := a.Service.Write(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Edit updates subject/content of the caller's own article
func (a *ArticleHandler) Edit(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := req.ToDomain()
	article.Board = board
	article.Seq = seq

	userID := c.GetInt64(middleware.ContextUserID)
	if err := a.Service.Edit(c.Request.Context(), userID, &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&article))
}

// Delete removes the caller's article. 댓글이 달린 글은 본문만 지워진다.
func (a *ArticleHandler) Delete(c *gin.Context) {
	board, seq, ok := boardSeqParams(c)
	if !ok {
		return
	}

	userID := c.GetInt64(middleware.ContextUserID)
	status, err := a.Service.Delete(c.Request.Context(), userID, board, seq)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if status == domain.ArticleContentDeleted {
		c.JSON(http.StatusOK, gin.H{"result": "content_deleted"})
		return
	}
	c.Status(http.StatusNoContent)
}

func boardSeqParams(c *gin.Context) (domain.BoardType, int64, bool) {
	board, err := domain.ParseBoardType(c.Param("board"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid board"})
		return "", 0, false
	}
	seq, err := strconv.ParseInt(c.Param("seq"), 10, 64)
	if err != nil || seq <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return "", 0, false
	}
	return board, seq, true
}

// contextUserID reads the optionally-authenticated caller; 0 means anonymous.
func contextUserID(c *gin.Context) int64 {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// getStatusCode maps domain errors onto HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
