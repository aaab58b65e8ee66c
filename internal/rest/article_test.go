package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
)

type stubArticleUsecase struct {
	domain.ArticleUsecase
	detail    domain.ArticleDetail
	detailErr error

	gotViewerKey string
	gotUserID    int64
}

func (s *stubArticleUsecase) GetBySeq(_ context.Context, _ domain.BoardType, _ int64, viewerKey string, userID int64) (domain.ArticleDetail, error) {
	s.gotViewerKey = viewerKey
	s.gotUserID = userID
	return s.detail, s.detailErr
}

func (s *stubArticleUsecase) List(_ context.Context, _ domain.BoardType, pageNumber, pageSize int64) (domain.Page[domain.Article], error) {
	return domain.NewPage([]domain.Article{}, pageNumber, pageSize, 0), nil
}

func newRouter(svc domain.ArticleUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := rest.NewArticleHandler(svc)

	r := gin.New()
	r.GET("/api/board/:board/:seq", func(c *gin.Context) {
		c.Set(middleware.ContextViewerKey, "viewer-a")
		c.Set(middleware.ContextUserID, int64(7))
	}, handler.GetBySeq)
	r.GET("/api/board/:board", handler.List)
	return r
}

func TestGetBySeqHandler(t *testing.T) {
	svc := &stubArticleUsecase{detail: domain.ArticleDetail{
		Article: domain.Article{
			ID:      10,
			Board:   domain.BoardFree,
			Seq:     3,
			Subject: "subject",
			Writer:  domain.User{ID: 1, Username: "writer"},
			Views:   101,
		},
		MyFeeling: domain.FeelingLike,
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board/free/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewer-a", svc.gotViewerKey)
	assert.Equal(t, int64(7), svc.gotUserID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LIKE", body["my_feeling"])
	assert.Equal(t, float64(101), body["views"])
}

func TestGetBySeqHandlerNotFound(t *testing.T) {
	svc := &stubArticleUsecase{detailErr: domain.ErrNotFound}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board/free/404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBySeqHandlerRejectsBadBoard(t *testing.T) {
	svc := &stubArticleUsecase{}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board/nonsense/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHandlerClampsPageParams(t *testing.T) {
	svc := &stubArticleUsecase{}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board/free?page=-1&size=9999", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["number"])
	assert.Equal(t, float64(20), body["size"])
	assert.Equal(t, true, body["last"])
	assert.NotNil(t, body["items"])
}

func TestResponseOmitsMyFeelingWhenNone(t *testing.T) {
	svc := &stubArticleUsecase{detail: domain.ArticleDetail{
		Article: domain.Article{
			ID:        10,
			Board:     domain.BoardFree,
			Seq:       3,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/board/free/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	_, present := body["my_feeling"]
	assert.False(t, present)
}
