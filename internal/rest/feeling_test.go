package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
)

type stubFeelingUsecase struct {
	domain.FeelingUsecase
	result domain.FeelingResult
	err    error

	gotUserID  int64
	gotFeeling domain.FeelingType
}

func (s *stubFeelingUsecase) SetArticleFeeling(_ context.Context, userID int64, _ domain.BoardType, _ int64, feeling domain.FeelingType) (domain.FeelingResult, error) {
	s.gotUserID = userID
	s.gotFeeling = feeling
	return s.result, s.err
}

func newFeelingRouter(svc domain.FeelingUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := rest.NewFeelingHandler(svc)

	r := gin.New()
	r.POST("/api/board/:board/:seq/feeling/:feeling", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(7))
	}, handler.SetArticleFeeling)
	return r
}

func TestSetArticleFeelingHandler(t *testing.T) {
	svc := &stubFeelingUsecase{result: domain.FeelingResult{
		MyFeeling: domain.FeelingLike,
		Counts:    domain.FeelingCounts{Likes: 4, Dislikes: 1},
	}}
	router := newFeelingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/board/free/3/feeling/like", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.gotUserID)
	assert.Equal(t, domain.FeelingLike, svc.gotFeeling)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LIKE", body["my_feeling"])
	assert.Equal(t, float64(4), body["number_of_like"])
	assert.Equal(t, float64(1), body["number_of_dislike"])
}

func TestSetArticleFeelingHandlerAfterWithdraw(t *testing.T) {
	// toggle-off answers with a null feeling and the fresh counts
	svc := &stubFeelingUsecase{result: domain.FeelingResult{MyFeeling: domain.FeelingNone}}
	router := newFeelingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/board/free/3/feeling/like", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	value, present := body["my_feeling"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestSetArticleFeelingHandlerErrors(t *testing.T) {
	cases := []struct {
		name string
		url  string
		err  error
		want int
	}{
		{"own article", "/api/board/free/3/feeling/like", domain.ErrForbidden, http.StatusForbidden},
		{"missing article", "/api/board/free/404/feeling/like", domain.ErrNotFound, http.StatusNotFound},
		{"lost race twice", "/api/board/free/3/feeling/like", domain.ErrConflict, http.StatusConflict},
		{"unknown kind", "/api/board/free/3/feeling/meh", nil, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newFeelingRouter(&stubFeelingUsecase{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tc.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
