package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/rest/response"
)

type homeHandler struct {
	Service domain.HomeUsecase
}

func NewHomeHandler(svc domain.HomeUsecase) *homeHandler {
	return &homeHandler{
		Service: svc,
	}
}

// Latest serves the home snapshot. Categories that failed to load come back
// empty instead of failing the whole page.
func (h *homeHandler) Latest(c *gin.Context) {
	snapshot, err := h.Service.Latest(c.Request.Context(), domain.DefaultHomeLimits())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewHomeFromDomain(snapshot))
}

// Encyclopedia returns one random encyclopedia entry for the language.
func (h *homeHandler) Encyclopedia(c *gin.Context) {
	lang := c.DefaultQuery("lang", "ko")

	entry, err := h.Service.Encyclopedia(c.Request.Context(), lang)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
