package handle

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hint-relay/api/internal/assist"
)

// Asker is the part of assist.Assistant the handlers need.
type Asker interface {
	Ask(ctx context.Context, intent assist.Intent, q assist.ProblemQuery) assist.Result
}

type Handle struct {
	asker   Asker
	service string
}

func New(asker Asker, service string) *Handle {
	return &Handle{
		asker:   asker,
		service: service,
	}
}

// Health reports liveness only; it never touches the model.
func (h *Handle) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
	})
}

func detail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": msg})
}

// NotFound and MethodNotAllowed keep router errors in the same shape as
// validation errors.
func NotFound(c *gin.Context) {
	detail(c, http.StatusNotFound, "Not Found")
}

func MethodNotAllowed(c *gin.Context) {
	detail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
}
