package handle

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"hint-relay/api/internal/assist"
)

// ProblemRequest is the wire body of /hint and /solution. Pointers let
// binding reject missing or null fields while still accepting "".
type ProblemRequest struct {
	Title *string `json:"title" binding:"required"`
	Desc  *string `json:"desc" binding:"required"`
}

func (h *Handle) Hint(c *gin.Context)     { h.assist(c, assist.IntentHint) }
func (h *Handle) Solution(c *gin.Context) { h.assist(c, assist.IntentSolution) }

// assist answers 200 whenever the body is well formed. Model failures are
// reported in the "error" field, not through the status code.
func (h *Handle) assist(c *gin.Context, intent assist.Intent) {
	var req ProblemRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	if err := singleValue(c); err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}

	q := assist.ProblemQuery{Title: *req.Title, Description: *req.Desc}
	log.WithField("title", q.Title).Infof("received %s request", intent)

	res := h.asker.Ask(c.Request.Context(), intent, q)
	if !res.OK() {
		c.JSON(http.StatusOK, gin.H{"error": res.Failure})
		return
	}
	c.JSON(http.StatusOK, gin.H{intent.String(): res.Text})
}

var errTrailingData = errors.New("unexpected data after JSON value")

// singleValue rejects bodies that carry anything but whitespace after the
// first JSON value; the binder alone stops reading at the end of it.
func singleValue(c *gin.Context) error {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return nil
	}
	body, _ := raw.([]byte)
	dec := json.NewDecoder(bytes.NewReader(body))
	var v json.RawMessage
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
