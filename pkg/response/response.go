package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is one entry in the validation error list returned by the API:
// {"errors":[{"msg":"..."}]}.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// Errors writes a field-level error list. Used for validation failures and
// credential errors, always with status 400.
func Errors(c *gin.Context, status int, msgs ...string) {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	c.JSON(status, gin.H{"errors": items})
}

// ErrorList writes an already-built error list.
func ErrorList(c *gin.Context, status int, items []ErrorItem) {
	c.JSON(status, gin.H{"errors": items})
}

// Msg writes a single-message body: {"msg":"..."}. Used for not-found,
// authorization, and confirmation responses. The status varies per route
// (profile routes answer 400 on missing resources, post routes 404).
func Msg(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// ServerError writes the generic 500 body. The underlying cause is logged
// by the caller, never surfaced.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
}
