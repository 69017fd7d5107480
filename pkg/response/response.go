package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
	"github.com/noah-isme/campus-concierge-api/pkg/middleware/requestid"
)

// Meta carries list counts and request correlation alongside a payload.
type Meta map[string]interface{}

// Envelope is the body of every JSON API response.
type Envelope struct {
	Data  interface{}      `json:"data"`
	Error *appErrors.Error `json:"error,omitempty"`
	Meta  Meta             `json:"meta,omitempty"`
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}

// JSON writes data with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = Meta(meta[0])
	}
	c.JSON(status, envelope)
}

// List writes a collection with its length under meta.count, merged with extra.
func List[T any](c *gin.Context, items []T, extra map[string]interface{}) {
	if items == nil {
		items = []T{}
	}
	meta := map[string]interface{}{"count": len(items)}
	for k, v := range extra {
		meta[k] = v
	}
	JSON(c, http.StatusOK, items, meta)
}

func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error converts err to an *appErrors.Error and writes it with the request id, when present.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	envelope := Envelope{Error: appErr}
	if id := requestid.Value(c); id != "" {
		envelope.Meta = Meta{"request_id": id}
	}
	c.JSON(appErr.Status, envelope)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
