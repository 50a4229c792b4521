package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-srv/pkg/discord"
	pkgErrors "admin-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MsgSuccess,
		Data:      data,
	})
}

// Error renders an error response. HTTPError values map to their status code;
// anything else is a 500 and is reported to the notifier so operators see
// failures the client only receives a generic message for.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(c.Request.Context(),
			"Internal Server Error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			err)
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MsgInternalError,
	})
}

// ErrorWithMap renders err through a sentinel-to-HTTPError mapping, falling
// back to Error for unmapped values.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	for sentinel, httpErr := range mapping {
		if errors.Is(err, sentinel) {
			Error(c, httpErr, notifier)
			return
		}
	}
	Error(c, err, notifier)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MsgUnauthorized,
	})
}

// PanicError reports a recovered panic and writes a 500 response.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(c.Request.Context(),
			"Panic Recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("panic: %v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MsgInternalError,
	})
}

// Attachment streams a generated file as a browser download. The body is
// written as-is; callers are responsible for any BOM prefix.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, body)
}
