package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the tagged failure returned to callers. The wrapped internal
// error is logged, never serialized.
type Err struct {
	statusCode int
	err        error

	Msg string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Int("status", e.statusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.statusCode, e)
}

// ErrBadRequest covers malformed bodies and InvalidPayload failures;
// the message carries the full violation list.
func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		err:        err,
		Msg:        fmt.Sprintf("invalid payload. errors=[%v]", err),
	}
}

func ErrNotFound(resource, field string, value any) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found (%v=%v)", resource, field, value),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		err:        err,
		Msg:        "wrong credentials",
	}
}

func ErrTokenMissing() *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        "authentication required",
	}
}

func ErrTokenInvalid(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		err:        err,
		Msg:        "authentication failed",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		err:        err,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError hides the cause from the caller; details go to
// the log only.
func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		err:        err,
		Msg:        "something went wrong",
	}
}
