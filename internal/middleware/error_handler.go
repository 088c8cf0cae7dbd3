package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
)

type errorBody struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Success   bool      `json:"success"`
	Error     errorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
	Path      string    `json:"path"`
}

func renderError(c *gin.Context, apiErr *apierror.Error) {
	c.AbortWithStatusJSON(apiErr.Status, errorEnvelope{
		Success: false,
		Error: errorBody{
			Message: apiErr.Message,
			Code:    apiErr.Code,
			Details: apiErr.Details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
	})
}

// ErrorHandler is the single error boundary. Handlers attach errors with
// c.Error and abort; this middleware translates the last one into the
// error envelope. Raw driver errors and stack traces never reach clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		apiErr := apierror.FromDB(err)

		event := log.Warn()
		if apiErr.Status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", apiErr.Status).
			Err(err).
			Msg("request failed")

		renderError(c, apiErr)
	}
}

// Recovery converts panics into 500 responses in the same envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				renderError(c, apierror.Internal("Internal server error"))
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
