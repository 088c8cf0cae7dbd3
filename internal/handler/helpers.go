package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
)

var validate = validator.New()

// envelope is the uniform success body. Errors take a different shape
// and are rendered by the boundary middleware, not here.
type envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type pagedData struct {
	Rows       interface{}    `json:"rows"`
	Pagination dto.Pagination `json:"pagination"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondMessage(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondPaged(c *gin.Context, status int, rows interface{}, p dto.Pagination) {
	respond(c, status, pagedData{Rows: rows, Pagination: p})
}

// fail hands the error to the boundary middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindAndValidate binds the JSON body and runs validator tags. Returns
// false after attaching the error; the caller must return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, apierror.BadRequest("Malformed JSON body: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		fail(c, apierror.Validation(fields))
		return false
	}
	return true
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		fail(c, apierror.BadRequest("Invalid UUID in path parameter '"+name+"'"))
		return uuid.Nil, false
	}
	return id, true
}
