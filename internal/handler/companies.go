package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

type CompaniesHandler struct{ svc service.CompanyService }

func NewCompaniesHandler(svc service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{svc: svc}
}

func (h *CompaniesHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "Company created successfully")
}

func (h *CompaniesHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, apierror.BadRequest("Invalid query parameters"))
		return
	}
	rows, p, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	respondPaged(c, http.StatusOK, rows, p)
}

// GetActual returns the first company ever created. It backs public
// branding screens, so it is mounted without authentication.
func (h *CompaniesHandler) GetActual(c *gin.Context) {
	resp, err := h.svc.GetActual(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *CompaniesHandler) UpdateActual(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateActual(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Company updated successfully")
}

func (h *CompaniesHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

func (h *CompaniesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Company updated successfully")
}

func (h *CompaniesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "Company deleted successfully")
}
