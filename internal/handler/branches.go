package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

type BranchesHandler struct{ svc service.BranchService }

func NewBranchesHandler(svc service.BranchService) *BranchesHandler {
	return &BranchesHandler{svc: svc}
}

func (h *BranchesHandler) Create(c *gin.Context) {
	var req dto.CreateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "Branch created successfully")
}

func (h *BranchesHandler) List(c *gin.Context) {
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

func (h *BranchesHandler) GetByID(c *gin.Context) {
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

func (h *BranchesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Branch updated successfully")
}

func (h *BranchesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "Branch deleted successfully")
}
