package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

type PermissionsHandler struct{ svc service.PermissionService }

func NewPermissionsHandler(svc service.PermissionService) *PermissionsHandler {
	return &PermissionsHandler{svc: svc}
}

func (h *PermissionsHandler) Create(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "Permission created successfully")
}

func (h *PermissionsHandler) List(c *gin.Context) {
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

func (h *PermissionsHandler) GetByID(c *gin.Context) {
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

func (h *PermissionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePermissionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Permission updated successfully")
}

func (h *PermissionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "Permission deleted successfully")
}
