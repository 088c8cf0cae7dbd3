package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jim-flores/odontosys-bk/internal/apierror"
	"github.com/Jim-flores/odontosys-bk/internal/dto"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

type RolesHandler struct{ svc service.RoleService }

func NewRolesHandler(svc service.RoleService) *RolesHandler {
	return &RolesHandler{svc: svc}
}

func (h *RolesHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, resp, "Role created successfully")
}

func (h *RolesHandler) List(c *gin.Context) {
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

func (h *RolesHandler) GetByID(c *gin.Context) {
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

func (h *RolesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Role updated successfully")
}

func (h *RolesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "Role deleted successfully")
}

// Assign godoc
// @Summary  Attach a role to a user
// @Tags     roles
// @Produce  json
// @Security BearerAuth
// @Param    userId path string true "User ID"
// @Param    roleId path string true "Role ID"
// @Success  200 {object} dto.AssignmentView
// @Router   /roles/assign/{userId}/{roleId} [put]
func (h *RolesHandler) Assign(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleId")
	if !ok {
		return
	}
	resp, err := h.svc.AssignRoleToUser(c.Request.Context(), userID, roleID)
	if err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, resp, "Role assigned successfully")
}

func (h *RolesHandler) Unassign(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	roleID, ok := parseID(c, "roleId")
	if !ok {
		return
	}
	if err := h.svc.RemoveRoleFromUser(c.Request.Context(), userID, roleID); err != nil {
		fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "Role unassigned successfully")
}
