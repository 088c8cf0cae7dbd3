package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jim-flores/odontosys-bk/internal/model"
)

// Summary shapes embed only scalar fields so that denormalized views stay
// one level deep: each endpoint returns the entity plus its immediate
// relations, never a recursive tree.

type CompanySummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
}

type BranchSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CompanyID uuid.UUID `json:"companyId"`
}

type UserSummary struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	LastName string           `json:"lastName"`
	Email    string           `json:"email"`
	Status   model.UserStatus `json:"status"`
	BranchID uuid.UUID        `json:"branchId"`
}

type ClientSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	LastName string    `json:"lastName"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	BranchID uuid.UUID `json:"branchId"`
}

type RoleSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CompanyID   uuid.UUID `json:"companyId"`
}

type PermissionView struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Description string    `json:"description"`
}

// RoleWithPermissions is the role shape embedded in company and user views.
type RoleWithPermissions struct {
	RoleSummary
	Permissions []PermissionView `json:"permissions"`
}

// ── Full views (entity + immediate relations) ────────────────────────────────

type CompanyView struct {
	CompanySummary
	Branches  []BranchSummary       `json:"branches"`
	Roles     []RoleWithPermissions `json:"roles"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type BranchView struct {
	BranchSummary
	Company   *CompanySummary `json:"company,omitempty"`
	Users     []UserSummary   `json:"users"`
	Clients   []ClientSummary `json:"clients"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type UserView struct {
	UserSummary
	DNI       *string               `json:"dni,omitempty"`
	Phone     *string               `json:"phone,omitempty"`
	Address   *string               `json:"address,omitempty"`
	Branch    *BranchSummary        `json:"branch,omitempty"`
	Roles     []RoleWithPermissions `json:"roles"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type ClientView struct {
	ClientSummary
	Notes     string         `json:"notes"`
	Branch    *BranchSummary `json:"branch,omitempty"`
	User      *UserSummary   `json:"user,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type RoleView struct {
	RoleSummary
	Company     *CompanySummary  `json:"company,omitempty"`
	Permissions []PermissionView `json:"permissions"`
	Users       []UserSummary    `json:"users"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type PermissionDetail struct {
	PermissionView
	Roles     []RoleSummary `json:"roles"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ── Builders ─────────────────────────────────────────────────────────────────

func NewCompanySummary(m model.Company) CompanySummary {
	return CompanySummary{ID: m.ID, Name: m.Name, Description: m.Description, LogoURL: m.LogoURL}
}

func NewBranchSummary(m model.Branch) BranchSummary {
	return BranchSummary{ID: m.ID, Name: m.Name, Address: m.Address, Phone: m.Phone, CompanyID: m.CompanyID}
}

func NewUserSummary(m model.User) UserSummary {
	return UserSummary{ID: m.ID, Name: m.Name, LastName: m.LastName, Email: m.Email, Status: m.Status, BranchID: m.BranchID}
}

func NewClientSummary(m model.Client) ClientSummary {
	return ClientSummary{ID: m.ID, Name: m.Name, LastName: m.LastName, Phone: m.Phone, Email: m.Email, BranchID: m.BranchID}
}

func NewRoleSummary(m model.Role) RoleSummary {
	return RoleSummary{ID: m.ID, Name: m.Name, Description: m.Description, CompanyID: m.CompanyID}
}

func NewPermissionView(m model.Permission) PermissionView {
	return PermissionView{ID: m.ID, Key: m.Key, Description: m.Description}
}

func NewRoleWithPermissions(m model.Role) RoleWithPermissions {
	perms := make([]PermissionView, len(m.Permissions))
	for i, p := range m.Permissions {
		perms[i] = NewPermissionView(p)
	}
	return RoleWithPermissions{RoleSummary: NewRoleSummary(m), Permissions: perms}
}

func NewCompanyView(m model.Company) CompanyView {
	branches := make([]BranchSummary, len(m.Branches))
	for i, b := range m.Branches {
		branches[i] = NewBranchSummary(b)
	}
	roles := make([]RoleWithPermissions, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = NewRoleWithPermissions(r)
	}
	return CompanyView{
		CompanySummary: NewCompanySummary(m),
		Branches:       branches,
		Roles:          roles,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func NewBranchView(m model.Branch) BranchView {
	v := BranchView{
		BranchSummary: NewBranchSummary(m),
		Users:         make([]UserSummary, len(m.Users)),
		Clients:       make([]ClientSummary, len(m.Clients)),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Company != nil {
		c := NewCompanySummary(*m.Company)
		v.Company = &c
	}
	for i, u := range m.Users {
		v.Users[i] = NewUserSummary(u)
	}
	for i, cl := range m.Clients {
		v.Clients[i] = NewClientSummary(cl)
	}
	return v
}

func NewUserView(m model.User) UserView {
	v := UserView{
		UserSummary: NewUserSummary(m),
		DNI:         m.DNI,
		Phone:       m.Phone,
		Address:     m.Address,
		Roles:       make([]RoleWithPermissions, len(m.Roles)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Branch != nil {
		b := NewBranchSummary(*m.Branch)
		v.Branch = &b
	}
	for i, r := range m.Roles {
		v.Roles[i] = NewRoleWithPermissions(r)
	}
	return v
}

func NewClientView(m model.Client) ClientView {
	v := ClientView{
		ClientSummary: NewClientSummary(m),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Branch != nil {
		b := NewBranchSummary(*m.Branch)
		v.Branch = &b
	}
	if m.User != nil {
		u := NewUserSummary(*m.User)
		v.User = &u
	}
	return v
}

func NewRoleView(m model.Role) RoleView {
	v := RoleView{
		RoleSummary: NewRoleSummary(m),
		Permissions: make([]PermissionView, len(m.Permissions)),
		Users:       make([]UserSummary, len(m.Users)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Company != nil {
		c := NewCompanySummary(*m.Company)
		v.Company = &c
	}
	for i, p := range m.Permissions {
		v.Permissions[i] = NewPermissionView(p)
	}
	for i, u := range m.Users {
		v.Users[i] = NewUserSummary(u)
	}
	return v
}

func NewPermissionDetail(m model.Permission) PermissionDetail {
	roles := make([]RoleSummary, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = NewRoleSummary(r)
	}
	return PermissionDetail{
		PermissionView: NewPermissionView(m),
		Roles:          roles,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
