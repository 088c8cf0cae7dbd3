package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Jim-flores/odontosys-bk/internal/config"
	"github.com/Jim-flores/odontosys-bk/internal/gateway"
	"github.com/Jim-flores/odontosys-bk/internal/handler"
	"github.com/Jim-flores/odontosys-bk/internal/middleware"
	"github.com/Jim-flores/odontosys-bk/internal/model"
	"github.com/Jim-flores/odontosys-bk/internal/repository"
	"github.com/Jim-flores/odontosys-bk/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *gateway.Hub) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	companyRepo := repository.NewCompanyRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	companySvc := service.NewCompanyService(companyRepo)
	branchSvc := service.NewBranchService(branchRepo)
	userSvc := service.NewUserService(userRepo)
	clientSvc := service.NewClientService(clientRepo)
	roleSvc := service.NewRoleService(roleRepo, userRepo)
	permissionSvc := service.NewPermissionService(permissionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	companiesH := handler.NewCompaniesHandler(companySvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	usersH := handler.NewUsersHandler(userSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	rolesH := handler.NewRolesHandler(roleSvc)
	permissionsH := handler.NewPermissionsHandler(permissionSvc)

	// ── Public routes ────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/auth/register", authH.Register)
	r.GET("/companies/actual", companiesH.GetActual)
	r.GET("/ws", gateway.Serve(hub, cfg.JWTSecret))

	// ── Authenticated routes ─────────────────────────────────────────────────
	auth := r.Group("/", middleware.JWTAuth(cfg.JWTSecret))
	{
		auth.GET("/auth/profile", authH.Profile)

		auth.PATCH("/companies/actual",
			middleware.RequirePermission(model.PermManageCompany), companiesH.UpdateActual)

		companies := auth.Group("/companies", middleware.RequirePermission(model.PermManageCompany))
		{
			companies.POST("", companiesH.Create)
			companies.GET("", companiesH.List)
			companies.GET("/:id", companiesH.GetByID)
			companies.PATCH("/:id", companiesH.Update)
			companies.DELETE("/:id", companiesH.Delete)
		}

		branches := auth.Group("/branches", middleware.RequirePermission(model.PermManageCompany))
		{
			branches.POST("", branchesH.Create)
			branches.GET("", branchesH.List)
			branches.GET("/:id", branchesH.GetByID)
			branches.PATCH("/:id", branchesH.Update)
			branches.DELETE("/:id", branchesH.Delete)
		}

		// Reads allow the weaker view permission alongside the manage one.
		users := auth.Group("/users")
		{
			canView := middleware.RequirePermission(model.PermManageUsers, model.PermViewUsers)
			canManage := middleware.RequirePermission(model.PermManageUsers)
			users.POST("", canManage, usersH.Create)
			users.GET("", canView, usersH.List)
			users.GET("/:id", canView, usersH.GetByID)
			users.PATCH("/:id", canManage, usersH.Update)
			users.DELETE("/:id", canManage, usersH.Delete)
		}

		clients := auth.Group("/clients")
		{
			canView := middleware.RequirePermission(model.PermManageClients, model.PermViewClients)
			canManage := middleware.RequirePermission(model.PermManageClients)
			clients.POST("", canManage, clientsH.Create)
			clients.GET("", canView, clientsH.List)
			clients.GET("/:id", canView, clientsH.GetByID)
			clients.PATCH("/:id", canManage, clientsH.Update)
			clients.DELETE("/:id", canManage, clientsH.Delete)
		}

		roles := auth.Group("/roles", middleware.RequirePermission(model.PermManageRoles))
		{
			roles.POST("", rolesH.Create)
			roles.GET("", rolesH.List)
			roles.GET("/:id", rolesH.GetByID)
			roles.PATCH("/:id", rolesH.Update)
			roles.DELETE("/:id", rolesH.Delete)
			roles.PUT("/assign/:userId/:roleId", rolesH.Assign)
			roles.DELETE("/unassign/:userId/:roleId", rolesH.Unassign)
		}

		permissions := auth.Group("/permissions", middleware.RequirePermission(model.PermManageRoles))
		{
			permissions.POST("", permissionsH.Create)
			permissions.GET("", permissionsH.List)
			permissions.GET("/:id", permissionsH.GetByID)
			permissions.PATCH("/:id", permissionsH.Update)
			permissions.DELETE("/:id", permissionsH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
