package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/sb-infra/sbinfra-backend/internal/api/http"
	"github.com/sb-infra/sbinfra-backend/internal/api/http/middleware"
	"github.com/sb-infra/sbinfra-backend/internal/auth"
	authhttp "github.com/sb-infra/sbinfra-backend/internal/auth/http"
	authmw "github.com/sb-infra/sbinfra-backend/internal/auth/middleware"
	leadshttp "github.com/sb-infra/sbinfra-backend/internal/leads/http"
	leadsrepo "github.com/sb-infra/sbinfra-backend/internal/leads/repository"
	leadssvc "github.com/sb-infra/sbinfra-backend/internal/leads/service"
	pkgshttp "github.com/sb-infra/sbinfra-backend/internal/packages/http"
	pkgsrepo "github.com/sb-infra/sbinfra-backend/internal/packages/repository"
	projectshttp "github.com/sb-infra/sbinfra-backend/internal/projects/http"
	projectsrepo "github.com/sb-infra/sbinfra-backend/internal/projects/repository"
	projectssvc "github.com/sb-infra/sbinfra-backend/internal/projects/service"
	"github.com/sb-infra/sbinfra-backend/internal/storage/jsonfile"
	"github.com/sb-infra/sbinfra-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AdminSecret string
	Store       *jsonfile.Store
	Uploads     *uploads.Store
}

// BuildRouter wires every module onto a gin engine. Services built here
// are also returned for callers that need them outside the request
// path (the orphan sweep).
func BuildRouter(dep RouterDeps) (*gin.Engine, *projectssvc.ProjectService) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	// Uploaded images are served straight off disk.
	r.Static("/uploads", dep.Uploads.Dir())

	guard := auth.NewGuard(dep.AdminSecret)
	requireAdmin := authmw.RequireAdmin(guard)

	api := r.Group("/api")

	authhttp.New(guard).Register(api.Group("/admin"))

	leadService := leadssvc.NewLeadService(leadsrepo.NewLeadRepository(dep.Store))
	leadshttp.New(leadService).Register(api.Group("/leads"), requireAdmin)

	projectService := projectssvc.NewProjectService(
		projectsrepo.NewProjectRepository(dep.Store),
		dep.Uploads,
	)
	projectshttp.New(projectService).Register(api.Group("/projects"), requireAdmin)

	pkgshttp.New(pkgsrepo.NewPackageRepository(dep.Store.Dir())).Register(api.Group("/packages"))

	return r, projectService
}
