package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterCompanyRoutes mounts the company surface: collection, login,
// export, and the per-record routes.
func (r *Router) RegisterCompanyRoutes(h *CompanyHandler) {
	r.Handle(companyBasePath, h)
	r.Handle(companyBasePath+"/", h)
}

// RegisterSiteRoutes mounts the site surface.
func (r *Router) RegisterSiteRoutes(h *SiteHandler) {
	r.Handle(siteBasePath, h)
	r.Handle(siteBasePath+"/", h)
}
