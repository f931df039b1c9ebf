package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"heatwise-api/internal/domain"
	"heatwise-api/internal/service"

	"go.uber.org/zap"
)

const siteBasePath = "/site"

type siteResponse struct {
	domain.Site
	Links []Link `json:"links"`
}

func siteWithLinks(s domain.Site) siteResponse {
	return siteResponse{Site: s, Links: resourceLinks(siteBasePath, s.ID)}
}

// SiteHandler exposes the site CRUD surface plus the reachability probe.
// No login concept here.
type SiteHandler struct {
	svc     *service.SiteService
	checker *service.SiteChecker
	logger  *zap.Logger
}

func NewSiteHandler(svc *service.SiteService, checker *service.SiteChecker, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{svc: svc, checker: checker, logger: logger}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == siteBasePath:
		switch r.Method {
		case http.MethodGet:
			h.index(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	case strings.HasPrefix(r.URL.Path, siteBasePath+"/"):
		rest := strings.TrimPrefix(r.URL.Path, siteBasePath+"/")
		parts := strings.Split(rest, "/")

		id, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// /site/{id}/health
		if len(parts) == 2 && parts[1] == "health" {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			h.health(w, r, id)
			return
		}
		if len(parts) != 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.show(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.destroy(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *SiteHandler) index(w http.ResponseWriter, r *http.Request) {
	sites, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list sites", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sites)
}

func (h *SiteHandler) create(w http.ResponseWriter, r *http.Request) {
	var site domain.Site
	if err := readBodyJSON(r, 1<<20, &site); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	created, err := h.svc.Create(r.Context(), site)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, siteWithLinks(*created))
}

func (h *SiteHandler) show(w http.ResponseWriter, r *http.Request, id int64) {
	site, err := h.svc.Show(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, siteWithLinks(*site))
}

func (h *SiteHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	var site domain.Site
	if err := readBodyJSON(r, 1<<20, &site); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, site)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, siteWithLinks(*updated))
}

func (h *SiteHandler) destroy(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SiteHandler) health(w http.ResponseWriter, r *http.Request, id int64) {
	status, err := h.checker.Check(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
