package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"heatwise-api/internal/domain"
	"heatwise-api/internal/service"

	"go.uber.org/zap"
)

const companyBasePath = "/company"

// companyResponse decorates a company with its hypermedia links.
type companyResponse struct {
	domain.Company
	Links []Link `json:"links"`
}

func companyWithLinks(c domain.Company) companyResponse {
	return companyResponse{Company: c, Links: resourceLinks(companyBasePath, c.ID)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyHandler exposes the company CRUD surface plus login and export.
type CompanyHandler struct {
	svc    *service.CompanyService
	logger *zap.Logger
}

func NewCompanyHandler(svc *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, logger: logger}
}

func (h *CompanyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == companyBasePath:
		switch r.Method {
		case http.MethodGet:
			h.index(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	case r.URL.Path == companyBasePath+"/login":
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.login(w, r)

	case r.URL.Path == companyBasePath+"/export":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.export(w, r)

	case strings.HasPrefix(r.URL.Path, companyBasePath+"/"):
		rest := strings.TrimPrefix(r.URL.Path, companyBasePath+"/")
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
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

func (h *CompanyHandler) index(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) create(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if err := readBodyJSON(r, 1<<20, &company); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	created, err := h.svc.Create(r.Context(), company)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, companyWithLinks(*created))
}

func (h *CompanyHandler) show(w http.ResponseWriter, r *http.Request, id int64) {
	company, err := h.svc.Show(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyWithLinks(*company))
}

func (h *CompanyHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	var company domain.Company
	if err := readBodyJSON(r, 1<<20, &company); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, company)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyWithLinks(*updated))
}

func (h *CompanyHandler) destroy(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompanyHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	company, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyWithLinks(*company))
}

func (h *CompanyHandler) export(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list companies for export", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	data, err := GenerateCompanyExport(companies)
	if err != nil {
		h.logger.Error("failed to generate company export", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="companies.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
