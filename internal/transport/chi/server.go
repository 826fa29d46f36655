// Package chi wires the HTTP API onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/plateful/recipe-search/internal/domain"
	"github.com/plateful/recipe-search/internal/domain/search/request"
	"github.com/plateful/recipe-search/internal/domain/search/result"
	"github.com/plateful/recipe-search/internal/domain/search/view"
	"github.com/plateful/recipe-search/internal/domain/viewer"
	healthuc "github.com/plateful/recipe-search/internal/usecase/health"
	searchuc "github.com/plateful/recipe-search/internal/usecase/search"
	usersuc "github.com/plateful/recipe-search/internal/usecase/users"
)

// IdentityResolver extracts the viewer identity from an Authorization header.
type IdentityResolver interface {
	Resolve(authorizationHeader string) (viewer.Context, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search API over HTTP.
type Server struct {
	search        *searchuc.Service
	users         *usersuc.Service
	health        *healthuc.Service
	resolver      IdentityResolver
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	users *usersuc.Service,
	health *healthuc.Service,
	resolver IdentityResolver,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		users:    users,
		health:   health,
		resolver: resolver,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrAuthenticationRequired, http.StatusUnauthorized, "authentication_required"),
		sentinelHandler(domain.ErrInvalidCredential, http.StatusUnauthorized, "invalid_credential"),
		sentinelHandler(domain.ErrInvalidPagination, http.StatusUnprocessableEntity, "invalid_pagination"),
		sentinelHandler(domain.ErrRelationshipServiceUnavailable, http.StatusBadGateway, "relationship_service_unavailable"),
		sentinelHandler(domain.ErrSearchBackendUnavailable, http.StatusBadGateway, "search_backend_unavailable"),
		sentinelHandler(domain.ErrUserDirectoryUnavailable, http.StatusBadGateway, "user_directory_unavailable"),
	}
	return s
}

// Routes mounts the API onto the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search/users", s.SearchUsers)
	r.Get("/search/{view}", s.SearchRecipes)
	r.Get("/health", s.HealthCheck)
}

// searchResultItem is one recipe hit in the response body. Score is
// omitted under recency order.
type searchResultItem struct {
	ID     string         `json:"id"`
	Score  *float64       `json:"score,omitempty"`
	Recipe map[string]any `json:"recipe"`
}

type searchResponse struct {
	Results []searchResultItem `json:"results"`
}

// SearchRecipes handles GET /search/{view}.
func (s *Server) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	v := view.View(chi.URLParam(r, "view"))
	if !v.IsValid() {
		writeError(w, http.StatusNotFound, "unknown_view", "unknown search view")
		return
	}

	vc, err := s.resolver.Resolve(r.Header.Get("Authorization"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	skip, err := intParam(r, "skip", 0)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_pagination", err.Error())
		return
	}
	limit, err := intParam(r, "limit", request.DefaultLimit)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_pagination", err.Error())
		return
	}
	maxTotalTime, err := intParam(r, "max_total_time", 0)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_parameter", err.Error())
		return
	}

	req, err := request.New(v,
		r.URL.Query().Get("q"),
		r.URL.Query().Get("category"),
		maxTotalTime, skip, limit,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, err := s.search.Search(r.Context(), vc, &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]searchResultItem, len(hits))
	for i := range hits {
		items[i] = hitToItem(&hits[i])
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: items})
}

// SearchUsers handles GET /search/users.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusUnprocessableEntity, "invalid_parameter", "q is required")
		return
	}

	skip, err := intParam(r, "skip", 0)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_pagination", err.Error())
		return
	}
	limit, err := intParam(r, "limit", request.DefaultLimit)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_pagination", err.Error())
		return
	}

	results, err := s.users.Search(r.Context(), q, skip, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func hitToItem(h *result.Hit) searchResultItem {
	return searchResultItem{
		ID:     h.ID(),
		Score:  h.Score(),
		Recipe: h.Fields(),
	}
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrAuthenticationRequired,
		domain.ErrInvalidCredential,
		domain.ErrInvalidPagination,
		domain.ErrRelationshipServiceUnavailable,
		domain.ErrSearchBackendUnavailable,
		domain.ErrUserDirectoryUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
