// Package chi holds the gateway's HTTP surface.
package chi

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atlasmesh/geocoder/internal/gateway"
	"github.com/atlasmesh/geocoder/internal/version"
)

// Server exposes the gateway service over HTTP.
type Server struct {
	gateway *gateway.Service
	webRoot string
	logger  *zap.Logger
}

// NewServer creates the HTTP API server. webRoot points at the directory
// holding the static landing page.
func NewServer(gw *gateway.Service, webRoot string, logger *zap.Logger) *Server {
	return &Server{gateway: gw, webRoot: webRoot, logger: logger}
}

// Routes mounts all handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Post("/api/findAddress", s.handleFindAddress)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"data_nodes": s.gateway.ShardCount(),
	})
}

// handleIndex serves the landing page, falling back to a JSON service
// descriptor when the static file is absent.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := filepath.Join(s.webRoot, "index.html")
	if _, err := os.Stat(page); err == nil {
		http.ServeFile(w, r, page)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":   "Geocoding Gateway",
		"version":   version.Version,
		"endpoints": []string{"/health", "/api/findAddress"},
	})
}

type findAddressRequest struct {
	// Pointer distinguishes a missing field from an empty one.
	Address *string `json:"address"`
}

type resultJSON struct {
	Hash           string  `json:"hash"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Number         string  `json:"number"`
	Street         string  `json:"street"`
	Unit           string  `json:"unit"`
	City           string  `json:"city"`
	Postcode       string  `json:"postcode"`
	ShardID        int     `json:"shard_id"`
	RelevanceScore float64 `json:"relevance_score"`
}

type findAddressResponse struct {
	Query           string       `json:"query"`
	QueryTerms      []string     `json:"query_terms"`
	Results         []resultJSON `json:"results"`
	ResultCount     int          `json:"result_count"`
	SuccessfulNodes int          `json:"successful_nodes"`
	FailedNodes     int          `json:"failed_nodes"`
	Error           string       `json:"error,omitempty"`
}

func (s *Server) handleFindAddress(w http.ResponseWriter, r *http.Request) {
	var req findAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Address == nil {
		writeError(w, http.StatusBadRequest, "Missing 'address' field in request body")
		return
	}
	if *req.Address == "" {
		writeError(w, http.StatusBadRequest, "Address keyword cannot be empty")
		return
	}

	terms := gateway.PrepareTerms(*req.Address)
	if len(terms) == 0 {
		writeError(w, http.StatusBadRequest, "Address keyword must contain at least one term")
		return
	}

	result := s.gateway.FindAddress(r.Context(), *req.Address, terms)

	resp := findAddressResponse{
		Query:           result.Query,
		QueryTerms:      result.QueryTerms,
		Results:         make([]resultJSON, 0, len(result.Results)),
		ResultCount:     len(result.Results),
		SuccessfulNodes: result.SuccessfulNodes,
		FailedNodes:     result.FailedNodes,
	}
	for _, scored := range result.Results {
		rec := scored.Record
		resp.Results = append(resp.Results, resultJSON{
			Hash:           rec.GetHash(),
			Longitude:      rec.GetLongitude(),
			Latitude:       rec.GetLatitude(),
			Number:         rec.GetNumber(),
			Street:         rec.GetStreet(),
			Unit:           rec.GetUnit(),
			City:           rec.GetCity(),
			Postcode:       rec.GetPostcode(),
			ShardID:        scored.ShardID,
			RelevanceScore: scored.Score,
		})
	}

	// All shards succeeding with zero results is still a 200; only a zero
	// success count makes the response a 503.
	switch {
	case result.AllFailed():
		resp.Error = "All data nodes failed to respond"
		writeJSON(w, http.StatusServiceUnavailable, resp)
	case result.PartialFailure():
		writeJSON(w, http.StatusMultiStatus, resp)
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
