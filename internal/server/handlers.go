package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/stylekart/erabu/internal/models"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request", zap.String("keywords", req.Keywords), zap.Int("limit", req.Limit))
	s.respondJSON(w, http.StatusOK, s.engine.Search(&req))
}

type recommendRequest struct {
	Text    string                `json:"text"`
	Profile *models.VisualProfile `json:"visual_profile,omitempty"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" && req.Profile == nil {
		s.respondError(w, http.StatusBadRequest, "text or visual_profile is required")
		return
	}
	s.respondJSON(w, http.StatusOK, s.engine.Recommend(req.Text, req.Profile))
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req models.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	breakdown := r.URL.Query().Get("breakdown") == "true"
	s.respondJSON(w, http.StatusOK, s.engine.Rank(&req, breakdown))
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.TrendRequest{
		Region: q.Get("region"),
		Event:  q.Get("event"),
	}
	if raw := q.Get("top_k"); raw != "" {
		topK, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid top_k")
			return
		}
		req.TopK = topK
	} else {
		req.Validate()
	}
	s.respondJSON(w, http.StatusOK, s.engine.Trending(&req))
}

func (s *Server) handleCatalogReload(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reload(); err != nil {
		s.logger.Error("catalog reload failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	snap := s.store.Snapshot()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "reloaded",
		"products": len(snap.Products),
		"version":  snap.Version,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"products":        len(snap.Products),
		"catalog_version": snap.Version,
		"loaded_at":       snap.LoadedAt,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
