// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"encoding/json"
	"net/http"

	"github.com/poiesic/frontdesk/answer"
	"github.com/poiesic/frontdesk/catalog"
)

// QueryParam carries the question on GET /chat.
const QueryParam = "frage"

// maxBodyBytes bounds a POST /chat body.
const maxBodyBytes = 64 << 10

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status  string         `json:"status"`
	Service string         `json:"service,omitempty"`
	Stats   *catalog.Stats `json:"stats,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Service: "frontdesk"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	stats := s.svc.Stats()
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "healthy", Stats: &stats})
}

func (s *Server) handleChatQuery(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, r.URL.Query().Get(QueryParam))
}

func (s *Server) handleChatBody(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.logger.Debug("invalid chat request", "err", err)
		s.writeJSON(w, http.StatusBadRequest, answer.ErrorResponse("Ungültige Anfrage."))
		return
	}
	s.answer(w, r, req.Message)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, question string) {
	resp := s.svc.Ask(r.Context(), question)
	status := http.StatusOK
	if resp.Type == answer.TypeError {
		status = http.StatusInternalServerError
		if r.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Reload(r.Context()); err != nil {
		s.logger.Error("reload failed", "err", err)
		s.writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "failed"})
		return
	}
	stats := s.svc.Stats()
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "reloaded", Stats: &stats})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}
