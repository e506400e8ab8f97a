package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/openclaw/qrgen/store"
)

type statusResponse struct {
	Phase   string `json:"phase"`
	Theme   string `json:"theme"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
	History bool   `json:"history"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Controller.Snapshot()
	uptime := time.Since(s.StartTime).Truncate(time.Second).String()

	writeJSON(w, http.StatusOK, statusResponse{
		Phase:   snap.Phase.String(),
		Theme:   snap.Theme.String(),
		Uptime:  uptime,
		Version: s.Version,
		History: s.History != nil,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		writeJSON(w, http.StatusOK, []store.Record{})
		return
	}

	limit := queryInt(r, "limit", s.HistoryLimit)
	records, err := s.History.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []store.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
