package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/openclaw/qrgen/workflow"
)

type editURLRequest struct {
	Text string `json:"text"`
}

type submitRequest struct {
	URL string `json:"url"`
}

type editFilenameRequest struct {
	Filename string `json:"filename"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Controller.Snapshot())
}

func (s *Server) handleEditURL(w http.ResponseWriter, r *http.Request) {
	var req editURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.dispatch(w, r, workflow.EditURL{Text: req.Text})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.dispatch(w, r, workflow.Submit{Text: req.URL})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, workflow.Reset{})
}

func (s *Server) handleRequestDownload(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, workflow.RequestDownload{})
}

func (s *Server) handleEditFilename(w http.ResponseWriter, r *http.Request) {
	var req editFilenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.dispatch(w, r, workflow.EditFilename{Raw: req.Filename})
}

func (s *Server) handleConfirmDownload(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, workflow.ConfirmDownload{})
}

func (s *Server) handleCancelDownload(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, workflow.CancelDownload{})
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, workflow.ToggleTheme{})
}

// dispatch runs ev and answers with the new snapshot, or with the PNG as an
// attachment when the event committed a download.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev workflow.Event) {
	snap, cmds := s.Controller.Dispatch(r.Context(), ev)
	for _, cmd := range cmds {
		if save, ok := cmd.(workflow.SaveFile); ok {
			writeAttachment(w, save)
			return
		}
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeAttachment(w http.ResponseWriter, save workflow.SaveFile) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", save.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(save.Artifact.PNG)))
	w.WriteHeader(http.StatusOK)
	w.Write(save.Artifact.PNG)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	art := s.Controller.Artifact()
	if art == nil {
		writeError(w, http.StatusNotFound, "no qr code generated")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(art.PNG)
}
