package server

import (
	"log"
	"net/http"
)

// handlePreview renders the session's CV as a print-ready HTML document.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	html, err := s.renderer.Render(sess.Snapshot())
	if err != nil {
		log.Printf("Preview render failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("Error writing preview response: %v", err)
	}
}
