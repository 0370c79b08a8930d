package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/types"
)

// maxPhotoBytes caps the photo upload request body.
const maxPhotoBytes = 5 << 20

// ---------------------------------------------------------------------
// Session Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.jsonResponse(w, http.StatusCreated, map[string]string{"session_id": sess.ID.String()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	s.store.Delete(id)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handlePutPersonal(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	var info types.PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The photo is owned by the upload endpoint; a personal-info replace
	// without an image keeps the one already on file.
	if info.ProfileImage == "" {
		info.ProfileImage = sess.Snapshot().PersonalInfo.ProfileImage
	}

	sess.SetPersonalInfo(info)
	s.jsonResponse(w, http.StatusOK, info)
}

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	file, _, err := r.FormFile("photo")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read photo: "+err.Error())
		return
	}

	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "image/") {
		s.errorResponse(w, http.StatusBadRequest, "File is not an image")
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw))
	sess.SetProfileImage(dataURI)

	s.jsonResponse(w, http.StatusOK, map[string]string{"profile_image": dataURI})
}

// sessionFromPath resolves the {id} path segment to a live session,
// writing the error response itself when it cannot.
func (s *Server) sessionFromPath(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID")
		return nil, false
	}

	sess := s.store.Get(id)
	if sess == nil {
		s.errorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}
