package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/types"
)

// scriptedClient returns canned responses in order, then repeats the last one.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
}

func (c *scriptedClient) Complete(_ context.Context, _, _ string, _ llm.Options) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	i := c.calls
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	c.calls++
	if i < 0 {
		return "", nil
	}
	return c.responses[i], nil
}

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	srv, err := New(Config{Port: 0, Client: client})
	require.NoError(t, err)
	t.Cleanup(srv.store.Stop)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, srv *Server) string {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["session_id"])
	return resp["session_id"]
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})

	w := doJSON(t, srv, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data types.CVData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Empty(t, data.WorkExperience)

	w = doJSON(t, srv, http.MethodDelete, "/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetSession_InvalidID(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})

	w := doJSON(t, srv, http.MethodGet, "/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePutPersonal(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{
		FullName: "Ada Lovelace",
		Title:    "Engineer",
		Email:    "ada@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	var data types.CVData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "Ada Lovelace", data.PersonalInfo.FullName)
}

func TestHandleUploadPhoto(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	// Minimal PNG header so content-type detection sees an image.
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/personal/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["profile_image"], "data:image/png;base64,"))

	// A later personal-info replace without an image keeps the photo.
	w2 := doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{FullName: "Ada"})
	require.Equal(t, http.StatusOK, w2.Code)

	w3 := doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	var data types.CVData
	require.NoError(t, json.Unmarshal(w3.Body.Bytes(), &data))
	assert.Equal(t, resp["profile_image"], data.PersonalInfo.ProfileImage)
}

func TestHandleUploadPhoto_NotAnImage(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, definitely not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/personal/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectionRowLifecycle(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	// Add a defaulted experience row.
	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/experience/rows", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var row types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))
	require.NotEmpty(t, row.ID)
	assert.Equal(t, []string{""}, row.Achievements)

	// Update fields one by one, the way the editor UI does.
	base := "/sessions/" + id + "/experience/rows/" + row.ID
	w = doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "position", Value: "Engineer"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "current", Value: true})
	require.Equal(t, http.StatusOK, w.Code)

	var list []types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Engineer", list[0].Position)
	assert.Equal(t, "Present", list[0].EndDate)

	// Delete the row.
	w = doJSON(t, srv, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestHandleUpdateRow_Errors(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/education/rows", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var row types.Education
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))

	// Unknown row id.
	w = doJSON(t, srv, http.MethodPatch, "/sessions/"+id+"/education/rows/nope",
		types.UpdateFieldRequest{Field: "degree", Value: "BSc"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown field name.
	w = doJSON(t, srv, http.MethodPatch, "/sessions/"+id+"/education/rows/"+row.ID,
		types.UpdateFieldRequest{Field: "gpa", Value: "4.0"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown section.
	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/hobbies/rows", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing field name fails validation.
	w = doJSON(t, srv, http.MethodPatch, "/sessions/"+id+"/education/rows/"+row.ID,
		types.UpdateFieldRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePutSection(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	// Rows without ids get them assigned server-side.
	w := doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/languages", []types.Language{
		{Language: "French", Proficiency: "Professional Working Proficiency"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var langs []types.Language
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &langs))
	require.Len(t, langs, 1)
	assert.NotEmpty(t, langs[0].ID)

	w = doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/skills", []string{"Go", "SQL"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/hobbies", []string{"x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSkillEndpoints(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/skills", types.AddSkillRequest{Skill: "Python"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Skills []string `json:"skills"`
		Added  bool     `json:"added"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Added)
	assert.Equal(t, []string{"Python"}, resp.Skills)

	// Exact duplicate is rejected; a case variant is a different skill.
	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/skills", types.AddSkillRequest{Skill: "Python"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Added)

	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/skills", types.AddSkillRequest{Skill: "python"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Added)
	assert.Equal(t, []string{"Python", "python"}, resp.Skills)

	w = doJSON(t, srv, http.MethodDelete, "/sessions/"+id+"/skills/python", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Python"}, resp.Skills)

	// Blank skill fails validation.
	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/skills", types.AddSkillRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAchievementEndpoints(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/experience/rows", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var row types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))

	base := fmt.Sprintf("/sessions/%s/experience/rows/%s/achievements", id, row.ID)

	w = doJSON(t, srv, http.MethodPost, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"", ""}, list[0].Achievements)

	w = doJSON(t, srv, http.MethodPatch, base+"/0", map[string]string{"value": "Shipped v2"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"Shipped v2", ""}, list[0].Achievements)

	w = doJSON(t, srv, http.MethodDelete, base+"/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"Shipped v2"}, list[0].Achievements)

	// The last line is kept rather than removed.
	w = doJSON(t, srv, http.MethodDelete, base+"/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, []string{"Shipped v2"}, list[0].Achievements)

	// Out-of-range index.
	w = doJSON(t, srv, http.MethodPatch, base+"/5", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistAchievementsEndpoint(t *testing.T) {
	client := &scriptedClient{responses: []string{`["Reduced latency by 30%", "Led a team of 4"]`}}
	srv := newTestServer(t, client)
	id := createSession(t, srv)

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/experience/rows", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var row types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))

	base := "/sessions/" + id + "/experience/rows/" + row.ID

	// Prerequisites missing: remote untouched, 422.
	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/achievements",
		types.AchievementAssistRequest{ExperienceID: row.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Zero(t, client.calls)

	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "position", Value: "Engineer"})
	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "company", Value: "Initech"})

	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/achievements",
		types.AchievementAssistRequest{ExperienceID: row.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Experience []types.WorkExperience `json:"experience"`
		Notice     string                 `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Reduced latency by 30%", "Led a team of 4"}, resp.Experience[0].Achievements)
	assert.Equal(t, "AI suggestions generated successfully", resp.Notice)
}

func TestAssistAchievementsEndpoint_BadRequest(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	// experience_id must be a uuid.
	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/achievements",
		types.AchievementAssistRequest{ExperienceID: "row-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistSkillsEndpoint(t *testing.T) {
	client := &scriptedClient{responses: []string{`["Go", "Docker"]`}}
	srv := newTestServer(t, client)
	id := createSession(t, srv)

	// No title yet.
	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/skills", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{Title: "Backend Engineer"})

	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Skills []string `json:"skills"`
		Notice string   `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "Docker"}, resp.Skills)
	assert.Equal(t, "added 2 AI-suggested skills", resp.Notice)
}

func TestAssistEndpoint_RemoteFailure(t *testing.T) {
	client := &scriptedClient{err: assert.AnError}
	srv := newTestServer(t, client)
	id := createSession(t, srv)

	doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{Title: "Engineer"})

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/skills", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// The skill list is untouched.
	w = doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	var data types.CVData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Empty(t, data.Skills)
}

func TestHandlePreview(t *testing.T) {
	srv := newTestServer(t, &scriptedClient{})
	id := createSession(t, srv)

	doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{FullName: "Ada Lovelace"})

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/preview", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Ada Lovelace")
	assert.Contains(t, w.Body.String(), `id="cv-content"`)
}

func TestFullEditingScenario(t *testing.T) {
	client := &scriptedClient{responses: []string{`["Reduced latency by 30%", "Led a team of 4"]`}}
	srv := newTestServer(t, client)
	id := createSession(t, srv)

	doJSON(t, srv, http.MethodPut, "/sessions/"+id+"/personal", types.PersonalInfo{
		FullName: "Ada Lovelace",
		Title:    "Backend Engineer",
	})

	w := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/experience/rows", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var row types.WorkExperience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &row))

	base := "/sessions/" + id + "/experience/rows/" + row.ID
	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "position", Value: "Engineer"})
	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "company", Value: "Initech"})
	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "start_date", Value: "Jan 2020"})
	doJSON(t, srv, http.MethodPatch, base, types.UpdateFieldRequest{Field: "current", Value: true})

	w = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/assist/achievements",
		types.AchievementAssistRequest{ExperienceID: row.ID})
	require.Equal(t, http.StatusOK, w.Code)

	doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/skills", types.AddSkillRequest{Skill: "Go"})

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/preview", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "Initech")
	assert.Contains(t, html, "Jan 2020 – Present")
	assert.Contains(t, html, "Reduced latency by 30%")
	assert.Contains(t, html, "Go")
}
