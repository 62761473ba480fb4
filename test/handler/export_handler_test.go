package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportPayload(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "leo", "secret")
	tagID := createTag(t, router, cookies, "journal")
	createNote(t, router, cookies, "entry", []string{tagID})

	resp := doJSON(t, router, http.MethodGet, "/api/export/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	var payload struct {
		Notes    []map[string]interface{} `json:"notes"`
		Tags     []map[string]interface{} `json:"tags"`
		NoteTags []map[string]interface{} `json:"note_tags"`
	}
	decodeJSON(t, resp, &payload)
	require.Len(t, payload.Notes, 1)
	require.Len(t, payload.Tags, 1)
	require.Len(t, payload.NoteTags, 1)
}

func TestExportNoteAsHTML(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "mia", "secret")
	resp := doJSON(t, router, http.MethodPost, "/api/notes/", map[string]interface{}{
		"title": "md", "content": "# Heading",
	}, cookies)
	require.Equal(t, http.StatusCreated, resp.Code)
	var note noteBody
	decodeJSON(t, resp, &note)

	resp = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID+"/export/?format=html", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "<h1")

	resp = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID+"/export/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "# Heading", resp.Body.String())
}
