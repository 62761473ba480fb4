package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type noteBody struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt int64    `json:"created_at"`
	Tags      []string `json:"tags"`
}

func createNote(t *testing.T, router http.Handler, cookies []*http.Cookie, title string, tags []string) noteBody {
	t.Helper()
	body := map[string]interface{}{"title": title, "content": "body of " + title}
	if tags != nil {
		body["tags"] = tags
	}
	resp := doJSON(t, router, http.MethodPost, "/api/notes/", body, cookies)
	require.Equal(t, http.StatusCreated, resp.Code)
	var note noteBody
	decodeJSON(t, resp, &note)
	return note
}

func createTag(t *testing.T, router http.Handler, cookies []*http.Cookie, name string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/tags/", map[string]string{"name": name}, cookies)
	require.Equal(t, http.StatusCreated, resp.Code)
	var tag struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &tag)
	return tag.ID
}

func TestNoteCRUD(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "frank", "secret")

	resp := doJSON(t, router, http.MethodGet, "/api/notes/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, "[]", resp.Body.String())

	note := createNote(t, router, cookies, "first", nil)
	require.NotEmpty(t, note.ID)
	require.NotZero(t, note.CreatedAt)
	require.Empty(t, note.Tags)

	resp = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID+"/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID+"/", map[string]interface{}{
		"title": "renamed", "content": "new content",
	}, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	var updated noteBody
	decodeJSON(t, resp, &updated)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, note.CreatedAt, updated.CreatedAt)

	resp = doJSON(t, router, http.MethodPatch, "/api/notes/"+note.ID+"/", map[string]interface{}{
		"content": "patched",
	}, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	var patched noteBody
	decodeJSON(t, resp, &patched)
	require.Equal(t, "renamed", patched.Title)
	require.Equal(t, "patched", patched.Content)

	resp = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID+"/", nil, cookies)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID+"/", nil, cookies)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestNoteValidation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "grace", "secret")

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	resp := doJSON(t, router, http.MethodPost, "/api/notes/", map[string]interface{}{
		"title": string(long),
	}, cookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var fields map[string][]string
	decodeJSON(t, resp, &fields)
	require.Contains(t, fields, "title")

	resp = doJSON(t, router, http.MethodPost, "/api/notes/", map[string]interface{}{
		"content": "no title",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestNoteOwnershipIsolation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	aliceCookies := registerAndLogin(t, router, "alice2", "secret")
	bobCookies := registerAndLogin(t, router, "bob2", "secret")

	note := createNote(t, router, aliceCookies, "private", nil)

	resp := doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID+"/", nil, bobCookies)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID+"/", map[string]interface{}{
		"title": "stolen",
	}, bobCookies)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID+"/", nil, bobCookies)
	require.Equal(t, http.StatusNotFound, resp.Code)

	// Bob's listing never contains Alice's note.
	resp = doJSON(t, router, http.MethodGet, "/api/notes/", nil, bobCookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, "[]", resp.Body.String())
}

func TestNoteTagFilterAndOrdering(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "heidi", "secret")
	workTag := createTag(t, router, cookies, "work")
	homeTag := createTag(t, router, cookies, "home")

	first := createNote(t, router, cookies, "n1", []string{workTag})
	second := createNote(t, router, cookies, "n2", []string{workTag, homeTag})
	createNote(t, router, cookies, "n3", nil)

	resp := doJSON(t, router, http.MethodGet, "/api/notes/?tag="+workTag, nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	var notes []noteBody
	decodeJSON(t, resp, &notes)
	require.Len(t, notes, 2)
	// Newest first.
	require.Equal(t, second.ID, notes[0].ID)
	require.Equal(t, first.ID, notes[1].ID)

	resp = doJSON(t, router, http.MethodGet, "/api/notes/?tag="+homeTag, nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeJSON(t, resp, &notes)
	require.Len(t, notes, 1)
	require.Equal(t, second.ID, notes[0].ID)

	resp = doJSON(t, router, http.MethodGet, "/api/notes/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeJSON(t, resp, &notes)
	require.Len(t, notes, 3)
}

func TestNoteRejectsForeignTag(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	aliceCookies := registerAndLogin(t, router, "alice3", "secret")
	bobCookies := registerAndLogin(t, router, "bob3", "secret")

	aliceTag := createTag(t, router, aliceCookies, "secret-tag")

	resp := doJSON(t, router, http.MethodPost, "/api/notes/", map[string]interface{}{
		"title": "note", "tags": []string{aliceTag},
	}, bobCookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var fields map[string][]string
	decodeJSON(t, resp, &fields)
	require.Contains(t, fields, "tags")
}

func TestCookieAndHeaderAuthEquivalent(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "ivan", "secret")
	access := cookieByName(cookies, "access_token")

	// Cookie alone is enough, the bridge synthesizes the bearer header.
	resp := doJSON(t, router, http.MethodGet, "/api/notes/", nil, []*http.Cookie{access})
	require.Equal(t, http.StatusOK, resp.Code)

	// The same token in an explicit Authorization header also works.
	req := httptest.NewRequest(http.MethodGet, "/api/notes/", nil)
	req.Header.Set("Authorization", "Bearer "+access.Value)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// An Authorization header wins over a conflicting cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/notes/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(access)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
