package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagCRUD(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "judy", "secret")

	resp := doJSON(t, router, http.MethodGet, "/api/tags/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, "[]", resp.Body.String())

	createTag(t, router, cookies, "work")
	createTag(t, router, cookies, "errands")
	createTag(t, router, cookies, "archive")

	// Lexicographic order by name.
	resp = doJSON(t, router, http.MethodGet, "/api/tags/", nil, cookies)
	require.Equal(t, http.StatusOK, resp.Code)
	var tags []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeJSON(t, resp, &tags)
	require.Len(t, tags, 3)
	require.Equal(t, "archive", tags[0].Name)
	require.Equal(t, "errands", tags[1].Name)
	require.Equal(t, "work", tags[2].Name)

	resp = doJSON(t, router, http.MethodDelete, "/api/tags/"+tags[0].ID+"/", nil, cookies)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/tags/", nil, cookies)
	decodeJSON(t, resp, &tags)
	require.Len(t, tags, 2)
}

func TestTagUniquePerOwner(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	aliceCookies := registerAndLogin(t, router, "alice4", "secret")
	bobCookies := registerAndLogin(t, router, "bob4", "secret")

	createTag(t, router, aliceCookies, "shared-name")

	// Duplicate for the same owner fails validation.
	resp := doJSON(t, router, http.MethodPost, "/api/tags/", map[string]string{"name": "shared-name"}, aliceCookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var fields map[string][]string
	decodeJSON(t, resp, &fields)
	require.Contains(t, fields, "name")

	// Same name under another owner is fine.
	resp = doJSON(t, router, http.MethodPost, "/api/tags/", map[string]string{"name": "shared-name"}, bobCookies)
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestTagValidation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cookies := registerAndLogin(t, router, "kate", "secret")

	resp := doJSON(t, router, http.MethodPost, "/api/tags/", map[string]string{"name": ""}, cookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/tags/", map[string]string{
		"name": "0123456789012345678901234567890",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var fields map[string][]string
	decodeJSON(t, resp, &fields)
	require.Contains(t, fields, "name")
}

func TestTagOwnershipIsolation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	aliceCookies := registerAndLogin(t, router, "alice5", "secret")
	bobCookies := registerAndLogin(t, router, "bob5", "secret")

	tagID := createTag(t, router, aliceCookies, "mine")

	resp := doJSON(t, router, http.MethodDelete, "/api/tags/"+tagID+"/", nil, bobCookies)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/tags/", nil, bobCookies)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, "[]", resp.Body.String())
}
