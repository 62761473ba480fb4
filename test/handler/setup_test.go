package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"notesapi/internal/handler"
	"notesapi/internal/middleware"
	"notesapi/internal/repo"
	"notesapi/internal/revoke"
	"notesapi/internal/service"
	"notesapi/test/testutil"
)

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(conn)
	noteRepo := repo.NewNoteRepo(conn)
	tagRepo := repo.NewTagRepo(conn)
	noteTagRepo := repo.NewNoteTagRepo(conn)
	revokedRepo := repo.NewRevokedTokenRepo(conn)

	jwtSecret := []byte("test-secret")
	accessTTL := 3 * time.Hour
	refreshTTL := 14 * 24 * time.Hour
	revocations := revoke.NewStore(revokedRepo, 128, time.Minute)

	authService := service.NewAuthService(userRepo, revocations, jwtSecret, accessTTL, refreshTTL)
	noteService := service.NewNoteService(noteRepo, noteTagRepo, tagRepo)
	tagService := service.NewTagService(tagRepo, noteTagRepo)
	exportService := service.NewExportService(noteRepo, tagRepo, noteTagRepo)

	cookies := handler.NewCookieWriter(false, accessTTL, refreshTTL)

	deps := handler.RouterDeps{
		Auth:        handler.NewAuthHandler(authService, cookies),
		Notes:       handler.NewNoteHandler(noteService),
		Tags:        handler.NewTagHandler(tagService),
		Export:      handler.NewExportHandler(exportService),
		JWTSecret:   jwtSecret,
		Revocations: revocations,
	}

	engine, err := webapi.NewEngine(
		"/api",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerAndLogin(t *testing.T, router http.Handler, username, password string) []*http.Cookie {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/auth/register/", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/token/", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 2)
	return cookies
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), target))
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
