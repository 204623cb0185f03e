package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"welltix/config"
	"welltix/internal/session"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(
	t *testing.T,
	authService *AuthServiceMock,
	eventService *EventServiceMock,
	transaksiService *TransaksiServiceMock,
	sessions session.Manager,
) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.LoadTestConfig()
	return NewRouter(cfg, sessions, authService, eventService, transaksiService, "../../web/templates/*.html")
}

func createFormRequest(method, target string, values url.Values) *http.Request {
	req, _ := http.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// createMultipartRequest builds a multipart form with text fields and an
// optional single file part named "poster".
func createMultipartRequest(method, target string, fields map[string]string, poster []byte) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if poster != nil {
		fw, _ := w.CreateFormFile("poster", "poster.jpg")
		_, _ = fw.Write(poster)
	}
	_ = w.Close()

	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func loginAs(t *testing.T, sessions session.Manager, username string) *http.Cookie {
	t.Helper()
	id, err := sessions.Create(context.Background(), username)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return &http.Cookie{Name: "welltix_session", Value: id}
}
