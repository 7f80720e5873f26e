package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
	"mediBookNotify/internal/modules/notifications/infrastructure"
	"mediBookNotify/internal/shared/auth"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*echo.Echo, *infrastructure.MemoryNotificationRepository) {
	t.Helper()
	repo := infrastructure.NewMemoryNotificationRepository()
	handler := NewNotificationHandler(usecase.NewNotificationUseCase(repo))

	e := echo.New()
	e.GET("/health", Health)
	api := e.Group("/api/notifications", auth.Middleware(auth.NewJWTValidator(testSecret)))
	handler.Register(api)
	return e, repo
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createNotification(t *testing.T, repo *infrastructure.MemoryNotificationRepository, userID string) *domain.Notification {
	t.Helper()
	n, err := repo.Create(context.Background(), domain.CreateNotificationInput{
		UserID:  userID,
		Type:    domain.NotificationAppointmentCreated,
		Title:   "New Appointment Request",
		Message: "msg",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return n
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationRoutesRequireToken(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	rec := doRequest(e, http.MethodGet, "/api/notifications", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/notifications", "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListNotificationsScopedToCaller(t *testing.T) {
	t.Parallel()

	e, repo := newTestServer(t)
	createNotification(t, repo, "u1")
	createNotification(t, repo, "u2")

	rec := doRequest(e, http.MethodGet, "/api/notifications", signToken(t, "u1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list []domain.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(list) != 1 || list[0].UserID != "u1" {
		t.Fatalf("expected only u1's notifications, got %#v", list)
	}
}

func TestMarkAsReadAndUnreadList(t *testing.T) {
	t.Parallel()

	e, repo := newTestServer(t)
	n := createNotification(t, repo, "u1")
	token := signToken(t, "u1")

	rec := doRequest(e, http.MethodPatch, "/api/notifications/"+n.ID+"/read", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated domain.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !updated.Read {
		t.Fatal("expected read flag set")
	}

	rec = doRequest(e, http.MethodGet, "/api/notifications/unread", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var unread []domain.Notification
	if err := json.Unmarshal(rec.Body.Bytes(), &unread); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("expected no unread notifications, got %d", len(unread))
	}
}

func TestMarkAsReadForeignNotificationIsNotFound(t *testing.T) {
	t.Parallel()

	e, repo := newTestServer(t)
	n := createNotification(t, repo, "u1")

	rec := doRequest(e, http.MethodPatch, "/api/notifications/"+n.ID+"/read", signToken(t, "intruder"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMarkAllAsReadReturnsCount(t *testing.T) {
	t.Parallel()

	e, repo := newTestServer(t)
	createNotification(t, repo, "u1")
	createNotification(t, repo, "u1")

	rec := doRequest(e, http.MethodPatch, "/api/notifications/read-all", signToken(t, "u1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["count"] != 2 {
		t.Fatalf("expected count 2, got %d", body["count"])
	}
}

func TestDeleteNotification(t *testing.T) {
	t.Parallel()

	e, repo := newTestServer(t)
	n := createNotification(t, repo, "u1")
	token := signToken(t, "u1")

	rec := doRequest(e, http.MethodDelete, "/api/notifications/"+n.ID, token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodDelete, "/api/notifications/"+n.ID, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}
