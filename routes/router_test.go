package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"matrimony_server/db"
	"matrimony_server/middleware"
	"matrimony_server/services"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter wires the full route surface against an in-memory
// database, the same way main does.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := &services.UserService{DB: conn}
	search := &services.SearchService{DB: conn}
	interests := &services.InterestService{DB: conn}
	chat := &services.ChatService{DB: conn}
	tokens := &services.TokenService{Secret: []byte("testsecret"), TTL: time.Hour}
	photos, err := services.NewDiskPhotoStore(filepath.Join(t.TempDir(), "uploads", "profile_photos"))
	if err != nil {
		t.Fatalf("photo store: %v", err)
	}

	r := mux.NewRouter()
	authenticate := middleware.Authenticate(tokens)
	RegisterAuthRoutes(r, users, tokens, authenticate)
	RegisterProfileRoutes(r, users, photos, authenticate)
	RegisterSearchRoutes(r, search, authenticate)
	RegisterInterestRoutes(r, interests, authenticate)
	RegisterChatRoutes(r, chat, authenticate)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func loginFor(t *testing.T, r *mux.Router, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200 got %d (%s)", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("empty token for %s", email)
	}
	return resp.Token
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401 got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("invalid token: expected 403 got %d", rec.Code)
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "alice", "email": "a@x.com", "password": "pw1"})
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "alice", "email": "a@x.com", "password": "pw1"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401 got %d", w.Code)
	}

	token := loginFor(t, r, "a@x.com", "pw1")
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200 got %d", w.Code)
	}
	var me struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	decodeBody(t, w, &me)
	if me.Name != "alice" || me.Email != "a@x.com" || me.ID == 0 {
		t.Fatalf("unexpected me payload: %+v", me)
	}
}

// TestInterestAndMessagingScenario walks the whole workflow: two users
// register, alice sends an interest (the duplicate is a conflict), bob
// accepts it, then they exchange messages and both see the same thread.
func TestInterestAndMessagingScenario(t *testing.T) {
	r := newTestRouter(t)

	for _, u := range []map[string]string{
		{"name": "alice", "email": "a@x.com", "password": "pw1"},
		{"name": "bob", "email": "b@x.com", "password": "pw2"},
	} {
		if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", u); w.Code != http.StatusOK {
			t.Fatalf("register %s: got %d", u["email"], w.Code)
		}
	}
	aliceToken := loginFor(t, r, "a@x.com", "pw1")
	bobToken := loginFor(t, r, "b@x.com", "pw2")

	var alice, bob struct {
		ID uint `json:"id"`
	}
	decodeBody(t, doJSON(t, r, http.MethodGet, "/api/auth/me", aliceToken, nil), &alice)
	decodeBody(t, doJSON(t, r, http.MethodGet, "/api/auth/me", bobToken, nil), &bob)

	// Profiles for search.
	w := doJSON(t, r, http.MethodPut, "/api/auth/profile", aliceToken,
		map[string]interface{}{"age": 25, "gender": "Female", "location": "Pune"})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/search", bobToken,
		map[string]string{"gender": "Female", "location": "Pune"})
	if w.Code != http.StatusOK {
		t.Fatalf("search: got %d", w.Code)
	}
	var found []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &found)
	if len(found) != 1 || found[0].Name != "alice" {
		t.Fatalf("search should find alice only, got %+v", found)
	}

	// Interest workflow.
	w = doJSON(t, r, http.MethodPost, "/api/auth/interest", aliceToken, map[string]uint{"receiverId": bob.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("send interest: got %d (%s)", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/interest", aliceToken, map[string]uint{"receiverId": bob.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate interest: expected 409 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/interest", aliceToken, map[string]uint{"receiverId": alice.ID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self interest: expected 400 got %d", w.Code)
	}

	var bobList struct {
		Received []struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
			Sender struct {
				Name string `json:"name"`
			} `json:"sender"`
		} `json:"received"`
	}
	decodeBody(t, doJSON(t, r, http.MethodGet, "/api/auth/interests", bobToken, nil), &bobList)
	if len(bobList.Received) != 1 || bobList.Received[0].Status != "pending" || bobList.Received[0].Sender.Name != "alice" {
		t.Fatalf("unexpected received interests: %+v", bobList)
	}
	interestID := bobList.Received[0].ID
	interestPath := "/api/auth/interest/" + itoa(interestID) + "/status"

	// Alice is the sender, not the receiver.
	w = doJSON(t, r, http.MethodPut, interestPath, aliceToken, map[string]string{"status": "accepted"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("sender accepting: expected 403 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPut, interestPath, bobToken, map[string]string{"status": "blocked"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus status: expected 400 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPut, interestPath, bobToken, map[string]string{"status": "accepted"})
	if w.Code != http.StatusOK {
		t.Fatalf("accept: got %d (%s)", w.Code, w.Body.String())
	}
	decodeBody(t, doJSON(t, r, http.MethodGet, "/api/auth/interests", bobToken, nil), &bobList)
	if bobList.Received[0].Status != "accepted" {
		t.Fatalf("expected accepted, got %q", bobList.Received[0].Status)
	}

	// Messaging.
	w = doJSON(t, r, http.MethodPost, "/api/auth/message", aliceToken, map[string]interface{}{"receiverId": bob.ID, "message": "hi"})
	if w.Code != http.StatusOK {
		t.Fatalf("alice message: got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/message", bobToken, map[string]interface{}{"receiverId": alice.ID, "message": "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("bob message: got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/message", aliceToken, map[string]interface{}{"receiverId": bob.ID, "message": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty message: expected 400 got %d", w.Code)
	}

	var history []struct {
		SenderID uint   `json:"sender_id"`
		Body     string `json:"message"`
	}
	decodeBody(t, doJSON(t, r, http.MethodGet, "/api/auth/messages/"+itoa(bob.ID), aliceToken, nil), &history)
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].SenderID != alice.ID || history[0].Body != "hi" ||
		history[1].SenderID != bob.ID || history[1].Body != "hello" {
		t.Fatalf("history out of order: %+v", history)
	}
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
