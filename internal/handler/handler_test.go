package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/savi-dev/savi/internal/service"
	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/domain"
	mw "github.com/savi-dev/savi/shared/middleware"
)

// --- Service mocks ---

type MockAuthService struct {
	MockSignUp          func(name, email, password string, role domain.Role) (domain.User, error)
	MockSignIn          func(email, password string, rememberMe bool) (domain.User, string, error)
	MockChangePassword  func(user *domain.User, oldPassword, newPassword string) error
	MockRememberedEmail func() (domain.Email, error)
}

func (m *MockAuthService) SignUp(ctx context.Context, name, email, password string, role domain.Role) (domain.User, error) {
	if m.MockSignUp != nil {
		return m.MockSignUp(name, email, password, role)
	}
	return domain.User{Name: name, Email: email, Role: role}, nil
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string, rememberMe bool) (domain.User, string, error) {
	if m.MockSignIn != nil {
		return m.MockSignIn(email, password, rememberMe)
	}
	return domain.User{Email: email}, "test-token", nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error {
	if m.MockChangePassword != nil {
		return m.MockChangePassword(user, oldPassword, newPassword)
	}
	return nil
}

func (m *MockAuthService) RememberedEmail(ctx context.Context) (domain.Email, error) {
	if m.MockRememberedEmail != nil {
		return m.MockRememberedEmail()
	}
	return "", nil
}

type MockThreadService struct {
	MockCreate func(author *domain.User, title, content string, media *domain.Media) (domain.Thread, error)
	MockList   func(query string, mode service.SortMode) []domain.Thread
	MockGet    func(id domain.ThreadId) (domain.Thread, []domain.Comment, error)
	MockReport func(reporter *domain.User, id domain.ThreadId, reason, details string) error
}

func (m *MockThreadService) Create(author *domain.User, title, content string, media *domain.Media) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(author, title, content, media)
	}
	return domain.Thread{Id: "t1", Title: title, Content: content}, nil
}

func (m *MockThreadService) List(query string, mode service.SortMode) []domain.Thread {
	if m.MockList != nil {
		return m.MockList(query, mode)
	}
	return nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.Thread, []domain.Comment, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Thread{Id: id}, nil, nil
}

func (m *MockThreadService) Report(reporter *domain.User, id domain.ThreadId, reason, details string) error {
	if m.MockReport != nil {
		return m.MockReport(reporter, id, reason, details)
	}
	return nil
}

type MockCommentService struct {
	MockAdd func(threadId domain.ThreadId, author *domain.User, content string, media *domain.Media) (domain.Comment, error)
}

func (m *MockCommentService) Add(ctx context.Context, threadId domain.ThreadId, author *domain.User, content string, media *domain.Media) (domain.Comment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(threadId, author, content, media)
	}
	return domain.Comment{Id: "c1", ThreadId: threadId, Content: content}, nil
}

func (m *MockCommentService) TechnicianReplies(threadId domain.ThreadId) ([]domain.Comment, error) {
	return nil, nil
}

func (m *MockCommentService) Ordinary(threadId domain.ThreadId) ([]domain.Comment, error) {
	return nil, nil
}

type MockVoteService struct {
	MockVote   func(threadId domain.ThreadId, viewerId string, direction domain.VoteDirection) (domain.Thread, error)
	MockViewer func(threadId domain.ThreadId, viewerId string) (domain.VoteDirection, error)
	MockLedger func(viewerId string) (map[domain.ThreadId]domain.VoteDirection, error)
}

func (m *MockVoteService) Vote(ctx context.Context, threadId domain.ThreadId, viewerId string, direction domain.VoteDirection) (domain.Thread, error) {
	if m.MockVote != nil {
		return m.MockVote(threadId, viewerId, direction)
	}
	return domain.Thread{Id: threadId, Upvotes: 1}, nil
}

func (m *MockVoteService) Viewer(ctx context.Context, threadId domain.ThreadId, viewerId string) (domain.VoteDirection, error) {
	if m.MockViewer != nil {
		return m.MockViewer(threadId, viewerId)
	}
	return domain.VoteNone, nil
}

func (m *MockVoteService) Ledger(ctx context.Context, viewerId string) (map[domain.ThreadId]domain.VoteDirection, error) {
	if m.MockLedger != nil {
		return m.MockLedger(viewerId)
	}
	return map[domain.ThreadId]domain.VoteDirection{}, nil
}

type MockNotificationService struct {
	MockFor                 func(user *domain.User) ([]domain.Notification, int, error)
	MockMarkRead            func(user *domain.User, id domain.NotificationId) error
	MockMarkAllRead         func(user *domain.User) error
	MockRemove              func(user *domain.User, id domain.NotificationId) error
	MockResolveRegistration func(admin *domain.User, id domain.NotificationId, action domain.NotificationAction) (string, error)
}

func (m *MockNotificationService) For(ctx context.Context, user *domain.User) ([]domain.Notification, int, error) {
	if m.MockFor != nil {
		return m.MockFor(user)
	}
	return nil, 0, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, user *domain.User, id domain.NotificationId) error {
	if m.MockMarkRead != nil {
		return m.MockMarkRead(user, id)
	}
	return nil
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, user *domain.User) error {
	if m.MockMarkAllRead != nil {
		return m.MockMarkAllRead(user)
	}
	return nil
}

func (m *MockNotificationService) Remove(ctx context.Context, user *domain.User, id domain.NotificationId) error {
	if m.MockRemove != nil {
		return m.MockRemove(user, id)
	}
	return nil
}

func (m *MockNotificationService) ResolveRegistration(ctx context.Context, admin *domain.User, id domain.NotificationId, action domain.NotificationAction) (string, error) {
	if m.MockResolveRegistration != nil {
		return m.MockResolveRegistration(admin, id, action)
	}
	return "", nil
}

func (m *MockNotificationService) Push(ctx context.Context, recipient domain.Email, n domain.Notification) error {
	return nil
}

func (m *MockNotificationService) NotifyThreadReply(ctx context.Context, recipient domain.Email, replierName, threadTitle string) error {
	return nil
}

func (m *MockNotificationService) NotifyPasswordChanged(ctx context.Context, recipient domain.Email) error {
	return nil
}

func (m *MockNotificationService) NotifyRegistrationRequest(ctx context.Context, applicant domain.User) error {
	return nil
}

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// --- Test harness ---

type testHandler struct {
	auth         *MockAuthService
	thread       *MockThreadService
	comment      *MockCommentService
	vote         *MockVoteService
	notification *MockNotificationService
	pinger       *MockPinger

	handler *Handler
	router  *mux.Router
}

func newTestHandler() *testHandler {
	th := &testHandler{
		auth:         &MockAuthService{},
		thread:       &MockThreadService{},
		comment:      &MockCommentService{},
		vote:         &MockVoteService{},
		notification: &MockNotificationService{},
		pinger:       &MockPinger{},
	}
	cfg := &config.Config{Public: config.Public{Port: 8080, MinPasswordLen: 8}}
	th.handler = New(th.auth, th.thread, th.comment, th.vote, th.notification, th.pinger, cfg)

	r := mux.NewRouter()
	h := th.handler
	r.HandleFunc("/v1/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/v1/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/v1/auth/logout", h.Logout).Methods("POST")
	r.HandleFunc("/v1/auth/remembered", h.RememberedEmail).Methods("GET")
	r.HandleFunc("/v1/auth/password", h.ChangePassword).Methods("POST")
	r.HandleFunc("/v1/threads", h.ListThreads).Methods("GET")
	r.HandleFunc("/v1/threads", h.CreateThread).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}", h.GetThread).Methods("GET")
	r.HandleFunc("/v1/threads/{thread}/votes", h.VoteThread).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}/report", h.ReportThread).Methods("POST")
	r.HandleFunc("/v1/threads/{thread}/comments", h.CreateComment).Methods("POST")
	r.HandleFunc("/v1/notifications", h.ListNotifications).Methods("GET")
	r.HandleFunc("/v1/notifications/read_all", h.MarkAllNotificationsRead).Methods("POST")
	r.HandleFunc("/v1/notifications/{notification}/read", h.MarkNotificationRead).Methods("POST")
	r.HandleFunc("/v1/notifications/{notification}", h.DeleteNotification).Methods("DELETE")
	r.HandleFunc("/v1/notifications/{notification}/resolve", h.ResolveRegistration).Methods("POST")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	th.router = r
	return th
}

func (th *testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

// asUser attaches an authenticated identity the way the auth middleware does.
func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
}
