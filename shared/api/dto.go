package api

import "github.com/savi-dev/savi/shared/domain"

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type MediaPayload struct {
	Url  string `json:"url" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=image video"`
}

type CreateThreadRequest struct {
	Title   string        `json:"title" validate:"required"`
	Content string        `json:"content" validate:"required"`
	Media   *MediaPayload `json:"media,omitempty"`
}

type CreateCommentRequest struct {
	Content string        `json:"content" validate:"required"`
	Media   *MediaPayload `json:"media,omitempty"`
}

type VoteRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type ReportRequest struct {
	Reason  string `json:"reason" validate:"required,oneof=negative pornography spam harassment misinformation other"`
	Details string `json:"details,omitempty"`
}

type ResolveRegistrationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// Response DTOs

type UserResponse struct {
	User domain.User `json:"user"`
}

type RememberedEmailResponse struct {
	Email string `json:"email"`
}

type ThreadListResponse struct {
	Threads []domain.Thread `json:"threads"`
	// ViewerVotes maps thread id to the viewer's recorded direction, so the
	// listing cards can highlight the active vote button.
	ViewerVotes map[domain.ThreadId]domain.VoteDirection `json:"viewerVotes,omitempty"`
}

// ThreadResponse is the thread detail payload: the thread itself, its comments
// split into technician replies and ordinary comments, the formatted score and
// the viewer's recorded vote direction.
type ThreadResponse struct {
	Thread            domain.Thread        `json:"thread"`
	TechnicianReplies []domain.Comment     `json:"technicianReplies"`
	Comments          []domain.Comment     `json:"comments"`
	Score             string               `json:"score"`
	ViewerVote        domain.VoteDirection `json:"viewerVote"`
}

type VoteResponse struct {
	Upvotes    int                  `json:"upvotes"`
	Downvotes  int                  `json:"downvotes"`
	Score      string               `json:"score"`
	ViewerVote domain.VoteDirection `json:"viewerVote"`
}

type NotificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
	Badge         string                `json:"badge"`
}

// NoticeResponse carries the ephemeral toast message produced by a mutating
// action. Display-only, no contract beyond "shown once".
type NoticeResponse struct {
	Notice string `json:"notice,omitempty"`
}

type CreateThreadResponse struct {
	Thread domain.Thread `json:"thread"`
	Notice string        `json:"notice,omitempty"`
}

type CreateCommentResponse struct {
	Comment domain.Comment `json:"comment"`
	Notice  string         `json:"notice,omitempty"`
}
