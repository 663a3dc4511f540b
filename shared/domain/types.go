package domain

type (
	Email = string
	Role  = string

	ThreadId       = string
	CommentId      = string
	NotificationId = string
)

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

type VoteDirection string

const (
	VoteNone VoteDirection = ""
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

type Media struct {
	Url  string    `json:"url"`
	Kind MediaKind `json:"kind"`
}
