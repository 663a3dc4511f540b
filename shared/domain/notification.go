package domain

import "strconv"

type NotificationType string

const (
	NotificationMonitoring   NotificationType = "monitoring"
	NotificationOrder        NotificationType = "order"
	NotificationForum        NotificationType = "forum"
	NotificationSecurity     NotificationType = "security"
	NotificationSystem       NotificationType = "system"
	NotificationRegistration NotificationType = "registration"
)

type NotificationAction string

const (
	ActionApprove NotificationAction = "approve"
	ActionReject  NotificationAction = "reject"
)

type RegistrationData struct {
	UserId    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type Notification struct {
	Id         NotificationId     `json:"id"`
	Type       NotificationType   `json:"type"`
	Title      string             `json:"title"`
	Message    string             `json:"message"`
	Time       string             `json:"time"` // display string, e.g. "5 minutes ago"
	IsRead     bool               `json:"isRead"`
	ActionType NotificationAction `json:"actionType,omitempty"`
	ActionData *RegistrationData  `json:"actionData,omitempty"`
}

// UnreadBadge renders the unread counter shown on the bell icon, capped at "9+".
func UnreadBadge(unread int) string {
	if unread <= 0 {
		return ""
	}
	if unread > 9 {
		return "9+"
	}
	return strconv.Itoa(unread)
}
