package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/savi-dev/savi/shared/api"
	"github.com/savi-dev/savi/shared/domain"
	mw "github.com/savi-dev/savi/shared/middleware"
	"github.com/savi-dev/savi/shared/utils"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	notifications, unread, err := h.notification.For(r.Context(), user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Badge:         domain.UnreadBadge(unread),
	})
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	id := mux.Vars(r)["notification"]

	if err := h.notification.MarkRead(r.Context(), user, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	if err := h.notification.MarkAllRead(r.Context(), user); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NoticeResponse{Notice: "All notifications marked as read."})
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	id := mux.Vars(r)["notification"]

	if err := h.notification.Remove(r.Context(), user, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ResolveRegistration(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	id := mux.Vars(r)["notification"]

	var body api.ResolveRegistrationRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	notice, err := h.notification.ResolveRegistration(r.Context(), user, id, domain.NotificationAction(body.Action))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NoticeResponse{Notice: notice})
}
