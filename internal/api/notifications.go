package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/common"
	"field-ministry/campo/internal/models/dtos/requests"
)

// ListNotificationsHandler handles GET /api/notifications: global ones plus
// those linked to the caller, unexpired, newest first.
func ListNotificationsHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := svc.ListVisible(r.Context(), auth.CallerID(r.Context()))
		if err != nil {
			respondServiceError(w, r, err, "fetch notifications")
			return
		}
		common.RespondJSON(w, http.StatusOK, notifications)
	}
}

// ListUserNotificationsHandler handles GET /api/users/{id}/notifications
func ListUserNotificationsHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := svc.ListForUser(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, "fetch user notifications")
			return
		}
		common.RespondJSON(w, http.StatusOK, links)
	}
}

func CreateNotificationHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateNotificationReq
		if !decodeBody(w, r, &req) {
			return
		}
		notification, err := svc.Create(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create notification")
			return
		}
		common.RespondJSON(w, http.StatusCreated, notification)
	}
}

// CreateUserNotificationHandler handles POST /api/user-notifications
func CreateUserNotificationHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateUserNotificationReq
		if !decodeBody(w, r, &req) {
			return
		}
		link, err := svc.LinkUser(r.Context(), &req)
		if err != nil {
			respondServiceError(w, r, err, "create user notification")
			return
		}
		common.RespondJSON(w, http.StatusCreated, link)
	}
}

// MarkNotificationReadHandler handles PUT /api/notifications/{notificationId}/read
func MarkNotificationReadHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.MarkRead(r.Context(), auth.CallerID(r.Context()), chi.URLParam(r, "notificationId"))
		if err != nil {
			respondServiceError(w, r, err, "mark notification as read")
			return
		}
		common.RespondNoContent(w)
	}
}

// NotificationStreamHandler handles GET /api/notifications/stream
func NotificationStreamHandler(feed FeedServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed.ServeWS(w, r, auth.CallerID(r.Context()))
	}
}
