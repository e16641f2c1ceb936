package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// notify records an in-app notification for the given audience and mirrors
// it to the durable store.
func notify(title, message, kind, target string) {
	n := Store.AddNotification(models.Notification{
		ID:      "NTF-" + uuid.NewString(),
		Title:   title,
		Message: message,
		Date:    time.Now().Format(time.RFC3339),
		Type:    kind,
		Target:  target,
	})
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityNotifications, Key: n.ID, Value: n})
}

// ListNotifications lists the caller's notifications
// @Summary      List notifications
// @Description  Notifications addressed to the caller's role (or to ALL), most recent first.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Notification}
// @Router       /notifications [get]
// @Security     BearerAuth
func ListNotifications(w http.ResponseWriter, r *http.Request) {
	out := Store.NotificationsFor(callerRole(r))
	if out == nil {
		out = []models.Notification{}
	}
	writeJSON(w, http.StatusOK, out)
}

// MarkNotificationRead marks one notification as read
// @Summary      Mark notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  Response{data=models.Notification}
// @Failure      404  {object}  Response{error=string}
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	n, err := Store.MarkNotificationRead(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityNotifications, Key: n.ID, Value: n})
	writeJSON(w, http.StatusOK, n)
}

// MarkAllNotificationsRead marks all visible notifications as read
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /notifications/read-all [post]
// @Security     BearerAuth
func MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	for _, n := range Store.MarkAllNotificationsRead(callerRole(r)) {
		Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityNotifications, Key: n.ID, Value: n})
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "all read"})
}
