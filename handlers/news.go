package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// ListNews lists announcements
// @Summary      List news
// @Tags         news
// @Produce      json
// @Success      200  {object}  Response{data=[]models.News}
// @Router       /news [get]
// @Security     BearerAuth
func ListNews(w http.ResponseWriter, r *http.Request) {
	news := Store.News()
	if news == nil {
		news = []models.News{}
	}
	writeJSON(w, http.StatusOK, news)
}

// CreateNews publishes an announcement
// @Summary      Publish news
// @Description  Publishes an announcement and notifies all roles.
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        news  body      models.NewsInput  true  "Announcement"
// @Success      201   {object}  Response{data=models.News}
// @Router       /news [post]
// @Security     BearerAuth
func CreateNews(w http.ResponseWriter, r *http.Request) {
	var input models.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	item := Store.AddNews(models.News{
		ID:      "NWS-" + uuid.NewString(),
		Title:   input.Title,
		Content: input.Content,
		Date:    today(),
	})
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityNews, Key: item.ID, Value: item})
	notify("Pengumuman Baru", item.Title, models.NotifInfo, models.TargetAll)
	writeJSON(w, http.StatusCreated, item)
}

// DeleteNews removes an announcement
// @Summary      Delete news
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "News ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /news/{id} [delete]
// @Security     BearerAuth
func DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := Store.DeleteNews(id); err != nil {
		writeError(w, http.StatusNotFound, "news not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpDelete, Entity: outbox.EntityNews, Key: id})
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
