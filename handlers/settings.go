package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// GetSettings retrieves the cooperative profile
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  Response{data=models.Settings}
// @Router       /settings [get]
// @Security     BearerAuth
func GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.Settings())
}

// UpdateSettings updates the cooperative profile
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      models.Settings  true  "Cooperative profile"
// @Success      200       {object}  Response{data=models.Settings}
// @Router       /settings [put]
// @Security     BearerAuth
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	Store.SetSettings(s)
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntitySettings, Value: s})
	writeJSON(w, http.StatusOK, s)
}
