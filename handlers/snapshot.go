package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// ExportSnapshot downloads a full backup
// @Summary      Export snapshot
// @Description  One JSON document with every entity set, suitable for import.
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  Response{data=models.Snapshot}
// @Router       /export [get]
// @Security     BearerAuth
func ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.Export())
}

// ImportSnapshot restores a backup
// @Summary      Import snapshot
// @Description  Overwrites every entity set present in the document; absent keys stay untouched. Requires confirm=true as explicit confirmation.
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        confirm   query     bool             true  "Must be true"
// @Param        snapshot  body      models.Snapshot  true  "Backup document"
// @Success      200       {object}  Response{data=map[string]string}
// @Failure      400       {object}  Response{error=string}
// @Router       /import [post]
// @Security     BearerAuth
func ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "import overwrites current data; add confirm=true to proceed")
		return
	}

	var snap models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	Store.Import(snap)

	// Mirror each replaced set wholesale; absent keys were not touched.
	if snap.Members != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityMembers, Value: *snap.Members})
	}
	if snap.Transactions != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityTransactions, Value: *snap.Transactions})
	}
	if snap.Products != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityProducts, Value: *snap.Products})
	}
	if snap.Journal != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityJournal, Value: *snap.Journal})
	}
	if snap.News != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityNews, Value: *snap.News})
	}
	if snap.Notifications != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpReplace, Entity: outbox.EntityNotifications, Value: *snap.Notifications})
	}
	if snap.Settings != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntitySettings, Value: *snap.Settings})
	}
	if snap.SHUConfig != nil {
		Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntitySHUConfig, Value: *snap.SHUConfig})
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "data restored"})
}
