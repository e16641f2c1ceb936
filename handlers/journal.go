package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// ListJournal lists the accounting journal
// @Summary      List journal entries
// @Description  The append-only accounting journal, most recent first.
// @Tags         journal
// @Produce      json
// @Success      200  {object}  Response{data=[]models.JournalEntry}
// @Router       /journal [get]
// @Security     BearerAuth
func ListJournal(w http.ResponseWriter, r *http.Request) {
	journal := Store.Journal()
	if journal == nil {
		journal = []models.JournalEntry{}
	}
	writeJSON(w, http.StatusOK, journal)
}

// CreateJournalEntry records a manual journal entry
// @Summary      Create journal entry
// @Description  Manual bookkeeping entry outside the automatic transaction derivation (rent, salaries, utilities).
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        entry  body      models.JournalEntryInput  true  "Entry contents"
// @Success      201    {object}  Response{data=models.JournalEntry}
// @Router       /journal [post]
// @Security     BearerAuth
func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var input models.JournalEntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	date := input.Date
	if date == "" {
		date = today()
	}
	entry := models.JournalEntry{
		ID:          "JRN-" + uuid.NewString(),
		Date:        date,
		Type:        input.Type,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		IsCash:      input.IsCash,
	}
	Store.AddJournalEntries(entry)
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityJournal, Key: entry.ID, Value: entry})
	writeJSON(w, http.StatusCreated, entry)
}
