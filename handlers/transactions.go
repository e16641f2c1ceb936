package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/ledger"
	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
	"github.com/anwarkhairul/Usaha-Bersama/store"
)

// ListTransactions lists transactions
// @Summary      List transactions
// @Description  Admin sees every transaction; a member sees only their own.
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Transaction}
// @Router       /transactions [get]
// @Security     BearerAuth
func ListTransactions(w http.ResponseWriter, r *http.Request) {
	var txns []models.Transaction
	if isAdmin(r) {
		txns = Store.Transactions()
	} else {
		txns = Store.TransactionsByMember(callerID(r))
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, txns)
}

// CreateTransaction submits a transaction
// @Summary      Submit transaction
// @Description  A member submits a savings movement or purchase (always PENDING). The admin may record a transaction as APPROVED directly, which posts the journal entries immediately.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body      models.TransactionInput  true  "Transaction contents"
// @Success      201          {object}  Response{data=models.Transaction}
// @Router       /transactions [post]
// @Security     BearerAuth
func CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if !isAdmin(r) {
		// Members submit for themselves and never pre-approved.
		input.MemberID = callerID(r)
		input.Status = models.StatusPending
	}
	if input.Date == "" {
		input.Date = today()
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	trx := Store.AddTransaction(models.Transaction{
		ID:          "TRX-" + uuid.NewString(),
		MemberID:    input.MemberID,
		Date:        input.Date,
		Type:        input.Type,
		Amount:      input.Amount,
		Profit:      input.Profit,
		Status:      input.Status,
		Description: input.Description,
	})
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityTransactions, Key: trx.ID, Value: trx})

	switch trx.Status {
	case models.StatusPending:
		notify("Transaksi Baru Masuk",
			fmt.Sprintf("Anggota melakukan %s sebesar Rp%d. Harap verifikasi.", trx.Description, trx.Amount),
			models.NotifInfo, models.TargetAdmin)
	case models.StatusApproved:
		postJournalForTransaction(trx)
	}

	writeJSON(w, http.StatusCreated, trx)
}

// UpdateTransactionStatus approves or rejects a pending transaction
// @Summary      Approve or reject transaction
// @Description  Moves a PENDING transaction to APPROVED or REJECTED. Approval posts the derived journal entries exactly once; terminal transactions cannot be changed again.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id      path      int  true  "Transaction ID"
// @Param        status  body      object{status=string}  true  "New status"
// @Success      200     {object}  Response{data=models.Transaction}
// @Failure      409     {object}  Response{error=string}
// @Router       /transactions/{id}/status [put]
// @Security     BearerAuth
func UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	trx, err := Store.UpdateTransactionStatus(id, input.Status)
	if errors.Is(err, store.ErrInvalidTransition) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityTransactions, Key: trx.ID, Value: trx})

	if trx.Status == models.StatusApproved {
		postJournalForTransaction(trx)
		notify("Transaksi Disetujui",
			fmt.Sprintf("Permintaan %s disetujui.", trx.Description),
			models.NotifSuccess, models.TargetUser)
	} else {
		notify("Transaksi Ditolak",
			fmt.Sprintf("Permintaan %s ditolak.", trx.Description),
			models.NotifError, models.TargetUser)
	}

	writeJSON(w, http.StatusOK, trx)
}

// postJournalForTransaction derives and records the journal entries for an
// approved transaction. Keyed by transaction id, so a repeated approval
// attempt never posts twice.
func postJournalForTransaction(trx models.Transaction) {
	if Store.HasJournalForTransaction(trx.ID) {
		return
	}
	entries := ledger.EntriesForTransaction(trx)
	Store.AddJournalEntries(entries...)
	for _, e := range entries {
		Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityJournal, Key: e.ID, Value: e})
	}
}
