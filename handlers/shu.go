package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anwarkhairul/Usaha-Bersama/ledger"
	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

type shuReport struct {
	Config       models.SHUConfig  `json:"config"`
	NetIncome    int64             `json:"netIncome"`
	Allocation   ledger.Allocation `json:"allocation"`
	MemberShares map[string]int64  `json:"memberShares"`
}

// GetSHU retrieves the SHU distribution report
// @Summary      Get SHU report
// @Description  Allocates the current net income across the six statutory categories and splits the jasa transaksi pool per member by eligible savings.
// @Tags         shu
// @Produce      json
// @Success      200  {object}  Response{data=shuReport}
// @Failure      422  {object}  Response{error=string}
// @Router       /shu [get]
// @Security     BearerAuth
func GetSHU(w http.ResponseWriter, r *http.Request) {
	approved := Store.ApprovedTransactions()
	cfg := Store.SHUConfig()
	netIncome := ledger.Financials(approved).NetIncome

	alloc, err := ledger.Allocate(netIncome, cfg)
	if errors.Is(err, ledger.ErrInvalidAllocationConfig) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	shares := ledger.MemberShares(alloc.JasaTransaksi, ledger.EligibleSavingsByMember(approved))
	if !isAdmin(r) {
		// Members only see their own share.
		own := map[string]int64{}
		if v, ok := shares[callerID(r)]; ok {
			own[callerID(r)] = v
		}
		shares = own
	}

	writeJSON(w, http.StatusOK, shuReport{
		Config:       cfg,
		NetIncome:    netIncome,
		Allocation:   alloc,
		MemberShares: shares,
	})
}

// UpdateSHUConfig updates the SHU configuration
// @Summary      Update SHU config
// @Description  Replaces the declared surplus and the allocation percentage table. Rejected unless the percentages sum to 100.
// @Tags         shu
// @Accept       json
// @Produce      json
// @Param        config  body      models.SHUConfig  true  "New configuration"
// @Success      200     {object}  Response{data=models.SHUConfig}
// @Failure      422     {object}  Response{error=string}
// @Router       /shu/config [put]
// @Security     BearerAuth
func UpdateSHUConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.SHUConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	// Validate the table before accepting it; a zero allocation is fine.
	if _, err := ledger.Allocate(0, cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if cfg.LabaUsaha < 0 {
		writeError(w, http.StatusBadRequest, "labaUsaha must not be negative")
		return
	}

	Store.SetSHUConfig(cfg)
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntitySHUConfig, Value: cfg})
	writeJSON(w, http.StatusOK, cfg)
}
