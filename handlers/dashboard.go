package handlers

import (
	"net/http"

	"github.com/anwarkhairul/Usaha-Bersama/ledger"
	"github.com/anwarkhairul/Usaha-Bersama/models"
)

type dashboardData struct {
	Financial     ledger.FinancialData `json:"financialData"`
	TotalAssets   int64                `json:"totalAssets"`
	TotalMembers  int                  `json:"totalMembers"`
	WalletBalance int64                `json:"walletBalance"`
	Allocation    *ledger.Allocation   `json:"shuAllocation,omitempty"`
	PendingCount  int                  `json:"pendingCount"`
}

// GetDashboard retrieves the financial dashboard
// @Summary      Get dashboard
// @Description  Recomputes the full financial bundle, total assets, the caller's wallet balance, and the SHU allocation breakdown from the current ledger state.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /dashboard [get]
// @Security     BearerAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	approved := Store.ApprovedTransactions()

	d := dashboardData{
		Financial:    ledger.Financials(approved),
		TotalAssets:  ledger.TotalAssets(approved, Store.Products()),
		TotalMembers: len(Store.Members()),
	}
	if !isAdmin(r) {
		d.WalletBalance = ledger.WalletBalance(approved, callerID(r))
	}
	for _, t := range Store.Transactions() {
		if t.Status == models.StatusPending {
			d.PendingCount++
		}
	}

	if alloc, err := ledger.Allocate(d.Financial.NetIncome, Store.SHUConfig()); err == nil {
		d.Allocation = &alloc
	}

	writeJSON(w, http.StatusOK, d)
}
