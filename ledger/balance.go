package ledger

import (
	"strings"
	"time"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// mandatoryDepositCutoffDay is the last day of the month on which a mandatory
// ("wajib") deposit still counts toward SHU-eligible savings.
const mandatoryDepositCutoffDay = 10

// nonMemberID marks store sales to walk-in buyers; those purchases earn no
// member transaction points.
const nonMemberID = "NON-MEMBER"

// FinancialData is the aggregate bundle recomputed on every read. All figures
// derive from APPROVED transactions only.
type FinancialData struct {
	TotalSavings         int64 `json:"totalSavings"`
	TotalEligibleSavings int64 `json:"totalEligibleSavings"`
	TotalRevenue         int64 `json:"totalRevenue"`
	TotalHPP             int64 `json:"totalHPP"`
	GrossProfit          int64 `json:"grossProfit"`
	OperationalExpenses  int64 `json:"operationalExpenses"`
	NetIncome            int64 `json:"netIncome"`
	TotalMemberPurchases int64 `json:"totalMemberPurchases"`
}

// Financials recomputes the full financial bundle from the given APPROVED
// transaction set. The result is a pure sum: insertion order never matters.
func Financials(approved []models.Transaction) FinancialData {
	var d FinancialData
	for _, t := range approved {
		switch t.Type {
		case models.TypeDeposit, models.TypePayment:
			d.TotalSavings += t.Amount
			if eligibleDeposit(t) {
				d.TotalEligibleSavings += t.Amount
			}
		case models.TypeWithdrawal, models.TypeSHUWithdrawal:
			d.TotalSavings -= t.Amount
			d.TotalEligibleSavings -= t.Amount
		case models.TypePurchase:
			d.TotalRevenue += t.Amount
			d.TotalHPP += t.Amount - t.Profit
			if t.MemberID != nonMemberID {
				d.TotalMemberPurchases += t.Amount
			}
		}
	}
	d.GrossProfit = d.TotalRevenue - d.TotalHPP
	d.OperationalExpenses = OperationalExpense(d.TotalRevenue)
	d.NetIncome = d.GrossProfit - d.OperationalExpenses
	return d
}

// eligibleDeposit applies the mandatory-savings cutoff: a deposit whose
// description marks it as "wajib" only counts toward SHU eligibility when
// paid on or before the 10th of the month. Voluntary deposits always count.
func eligibleDeposit(t models.Transaction) bool {
	if !strings.Contains(strings.ToLower(t.Description), "wajib") {
		return true
	}
	day, ok := dayOfMonth(t.Date)
	if !ok {
		return true
	}
	return day <= mandatoryDepositCutoffDay
}

func dayOfMonth(date string) (int, bool) {
	if len(date) > 10 {
		date = date[:10]
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return d.Day(), true
}

// TotalAssets is the cash balance over APPROVED transactions plus the
// valuation of the store inventory at cost.
func TotalAssets(approved []models.Transaction, products []models.Product) int64 {
	var cash int64
	for _, t := range approved {
		switch t.Type {
		case models.TypeDeposit, models.TypePayment, models.TypePurchase:
			cash += t.Amount
		case models.TypeWithdrawal, models.TypeSHUWithdrawal:
			cash -= t.Amount
		}
	}
	var inventory int64
	for _, p := range products {
		inventory += p.BuyPrice * p.Stock
	}
	return cash + inventory
}

// WalletBalance restricts the savings formula to one member's APPROVED
// transactions.
func WalletBalance(approved []models.Transaction, memberID string) int64 {
	var balance int64
	for _, t := range approved {
		if t.MemberID != memberID {
			continue
		}
		switch t.Type {
		case models.TypeDeposit, models.TypePayment:
			balance += t.Amount
		case models.TypeWithdrawal, models.TypeSHUWithdrawal:
			balance -= t.Amount
		}
	}
	return balance
}

// EligibleSavingsByMember computes each member's SHU-eligible savings,
// the weights used to split the jasa transaksi pool.
func EligibleSavingsByMember(approved []models.Transaction) map[string]int64 {
	eligible := make(map[string]int64)
	for _, t := range approved {
		switch t.Type {
		case models.TypeDeposit, models.TypePayment:
			if eligibleDeposit(t) {
				eligible[t.MemberID] += t.Amount
			}
		case models.TypeWithdrawal, models.TypeSHUWithdrawal:
			eligible[t.MemberID] -= t.Amount
		}
	}
	return eligible
}
