package ledger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

func approved(trxType, memberID, date string, amount, profit int64, desc string) models.Transaction {
	return models.Transaction{
		MemberID:    memberID,
		Date:        date,
		Type:        trxType,
		Amount:      amount,
		Profit:      profit,
		Status:      models.StatusApproved,
		Description: desc,
	}
}

func TestFinancials_PurchaseScenario(t *testing.T) {
	d := Financials([]models.Transaction{
		approved(models.TypePurchase, "USR-001", "2024-03-05", 100000, 30000, "Pembelian"),
	})

	assert.Equal(t, int64(100000), d.TotalRevenue)
	assert.Equal(t, int64(70000), d.TotalHPP)
	assert.Equal(t, int64(30000), d.GrossProfit)
	assert.Equal(t, int64(5000), d.OperationalExpenses)
	assert.Equal(t, int64(25000), d.NetIncome)
	assert.Equal(t, int64(100000), d.TotalMemberPurchases)
}

func TestFinancials_Savings(t *testing.T) {
	d := Financials([]models.Transaction{
		approved(models.TypeDeposit, "USR-001", "2024-03-05", 100000, 0, "Simpanan sukarela"),
		approved(models.TypePayment, "USR-001", "2024-03-06", 50000, 0, "Angsuran"),
		approved(models.TypeWithdrawal, "USR-001", "2024-03-07", 30000, 0, "Penarikan"),
		approved(models.TypeSHUWithdrawal, "USR-001", "2024-03-08", 10000, 0, "Pencairan SHU"),
	})
	assert.Equal(t, int64(110000), d.TotalSavings)
	assert.Equal(t, int64(110000), d.TotalEligibleSavings)
}

func TestFinancials_MandatoryDepositCutoff(t *testing.T) {
	tests := []struct {
		name         string
		date         string
		desc         string
		wantEligible int64
	}{
		{"wajib on the 10th counts", "2024-03-10", "Simpanan Wajib Maret", 50000},
		{"wajib on the 11th does not", "2024-03-11", "Simpanan Wajib Maret", 0},
		{"voluntary on the 11th counts", "2024-03-11", "Simpanan Sukarela", 50000},
		{"case-insensitive wajib match", "2024-03-20", "simpanan WAJIB", 0},
		{"unparseable date counts", "not-a-date", "Simpanan Wajib", 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Financials([]models.Transaction{
				approved(models.TypeDeposit, "USR-001", tt.date, 50000, 0, tt.desc),
			})
			assert.Equal(t, int64(50000), d.TotalSavings, "total savings never applies the cutoff")
			assert.Equal(t, tt.wantEligible, d.TotalEligibleSavings)
		})
	}
}

func TestFinancials_OrderIndependent(t *testing.T) {
	trxs := []models.Transaction{
		approved(models.TypeDeposit, "USR-001", "2024-03-05", 100000, 0, "Simpanan"),
		approved(models.TypePurchase, "USR-002", "2024-03-06", 80000, 20000, "Pembelian"),
		approved(models.TypeWithdrawal, "USR-001", "2024-03-07", 25000, 0, "Penarikan"),
		approved(models.TypePayment, "USR-003", "2024-03-08", 40000, 0, "Angsuran"),
		approved(models.TypeSHUWithdrawal, "USR-002", "2024-03-09", 5000, 0, "SHU"),
	}
	want := Financials(trxs)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]models.Transaction{}, trxs...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Financials(shuffled))
	}
}

func TestFinancials_NonMemberPurchases(t *testing.T) {
	d := Financials([]models.Transaction{
		approved(models.TypePurchase, "USR-001", "2024-03-05", 60000, 10000, "Pembelian anggota"),
		approved(models.TypePurchase, "NON-MEMBER", "2024-03-05", 40000, 5000, "Penjualan umum"),
	})
	assert.Equal(t, int64(100000), d.TotalRevenue)
	assert.Equal(t, int64(60000), d.TotalMemberPurchases)
}

func TestTotalAssets(t *testing.T) {
	trxs := []models.Transaction{
		approved(models.TypeDeposit, "USR-001", "2024-03-05", 100000, 0, "Simpanan"),
		approved(models.TypePurchase, "USR-002", "2024-03-06", 50000, 10000, "Pembelian"),
		approved(models.TypeWithdrawal, "USR-001", "2024-03-07", 20000, 0, "Penarikan"),
	}
	products := []models.Product{
		{ID: "PRD-1", BuyPrice: 2000, Stock: 10},
		{ID: "PRD-2", BuyPrice: 1500, Stock: 4},
	}
	// cash 130000 + inventory 26000
	assert.Equal(t, int64(156000), TotalAssets(trxs, products))
}

func TestWalletBalance(t *testing.T) {
	trxs := []models.Transaction{
		approved(models.TypeDeposit, "USR-001", "2024-03-05", 100000, 0, "Simpanan"),
		approved(models.TypeWithdrawal, "USR-001", "2024-03-07", 30000, 0, "Penarikan"),
		approved(models.TypeDeposit, "USR-002", "2024-03-05", 999999, 0, "Simpanan"),
		approved(models.TypePurchase, "USR-001", "2024-03-08", 50000, 10000, "Pembelian"),
	}
	assert.Equal(t, int64(70000), WalletBalance(trxs, "USR-001"), "purchases do not touch the wallet")
	assert.Equal(t, int64(0), WalletBalance(trxs, "USR-404"))
}

func TestEligibleSavingsByMember(t *testing.T) {
	got := EligibleSavingsByMember([]models.Transaction{
		approved(models.TypeDeposit, "USR-001", "2024-03-05", 100000, 0, "Simpanan Wajib"),
		approved(models.TypeDeposit, "USR-002", "2024-03-15", 100000, 0, "Simpanan Wajib"),
		approved(models.TypeDeposit, "USR-002", "2024-03-15", 40000, 0, "Simpanan Sukarela"),
		approved(models.TypeWithdrawal, "USR-001", "2024-03-20", 25000, 0, "Penarikan"),
	})
	assert.Equal(t, int64(75000), got["USR-001"])
	assert.Equal(t, int64(40000), got["USR-002"], "late wajib deposit earns no eligibility")
}
