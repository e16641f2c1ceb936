package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

func TestEntriesForTransaction_Derivation(t *testing.T) {
	tests := []struct {
		name         string
		trxType      string
		wantType     string
		wantCategory string
	}{
		{"deposit", models.TypeDeposit, models.JournalDebit, CategoryMemberSavings},
		{"payment", models.TypePayment, models.JournalDebit, CategoryMemberSavings},
		{"purchase", models.TypePurchase, models.JournalDebit, CategoryStoreSales},
		{"withdrawal", models.TypeWithdrawal, models.JournalCredit, CategoryMemberSavings},
		{"shu withdrawal", models.TypeSHUWithdrawal, models.JournalCredit, CategorySHUExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := EntriesForTransaction(models.Transaction{
				ID:          "TRX-1",
				MemberID:    "USR-001",
				Date:        "2024-03-05",
				Type:        tt.trxType,
				Amount:      50000,
				Description: "test",
			})
			require.NotEmpty(t, entries)
			primary := entries[0]
			assert.Equal(t, "JRN-TRX-1", primary.ID)
			assert.Equal(t, tt.wantType, primary.Type)
			assert.Equal(t, tt.wantCategory, primary.Category)
			assert.Equal(t, int64(50000), primary.Amount)
			assert.Equal(t, "TRX-1", primary.ReferenceID)
			assert.True(t, primary.IsCash)
		})
	}
}

func TestEntriesForTransaction_Purchase(t *testing.T) {
	entries := EntriesForTransaction(models.Transaction{
		ID:          "TRX-9",
		MemberID:    "USR-002",
		Date:        "2024-03-05",
		Type:        models.TypePurchase,
		Amount:      100000,
		Profit:      30000,
		Description: "Pembelian Beras",
	})

	require.Len(t, entries, 3)

	assert.Equal(t, "JRN-TRX-9", entries[0].ID)
	assert.Equal(t, models.JournalDebit, entries[0].Type)
	assert.Equal(t, CategoryStoreSales, entries[0].Category)
	assert.Equal(t, int64(100000), entries[0].Amount)

	assert.Equal(t, "JRN-TRX-9-HPP", entries[1].ID)
	assert.Equal(t, models.JournalCredit, entries[1].Type)
	assert.Equal(t, CategoryCOGS, entries[1].Category)
	assert.Equal(t, int64(70000), entries[1].Amount)
	assert.False(t, entries[1].IsCash)

	assert.Equal(t, "JRN-TRX-9-OPS", entries[2].ID)
	assert.Equal(t, models.JournalCredit, entries[2].Type)
	assert.Equal(t, CategoryOpsExpense, entries[2].Category)
	assert.Equal(t, int64(5000), entries[2].Amount)
	assert.False(t, entries[2].IsCash)
}

func TestEntriesForTransaction_PurchaseWithoutMargin(t *testing.T) {
	// Selling at cost: no HPP entry would be zero-valued and is skipped.
	entries := EntriesForTransaction(models.Transaction{
		ID:     "TRX-10",
		Type:   models.TypePurchase,
		Amount: 2000,
		Profit: 2000,
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "JRN-TRX-10", entries[0].ID)
	assert.Equal(t, "JRN-TRX-10-OPS", entries[1].ID)
}

func TestEntriesForTransaction_TinyPurchase(t *testing.T) {
	// 5% of 10 rupiah truncates to zero, so no operational-expense entry.
	entries := EntriesForTransaction(models.Transaction{
		ID:     "TRX-11",
		Type:   models.TypePurchase,
		Amount: 10,
		Profit: 5,
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "JRN-TRX-11-HPP", entries[1].ID)
}

func TestRestockEntry_ChargesOnlyTheIncrease(t *testing.T) {
	p := models.Product{ID: "PRD-1", Name: "Beras", BuyPrice: 2000, Stock: 15}

	entry := RestockEntry(p, 5, "2024-04-01")
	require.NotNil(t, entry)
	assert.Equal(t, models.JournalCredit, entry.Type)
	assert.Equal(t, CategoryStockPurchase, entry.Category)
	assert.Equal(t, int64(10000), entry.Amount, "restock must book the added quantity, not the full stock")
	assert.Equal(t, "PRD-1", entry.ReferenceID)
	assert.True(t, entry.IsCash)
}

func TestRestockEntry_NoCost(t *testing.T) {
	p := models.Product{ID: "PRD-2", BuyPrice: 0, Stock: 10}
	assert.Nil(t, RestockEntry(p, 5, "2024-04-01"))
}

func TestInitialStockEntry(t *testing.T) {
	p := models.Product{ID: "PRD-3", Name: "Gula", BuyPrice: 1500, Stock: 20}
	entry := InitialStockEntry(p, "2024-04-01")
	require.NotNil(t, entry)
	assert.Equal(t, int64(30000), entry.Amount)
	assert.Equal(t, CategoryStockPurchase, entry.Category)

	assert.Nil(t, InitialStockEntry(models.Product{ID: "PRD-4"}, "2024-04-01"))
}

func TestOperationalExpense_SharedRate(t *testing.T) {
	// The journal derivation and the aggregator must agree on this figure.
	assert.Equal(t, int64(5000), OperationalExpense(100000))
	assert.Equal(t, int64(0), OperationalExpense(10))
}
