// Package ledger holds the bookkeeping core: derivation of journal entries
// from approved transactions, pure recomputation of the financial figures,
// and the periodic SHU allocation. Nothing in this package mutates state;
// callers persist whatever it returns.
package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// Journal categories used by the automatic derivation.
const (
	CategoryMemberSavings = "Simpanan Anggota"
	CategoryStoreSales    = "Penjualan Toko"
	CategorySHUExpense    = "Beban SHU"
	CategoryCOGS          = "Beban Pokok Penjualan"
	CategoryOpsExpense    = "Beban Operasional (5% Omzet)"
	CategoryStockPurchase = "Belanja Barang/Produk"
)

// operationalExpensePct is the share of store revenue booked as operational
// expense. The journal derivation and the balance aggregation must use this
// same constant.
const operationalExpensePct = 5

// OperationalExpense returns the operational expense for the given revenue.
func OperationalExpense(revenue int64) int64 {
	return revenue * operationalExpensePct / 100
}

// EntriesForTransaction derives the journal entries for an approved
// transaction. The primary entry always comes first; a PURCHASE additionally
// yields a cost-of-goods entry and an operational-expense entry when their
// amounts are positive.
func EntriesForTransaction(trx models.Transaction) []models.JournalEntry {
	primary := models.JournalEntry{
		ID:          "JRN-" + trx.ID,
		Date:        trx.Date,
		Amount:      trx.Amount,
		Description: fmt.Sprintf("Otomatis: %s (%s)", trx.Description, trx.MemberID),
		ReferenceID: trx.ID,
		IsCash:      true,
	}

	switch trx.Type {
	case models.TypeDeposit, models.TypePayment:
		primary.Type = models.JournalDebit
		primary.Category = CategoryMemberSavings
	case models.TypePurchase:
		primary.Type = models.JournalDebit
		primary.Category = CategoryStoreSales
	case models.TypeWithdrawal:
		primary.Type = models.JournalCredit
		primary.Category = CategoryMemberSavings
	case models.TypeSHUWithdrawal:
		primary.Type = models.JournalCredit
		primary.Category = CategorySHUExpense
	default:
		primary.Type = models.JournalDebit
		primary.Category = "Umum"
	}

	entries := []models.JournalEntry{primary}
	if trx.Type != models.TypePurchase {
		return entries
	}

	if costOfGoods := trx.Amount - trx.Profit; costOfGoods > 0 {
		entries = append(entries, models.JournalEntry{
			ID:          "JRN-" + trx.ID + "-HPP",
			Date:        trx.Date,
			Type:        models.JournalCredit,
			Category:    CategoryCOGS,
			Amount:      costOfGoods,
			Description: "HPP Penjualan: " + trx.Description,
			ReferenceID: trx.ID,
		})
	}
	if ops := OperationalExpense(trx.Amount); ops > 0 {
		entries = append(entries, models.JournalEntry{
			ID:          "JRN-" + trx.ID + "-OPS",
			Date:        trx.Date,
			Type:        models.JournalCredit,
			Category:    CategoryOpsExpense,
			Amount:      ops,
			Description: "Beban Ops 5% dari: " + trx.Description,
			ReferenceID: trx.ID,
		})
	}
	return entries
}

// InitialStockEntry returns the capital-outlay entry for a newly added
// product, or nil when the initial valuation is zero.
func InitialStockEntry(p models.Product, date string) *models.JournalEntry {
	cost := p.BuyPrice * p.Stock
	if cost <= 0 {
		return nil
	}
	return &models.JournalEntry{
		ID:          "JRN-MODAL-" + p.ID,
		Date:        date,
		Type:        models.JournalCredit,
		Category:    CategoryStockPurchase,
		Amount:      cost,
		Description: fmt.Sprintf("Belanja Modal Usaha: %s (%d unit)", p.Name, p.Stock),
		ReferenceID: p.ID,
		IsCash:      true,
	}
}

// RestockEntry returns the capital-outlay entry for a stock increase.
// addedQty is strictly the increase over the previous stock level, never the
// full resulting stock; charging the full level would double-count capital
// already spent. Returns nil when the restock cost is zero.
func RestockEntry(p models.Product, addedQty int64, date string) *models.JournalEntry {
	cost := addedQty * p.BuyPrice
	if cost <= 0 {
		return nil
	}
	return &models.JournalEntry{
		ID:          "JRN-RESTOCK-" + uuid.NewString(),
		Date:        date,
		Type:        models.JournalCredit,
		Category:    CategoryStockPurchase,
		Amount:      cost,
		Description: fmt.Sprintf("Restock Modal Usaha: %s (+%d unit)", p.Name, addedQty),
		ReferenceID: p.ID,
		IsCash:      true,
	}
}
