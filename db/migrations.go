package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(db *sql.DB) error {
	slog.Info("running database migrations")

	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	slog.Info("database migrations complete")
	return nil
}

var migrations = []string{
	// Cooperative members
	`CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		nik TEXT,
		password_hash TEXT,
		role TEXT NOT NULL DEFAULT 'USER' CHECK(role IN ('USER', 'ADMIN')),
		join_date TEXT,
		status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK(status IN ('ACTIVE', 'INACTIVE')),
		avatar_url TEXT
	)`,

	// Member transactions: savings movements and store purchases
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		date TEXT,
		type TEXT NOT NULL CHECK(type IN ('DEPOSIT', 'WITHDRAWAL', 'PAYMENT', 'PURCHASE', 'SHU_WITHDRAWAL')),
		amount INTEGER NOT NULL CHECK(amount >= 0),
		profit INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'PENDING' CHECK(status IN ('PENDING', 'APPROVED', 'REJECTED')),
		description TEXT
	)`,

	// Store products
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price INTEGER NOT NULL DEFAULT 0,
		buy_price INTEGER NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		category TEXT,
		image TEXT,
		description TEXT,
		sku TEXT,
		supplier_phone TEXT
	)`,

	// Accounting journal, append-only
	`CREATE TABLE IF NOT EXISTS journal (
		id TEXT PRIMARY KEY,
		date TEXT,
		type TEXT NOT NULL CHECK(type IN ('DEBIT', 'CREDIT')),
		category TEXT NOT NULL,
		amount INTEGER NOT NULL CHECK(amount >= 0),
		description TEXT,
		reference_id TEXT,
		is_cash INTEGER NOT NULL DEFAULT 0
	)`,

	// Announcements
	`CREATE TABLE IF NOT EXISTS news (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT,
		date TEXT
	)`,

	// In-app notifications
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT,
		date TEXT,
		is_read INTEGER NOT NULL DEFAULT 0,
		type TEXT NOT NULL DEFAULT 'INFO' CHECK(type IN ('INFO', 'SUCCESS', 'WARNING', 'ERROR')),
		target TEXT NOT NULL DEFAULT 'ALL' CHECK(target IN ('USER', 'ADMIN', 'ALL'))
	)`,

	// Cooperative profile, single row
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK(id = 1),
		name TEXT,
		email TEXT,
		address TEXT,
		phone TEXT
	)`,

	// SHU configuration, single row
	`CREATE TABLE IF NOT EXISTS shu_config (
		id INTEGER PRIMARY KEY CHECK(id = 1),
		laba_usaha INTEGER NOT NULL DEFAULT 0,
		jasa_modal REAL NOT NULL DEFAULT 30,
		cadangan_modal REAL NOT NULL DEFAULT 25,
		jasa_pengurus REAL NOT NULL DEFAULT 15,
		dana_pendidikan REAL NOT NULL DEFAULT 5,
		infaq REAL NOT NULL DEFAULT 5,
		jasa_transaksi REAL NOT NULL DEFAULT 20
	)`,

	// Indexes for common queries
	`CREATE INDEX IF NOT EXISTS idx_transactions_member ON transactions(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_reference ON journal(reference_id)`,
}
