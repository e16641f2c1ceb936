package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// Load reads the full entity sets from the durable store into a snapshot
// used to seed the in-memory store at startup. Singleton rows that were
// never written stay nil so the store keeps its defaults.
func Load(ctx context.Context, db *sql.DB) (models.Snapshot, error) {
	var snap models.Snapshot

	members, err := loadMembers(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading members: %w", err)
	}
	transactions, err := loadTransactions(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading transactions: %w", err)
	}
	products, err := loadProducts(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading products: %w", err)
	}
	journal, err := loadJournal(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading journal: %w", err)
	}
	news, err := loadNews(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading news: %w", err)
	}
	notifications, err := loadNotifications(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading notifications: %w", err)
	}

	snap.Members = &members
	snap.Transactions = &transactions
	snap.Products = &products
	snap.Journal = &journal
	snap.News = &news
	snap.Notifications = &notifications

	settings, err := loadSettings(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading settings: %w", err)
	}
	snap.Settings = settings

	shuConfig, err := loadSHUConfig(ctx, db)
	if err != nil {
		return snap, fmt.Errorf("loading shu config: %w", err)
	}
	snap.SHUConfig = shuConfig

	return snap, nil
}

func loadMembers(ctx context.Context, db *sql.DB) ([]models.Member, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, email, phone, nik,
		password_hash, role, join_date, status, avatar_url FROM members`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.NIK,
			&m.PasswordHash, &m.Role, &m.JoinDate, &m.Status, &m.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func loadTransactions(ctx context.Context, db *sql.DB) ([]models.Transaction, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, member_id, date, type,
		amount, profit, status, description FROM transactions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.MemberID, &t.Date, &t.Type,
			&t.Amount, &t.Profit, &t.Status, &t.Description); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func loadProducts(ctx context.Context, db *sql.DB) ([]models.Product, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, price, buy_price,
		stock, category, image, description, sku, supplier_phone FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.BuyPrice,
			&p.Stock, &p.Category, &p.Image, &p.Description, &p.SKU, &p.SupplierPhone); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func loadJournal(ctx context.Context, db *sql.DB) ([]models.JournalEntry, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, date, type, category,
		amount, description, reference_id, is_cash FROM journal`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Type, &e.Category,
			&e.Amount, &e.Description, &e.ReferenceID, &e.IsCash); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func loadNews(ctx context.Context, db *sql.DB) ([]models.News, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, content, date FROM news`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.News{}
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Date); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func loadNotifications(ctx context.Context, db *sql.DB) ([]models.Notification, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, title, message, date,
		is_read, type, target FROM notifications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Date,
			&n.IsRead, &n.Type, &n.Target); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func loadSettings(ctx context.Context, db *sql.DB) (*models.Settings, error) {
	var s models.Settings
	err := db.QueryRowContext(ctx,
		`SELECT name, email, address, phone FROM settings WHERE id = 1`).
		Scan(&s.Name, &s.Email, &s.Address, &s.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func loadSHUConfig(ctx context.Context, db *sql.DB) (*models.SHUConfig, error) {
	var c models.SHUConfig
	a := &c.Allocations
	err := db.QueryRowContext(ctx, `SELECT laba_usaha, jasa_modal, cadangan_modal,
		jasa_pengurus, dana_pendidikan, infaq, jasa_transaksi FROM shu_config WHERE id = 1`).
		Scan(&c.LabaUsaha, &a.JasaModal, &a.CadanganModal, &a.JasaPengurus,
			&a.DanaPendidikan, &a.Infaq, &a.JasaTransaksi)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
