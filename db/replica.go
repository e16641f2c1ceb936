package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// Replica applies outbox jobs against the SQLite mirror. Inserts and updates
// are both upserts, so a replayed job is harmless.
type Replica struct {
	db *sql.DB
}

// NewReplica returns a replica writing to db.
func NewReplica(db *sql.DB) *Replica {
	return &Replica{db: db}
}

// Apply executes one replication job.
func (r *Replica) Apply(ctx context.Context, job outbox.Job) error {
	switch job.Op {
	case outbox.OpInsert, outbox.OpUpdate:
		return r.upsert(ctx, job)
	case outbox.OpDelete:
		return r.delete(ctx, job)
	case outbox.OpReplace:
		return r.replace(ctx, job)
	default:
		return fmt.Errorf("unknown outbox op %q", job.Op)
	}
}

func (r *Replica) upsert(ctx context.Context, job outbox.Job) error {
	switch v := job.Value.(type) {
	case models.Member:
		return r.upsertMember(ctx, v)
	case models.Transaction:
		return r.upsertTransaction(ctx, v)
	case models.Product:
		return r.upsertProduct(ctx, v)
	case models.JournalEntry:
		return r.upsertJournalEntry(ctx, v)
	case models.News:
		return r.upsertNews(ctx, v)
	case models.Notification:
		return r.upsertNotification(ctx, v)
	case models.Settings:
		return r.upsertSettings(ctx, v)
	case models.SHUConfig:
		return r.upsertSHUConfig(ctx, v)
	default:
		return fmt.Errorf("entity %s: unexpected payload %T", job.Entity, job.Value)
	}
}

func (r *Replica) delete(ctx context.Context, job outbox.Job) error {
	switch job.Entity {
	case outbox.EntityMembers, outbox.EntityTransactions, outbox.EntityProducts,
		outbox.EntityJournal, outbox.EntityNews, outbox.EntityNotifications:
		_, err := r.db.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = ?", job.Entity), job.Key)
		return err
	default:
		return fmt.Errorf("entity %s: delete not supported", job.Entity)
	}
}

// replace rewrites a whole entity set inside one SQL transaction. Used for
// snapshot imports.
func (r *Replica) replace(ctx context.Context, job outbox.Job) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", job.Entity)); err != nil {
		return err
	}

	switch set := job.Value.(type) {
	case []models.Member:
		for _, m := range set {
			if err := upsertMemberTx(ctx, tx, m); err != nil {
				return err
			}
		}
	case []models.Transaction:
		for _, t := range set {
			if _, err := tx.ExecContext(ctx, upsertTransactionSQL,
				t.ID, t.MemberID, t.Date, t.Type, t.Amount, t.Profit, t.Status, t.Description); err != nil {
				return err
			}
		}
	case []models.Product:
		for _, p := range set {
			if _, err := tx.ExecContext(ctx, upsertProductSQL,
				p.ID, p.Name, p.Price, p.BuyPrice, p.Stock, p.Category,
				p.Image, p.Description, p.SKU, p.SupplierPhone); err != nil {
				return err
			}
		}
	case []models.JournalEntry:
		for _, e := range set {
			if _, err := tx.ExecContext(ctx, upsertJournalSQL,
				e.ID, e.Date, e.Type, e.Category, e.Amount, e.Description, e.ReferenceID, e.IsCash); err != nil {
				return err
			}
		}
	case []models.News:
		for _, n := range set {
			if _, err := tx.ExecContext(ctx, upsertNewsSQL, n.ID, n.Title, n.Content, n.Date); err != nil {
				return err
			}
		}
	case []models.Notification:
		for _, n := range set {
			if _, err := tx.ExecContext(ctx, upsertNotificationSQL,
				n.ID, n.Title, n.Message, n.Date, n.IsRead, n.Type, n.Target); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("entity %s: unexpected replace payload %T", job.Entity, job.Value)
	}

	return tx.Commit()
}

const (
	upsertMemberSQL = `INSERT OR REPLACE INTO members
		(id, name, email, phone, nik, password_hash, role, join_date, status, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	upsertTransactionSQL = `INSERT OR REPLACE INTO transactions
		(id, member_id, date, type, amount, profit, status, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	upsertProductSQL = `INSERT OR REPLACE INTO products
		(id, name, price, buy_price, stock, category, image, description, sku, supplier_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	upsertJournalSQL = `INSERT OR REPLACE INTO journal
		(id, date, type, category, amount, description, reference_id, is_cash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	upsertNewsSQL         = `INSERT OR REPLACE INTO news (id, title, content, date) VALUES (?, ?, ?, ?)`
	upsertNotificationSQL = `INSERT OR REPLACE INTO notifications
		(id, title, message, date, is_read, type, target)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
)

func upsertMemberTx(ctx context.Context, tx *sql.Tx, m models.Member) error {
	_, err := tx.ExecContext(ctx, upsertMemberSQL,
		m.ID, m.Name, m.Email, m.Phone, m.NIK, m.PasswordHash, m.Role, m.JoinDate, m.Status, m.AvatarURL)
	return err
}

func (r *Replica) upsertMember(ctx context.Context, m models.Member) error {
	_, err := r.db.ExecContext(ctx, upsertMemberSQL,
		m.ID, m.Name, m.Email, m.Phone, m.NIK, m.PasswordHash, m.Role, m.JoinDate, m.Status, m.AvatarURL)
	return err
}

func (r *Replica) upsertTransaction(ctx context.Context, t models.Transaction) error {
	_, err := r.db.ExecContext(ctx, upsertTransactionSQL,
		t.ID, t.MemberID, t.Date, t.Type, t.Amount, t.Profit, t.Status, t.Description)
	return err
}

func (r *Replica) upsertProduct(ctx context.Context, p models.Product) error {
	_, err := r.db.ExecContext(ctx, upsertProductSQL,
		p.ID, p.Name, p.Price, p.BuyPrice, p.Stock, p.Category,
		p.Image, p.Description, p.SKU, p.SupplierPhone)
	return err
}

func (r *Replica) upsertJournalEntry(ctx context.Context, e models.JournalEntry) error {
	_, err := r.db.ExecContext(ctx, upsertJournalSQL,
		e.ID, e.Date, e.Type, e.Category, e.Amount, e.Description, e.ReferenceID, e.IsCash)
	return err
}

func (r *Replica) upsertNews(ctx context.Context, n models.News) error {
	_, err := r.db.ExecContext(ctx, upsertNewsSQL, n.ID, n.Title, n.Content, n.Date)
	return err
}

func (r *Replica) upsertNotification(ctx context.Context, n models.Notification) error {
	_, err := r.db.ExecContext(ctx, upsertNotificationSQL,
		n.ID, n.Title, n.Message, n.Date, n.IsRead, n.Type, n.Target)
	return err
}

func (r *Replica) upsertSettings(ctx context.Context, s models.Settings) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings
		(id, name, email, address, phone) VALUES (1, ?, ?, ?, ?)`,
		s.Name, s.Email, s.Address, s.Phone)
	return err
}

func (r *Replica) upsertSHUConfig(ctx context.Context, c models.SHUConfig) error {
	a := c.Allocations
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO shu_config
		(id, laba_usaha, jasa_modal, cadangan_modal, jasa_pengurus, dana_pendidikan, infaq, jasa_transaksi)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		c.LabaUsaha, a.JasaModal, a.CadanganModal, a.JasaPengurus, a.DanaPendidikan, a.Infaq, a.JasaTransaksi)
	return err
}
