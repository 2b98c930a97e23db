package store

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
)

// Store wraps the sqlite database behind the community endpoints.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and ensures the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		path = os.Getenv("SQLITE_PATH")
	}
	if path == "" {
		path = "data/iota.db"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", filepath.ToSlash(path)))
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Printf("[STORE] sqlite ready: %s", path)
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS discussion_posts (
			id TEXT PRIMARY KEY,
			author TEXT NOT NULL,
			vehicle TEXT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			likes INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			model TEXT NOT NULL,
			trim_name TEXT,
			date TEXT NOT NULL,
			time_slot TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS reward_ledger (
			id TEXT PRIMARY KEY,
			member TEXT NOT NULL,
			action TEXT NOT NULL,
			points INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created ON discussion_posts(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(date);`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_member ON reward_ledger(member);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ListPosts returns posts newest first.
func (s *Store) ListPosts(limit int) ([]model.DiscussionPost, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, author, COALESCE(vehicle, ''), title, content, likes, created_at
		FROM discussion_posts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.DiscussionPost{}
	for rows.Next() {
		var p model.DiscussionPost
		var created string
		if err := rows.Scan(&p.ID, &p.Author, &p.Vehicle, &p.Title, &p.Content, &p.Likes, &created); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CreatePost inserts a new post and fills in its id and timestamp.
func (s *Store) CreatePost(post *model.DiscussionPost) error {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO discussion_posts(id, author, vehicle, title, content, likes, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`,
		post.ID, post.Author, post.Vehicle, post.Title, post.Content,
		post.CreatedAt.Format(time.RFC3339))
	return err
}

// LikePost increments a post's like count.
func (s *Store) LikePost(id string) error {
	result, err := s.db.Exec(`UPDATE discussion_posts SET likes = likes + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CreateAppointment inserts a booking and fills in its id and timestamp.
func (s *Store) CreateAppointment(appt *model.Appointment) error {
	appt.ID = uuid.NewString()
	appt.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO appointments(id, customer_name, email, phone, model, trim_name, date, time_slot, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		appt.ID, appt.CustomerName, appt.Email, appt.Phone, appt.Model, appt.TrimName,
		appt.Date, appt.TimeSlot, appt.CreatedAt.Format(time.RFC3339))
	return err
}

// ListAppointments returns bookings ordered by date.
func (s *Store) ListAppointments() ([]model.Appointment, error) {
	rows, err := s.db.Query(`
		SELECT id, customer_name, email, COALESCE(phone, ''), model, COALESCE(trim_name, ''), date, time_slot, created_at
		FROM appointments ORDER BY date, time_slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		var created string
		if err := rows.Scan(&a.ID, &a.CustomerName, &a.Email, &a.Phone, &a.Model, &a.TrimName, &a.Date, &a.TimeSlot, &created); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, created)
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

// SlotTaken reports whether a date/time slot is already booked.
func (s *Store) SlotTaken(date, timeSlot string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM appointments WHERE date = ? AND time_slot = ?`,
		date, timeSlot).Scan(&n)
	return n > 0, err
}

// MemberPoints returns a member's current balance.
func (s *Store) MemberPoints(member string) (int, error) {
	var points int
	err := s.db.QueryRow(`SELECT COALESCE(SUM(points), 0) FROM reward_ledger WHERE member = ?`,
		member).Scan(&points)
	return points, err
}

// AddPoints records a ledger entry. Negative points are redemptions.
func (s *Store) AddPoints(member, action string, points int) error {
	_, err := s.db.Exec(`
		INSERT INTO reward_ledger(id, member, action, points, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), member, action, points, time.Now().UTC().Format(time.RFC3339))
	return err
}

// MemberActivities returns a member's ledger newest first.
func (s *Store) MemberActivities(member string, limit int) ([]model.RewardActivity, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT action, points, created_at FROM reward_ledger
		WHERE member = ? ORDER BY created_at DESC LIMIT ?`, member, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.RewardActivity{}
	for rows.Next() {
		var a model.RewardActivity
		var created string
		if err := rows.Scan(&a.Action, &a.Points, &created); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, created)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// Redeem deducts a reward's cost from a member's balance, failing when the
// balance is insufficient.
func (s *Store) Redeem(member string, reward model.RewardItem) (int, error) {
	points, err := s.MemberPoints(member)
	if err != nil {
		return 0, err
	}
	if points < reward.Points {
		return points, fmt.Errorf("insufficient points: have %d, need %d", points, reward.Points)
	}

	if err := s.AddPoints(member, "Redeemed: "+reward.Title, -reward.Points); err != nil {
		return points, err
	}
	return points - reward.Points, nil
}
