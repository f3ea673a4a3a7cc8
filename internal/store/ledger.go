// Package store provides a SQLite-backed ledger of closed months and
// recorded quiz days. The TOML saves remain authoritative; the ledger
// exists for the history views and per-question drilldowns.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"moneyquest/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Ledger provides SQLite-backed history storage.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// SaveSnapshot stores a closed month. Re-closing the same month (after
// a reset) replaces the old row.
func (l *Ledger) SaveSnapshot(s model.MonthlySnapshot) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := l.db.Exec(`INSERT OR REPLACE INTO monthly_snapshots
		(month, net_worth, cash, savings, debt, credit_score, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Month, s.NetWorth, s.Cash, s.Savings, s.Debt, s.CreditScore, now,
	)
	return err
}

// ListSnapshots returns all closed months ordered by month.
func (l *Ledger) ListSnapshots() ([]model.MonthlySnapshot, error) {
	rows, err := l.db.Query(`SELECT month, net_worth, cash, savings, debt, credit_score
		FROM monthly_snapshots ORDER BY month`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []model.MonthlySnapshot
	for rows.Next() {
		var s model.MonthlySnapshot
		if err := rows.Scan(&s.Month, &s.NetWorth, &s.Cash, &s.Savings, &s.Debt, &s.CreditScore); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// SaveDay stores a recorded quiz day and its per-question results in
// one transaction. Saving the same date again replaces the old rows.
func (l *Ledger) SaveDay(day model.DayResult, answers []model.QAResult) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	finished := 0
	if day.FinishedProgress {
		finished = 1
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO quiz_days
		(date, score, time_secs, correct, total, finished_progress, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		day.Date, day.Score, day.TimeSecs, day.Correct, day.Total, finished, now,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM quiz_answers WHERE date = ?", day.Date)
	if err != nil {
		return err
	}

	for _, a := range answers {
		correct := 0
		if a.Correct {
			correct = 1
		}
		hint := 0
		if a.UsedHint {
			hint = 1
		}
		_, err = tx.Exec(`INSERT INTO quiz_answers
			(date, question_id, category, correct, hint_used, user_answer, elapsed_secs)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			day.Date, a.QuestionID, a.Category, correct, hint, a.UserAnswer, a.Seconds,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListDays returns all recorded quiz days ordered by date.
func (l *Ledger) ListDays() ([]model.DayResult, error) {
	rows, err := l.db.Query(`SELECT date, score, time_secs, correct, total, finished_progress
		FROM quiz_days ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var days []model.DayResult
	for rows.Next() {
		var d model.DayResult
		var finished int
		if err := rows.Scan(&d.Date, &d.Score, &d.TimeSecs, &d.Correct, &d.Total, &finished); err != nil {
			return nil, err
		}
		d.FinishedProgress = finished != 0
		days = append(days, d)
	}
	return days, rows.Err()
}

// CategoryTotals aggregates correctness per category across all
// recorded answers.
func (l *Ledger) CategoryTotals() (map[string]model.CategoryStat, error) {
	rows, err := l.db.Query(`SELECT category, SUM(correct), COUNT(*)
		FROM quiz_answers GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]model.CategoryStat)
	for rows.Next() {
		var cat string
		var stat model.CategoryStat
		if err := rows.Scan(&cat, &stat.Correct, &stat.Attempted); err != nil {
			return nil, err
		}
		totals[cat] = stat
	}
	return totals, rows.Err()
}

// DayCount returns the number of recorded quiz days.
func (l *Ledger) DayCount() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM quiz_days").Scan(&count)
	return count, err
}

// Reset clears all ledger rows. Used by the reset command.
func (l *Ledger) Reset() error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"quiz_answers", "quiz_days", "monthly_snapshots"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	return tx.Commit()
}
