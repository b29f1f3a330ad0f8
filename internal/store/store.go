package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yhlin/american-dream/internal/engine"
	"github.com/yhlin/american-dream/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to Postgres per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// Run is the DB-layer record for one playthrough.
type Run struct {
	ID           uuid.UUID
	Seed         string
	Difficulty   string
	CurrentRound int
	Alive        bool
	CreatedAt    time.Time
}

// RunRepo covers run lifecycle rows.
type RunRepo struct{ db *DB }

func NewRunRepo(db *DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Create(ctx context.Context, seed string, difficulty engine.Difficulty) (Run, error) {
	id := uuid.New()
	err := r.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO runs(id, seed, difficulty, current_round, alive) VALUES (?,?,?,1,true)`,
		id, seed, string(difficulty),
	).Error
	if err != nil {
		return Run{}, wrap(err, "store: create run")
	}
	return Run{ID: id, Seed: seed, Difficulty: string(difficulty), CurrentRound: 1, Alive: true}, nil
}

func (r *RunRepo) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, seed, difficulty, current_round, alive, created_at FROM runs WHERE id = ?`, id,
	).Row()
	var rr Run
	if err := row.Scan(&rr.ID, &rr.Seed, &rr.Difficulty, &rr.CurrentRound, &rr.Alive, &rr.CreatedAt); err != nil {
		return Run{}, wrap(err, "store: get run")
	}
	return rr, nil
}

func (r *RunRepo) Advance(ctx context.Context, id uuid.UUID, round int) error {
	return wrap(r.db.gorm.WithContext(ctx).Exec(
		`UPDATE runs SET current_round = ? WHERE id = ?`, round, id,
	).Error, "store: advance run")
}

func (r *RunRepo) MarkDead(ctx context.Context, id uuid.UUID, deathType engine.DeathType, reason string) error {
	return wrap(r.db.gorm.WithContext(ctx).Exec(
		`UPDATE runs SET alive = false, death_type = ?, death_reason = ? WHERE id = ?`,
		string(deathType), reason, id,
	).Error, "store: mark run dead")
}

// Latest returns the most recent live run, if any.
func (r *RunRepo) Latest(ctx context.Context) (Run, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, seed, difficulty, current_round, alive, created_at FROM runs WHERE alive ORDER BY created_at DESC LIMIT 1`,
	).Row()
	var rr Run
	if err := row.Scan(&rr.ID, &rr.Seed, &rr.Difficulty, &rr.CurrentRound, &rr.Alive, &rr.CreatedAt); err != nil {
		return Run{}, wrap(err, "store: latest run")
	}
	return rr, nil
}

// SnapshotRepo persists one full PlayerState JSON per settled round so a run
// can resume after restart.
type SnapshotRepo struct{ db *DB }

func NewSnapshotRepo(db *DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

func (s *SnapshotRepo) Save(ctx context.Context, tx *gorm.DB, runID uuid.UUID, state *engine.PlayerState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return wrap(err, "store: marshal snapshot")
	}
	return wrap(tx.Exec(
		`INSERT INTO snapshots(id, run_id, round, state) VALUES (?,?,?,?)
		 ON CONFLICT (run_id, round) DO UPDATE SET state = EXCLUDED.state`,
		uuid.New(), runID, state.CurrentRound, payload,
	).Error, "store: save snapshot")
}

// Load returns the latest snapshot for a run.
func (s *SnapshotRepo) Load(ctx context.Context, runID uuid.UUID) (*engine.PlayerState, error) {
	row := s.db.gorm.WithContext(ctx).Raw(
		`SELECT state FROM snapshots WHERE run_id = ? ORDER BY round DESC LIMIT 1`, runID,
	).Row()
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return nil, wrap(err, "store: load snapshot")
	}
	var state engine.PlayerState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, wrap(err, "store: unmarshal snapshot")
	}
	return &state, nil
}

// FeedRepo archives the full game log.
type FeedRepo struct{ db *DB }

func NewFeedRepo(db *DB) *FeedRepo { return &FeedRepo{db: db} }

func (f *FeedRepo) BulkInsert(ctx context.Context, tx *gorm.DB, runID uuid.UUID, entries []engine.FeedEntry) error {
	for _, e := range entries {
		err := tx.Exec(
			`INSERT INTO feed_entries(id, run_id, round, kind, text, at) VALUES (?,?,?,?,?,?)
			 ON CONFLICT (id) DO NOTHING`,
			e.ID, runID, e.Round, string(e.Kind), e.Text, e.Timestamp,
		).Error
		if err != nil {
			return wrap(err, "store: insert feed entry")
		}
	}
	return nil
}

// WealthRepo records the per-round wealth history for post-run charts.
type WealthRepo struct{ db *DB }

func NewWealthRepo(db *DB) *WealthRepo { return &WealthRepo{db: db} }

func (w *WealthRepo) Append(ctx context.Context, tx *gorm.DB, runID uuid.UUID, p engine.WealthPoint) error {
	return wrap(tx.Exec(
		`INSERT INTO wealth_history(run_id, round, money, net_worth, class_level) VALUES (?,?,?,?,?)
		 ON CONFLICT (run_id, round) DO UPDATE SET money = EXCLUDED.money, net_worth = EXCLUDED.net_worth, class_level = EXCLUDED.class_level`,
		runID, p.Round, p.Money, p.NetWorth, p.ClassLevel,
	).Error, "store: append wealth point")
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
