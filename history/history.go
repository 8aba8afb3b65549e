// Package history stores per-epoch reweighting diagnostics in SQLite.
package history

import "database/sql"
import "encoding/json"
import "time"

import "github.com/google/uuid"
import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"
import _ "modernc.org/sqlite"

import "github.com/asclab/contraweight/reweight"

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// Run describes one training run.
type Run struct {
	ID        string    `json:"id"`
	Policy    string    `json:"policy"`
	Factor    float64   `json:"factor"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Record is one stored epoch update.
type Record struct {
	reweight.Step
	WeightSum float64   `json:"weight_sum"`
	Sample    []float64 `json:"sample_weights"`
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			policy TEXT NOT NULL,
			factor REAL NOT NULL,
			size INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS steps (
			run_id TEXT NOT NULL REFERENCES runs(id),
			epoch INTEGER NOT NULL,
			estimator_error REAL NOT NULL,
			estimator_weight REAL NOT NULL,
			boosted INTEGER NOT NULL,
			weight_sum REAL NOT NULL,
			sample_json TEXT NOT NULL,
			PRIMARY KEY (run_id, epoch)
		);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateRun registers a new run and returns its id.
func (d *DB) CreateRun(policy reweight.Policy, factor float64, size int) (string, error) {
	id := uuid.New().String()
	_, err := d.db.Exec(`INSERT INTO runs (id, policy, factor, size, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, policy.String(), factor, size, time.Now().UnixNano())
	if err != nil {
		return "", errors.Wrap(err, "inserting run")
	}
	return id, nil
}

// RecordStep stores one epoch update of a run.
func (d *DB) RecordStep(runID string, step reweight.Step, w reweight.Weights, sample int) error {
	sampleJSON, err := json.Marshal(w.Head(sample))
	if err != nil {
		return errors.Wrap(err, "marshaling sample weights")
	}
	_, err = d.db.Exec(`
		INSERT INTO steps (run_id, epoch, estimator_error, estimator_weight, boosted, weight_sum, sample_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, step.Epoch, step.EstimatorError, step.EstimatorWeight, step.Boosted,
		floats.Sum(w), string(sampleJSON))
	if err != nil {
		return errors.Wrapf(err, "inserting step %d of run %s", step.Epoch, runID)
	}
	return nil
}

// Runs lists every run, oldest first.
func (d *DB) Runs() ([]Run, error) {
	rows, err := d.db.Query(`SELECT id, policy, factor, size, created_at FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.Policy, &r.Factor, &r.Size, &created); err != nil {
			return nil, errors.Wrap(err, "scanning run")
		}
		r.CreatedAt = time.Unix(0, created).UTC()
		runs = append(runs, r)
	}
	return runs, errors.Wrap(rows.Err(), "iterating runs")
}

// Steps returns the stored updates of a run ordered by epoch.
func (d *DB) Steps(runID string) ([]Record, error) {
	rows, err := d.db.Query(`
		SELECT epoch, estimator_error, estimator_weight, boosted, weight_sum, sample_json
		FROM steps WHERE run_id = ? ORDER BY epoch`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "querying steps")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var sampleJSON string
		if err := rows.Scan(&r.Epoch, &r.EstimatorError, &r.EstimatorWeight, &r.Boosted, &r.WeightSum, &sampleJSON); err != nil {
			return nil, errors.Wrap(err, "scanning step")
		}
		if err := json.Unmarshal([]byte(sampleJSON), &r.Sample); err != nil {
			return nil, errors.Wrapf(err, "decoding sample of epoch %d", r.Epoch)
		}
		records = append(records, r)
	}
	return records, errors.Wrap(rows.Err(), "iterating steps")
}

// Observer records every step of runID. Storage errors go to onErr, which may be nil.
func Observer(d *DB, runID string, sample int, onErr func(error)) reweight.Observer {
	if sample <= 0 {
		sample = reweight.DefaultLogSample
	}
	return reweight.ObserverFunc(func(step reweight.Step, w reweight.Weights) {
		if err := d.RecordStep(runID, step, w, sample); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
