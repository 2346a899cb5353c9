package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/google/uuid"

	"github.com/chriserin/story/runner"
)

// Recorder is a runner.Observer that writes a run and its step outcomes to
// the history database. Update cannot return errors, so the first one is
// kept and reported by Err; later events are ignored once it is set.
type Recorder struct {
	db       *sql.DB
	id       string
	feature  string
	scenario string
	position int
	err      error
}

// NewRecorder inserts a new run row and returns the observer recording it.
func NewRecorder(sqlDB *sql.DB) (*Recorder, error) {
	id := uuid.NewString()
	if _, err := sqlDB.Exec(`INSERT INTO runs (id) VALUES (?)`, id); err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	return &Recorder{db: sqlDB, id: id}, nil
}

func (r *Recorder) RunID() string { return r.id }

func (r *Recorder) Err() error { return r.err }

func (r *Recorder) Update(e runner.Event) {
	if r.err != nil {
		return
	}
	switch {
	case e.Status == runner.FeatureText:
		r.feature = header(e.Text, "Feature:")
	case e.Status == runner.ScenarioText:
		r.scenario = header(e.Text, "Scenario:")
	case e.Status.IsStep():
		r.position++
		r.exec(`INSERT INTO step_results (run_id, position, feature, scenario, step, status, error)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.position, r.feature, r.scenario, first(e.Text), StepStatus(e.Status), stripansi.Strip(e.Err))
	case e.Status == runner.RunDone && e.Result != nil:
		res := e.Result
		r.exec(`UPDATE runs SET status = 'done', finished_at = datetime('now'),
			features_passed = ?, features_failed = ?,
			scenarios_passed = ?, scenarios_failed = ?, scenarios_skipped = ?,
			steps_passed = ?, steps_failed = ?, steps_skipped = ?, steps_missing = ?, steps_pending = ?
			WHERE id = ?`,
			res.Features.Passed, res.Features.Failed,
			res.Scenarios.Passed, res.Scenarios.Failed, res.Scenarios.Skipped,
			res.Steps.Passed, res.Steps.Failed, res.Steps.Skipped, res.Steps.Missing, res.Steps.Pending,
			r.id)
	case e.Status == runner.RunFailed:
		r.exec(`UPDATE runs SET status = 'failed', finished_at = datetime('now'), error = ? WHERE id = ?`,
			stripansi.Strip(e.Err), r.id)
	}
}

func (r *Recorder) exec(query string, args ...any) {
	if _, err := r.db.Exec(query, args...); err != nil {
		r.err = fmt.Errorf("recording run %s: %w", r.id, err)
	}
}

// StepStatus maps an event status to the word stored in step_results.
func StepStatus(s runner.Status) string {
	return strings.TrimPrefix(string(s), "step_")
}

func header(text []string, keyword string) string {
	line := first(text)
	if len(line) >= len(keyword) && strings.EqualFold(line[:len(keyword)], keyword) {
		return strings.TrimSpace(line[len(keyword):])
	}
	return line
}

func first(text []string) string {
	if len(text) == 0 {
		return ""
	}
	return text[0]
}

// Run is one row of the runs table.
type Run struct {
	ID        string
	StartedAt string
	Status    string
	Error     string
	Result    runner.Result
}

// StepResult is one recorded step outcome.
type StepResult struct {
	Feature  string
	Scenario string
	Step     string
	Status   string
	Error    string
}

const runColumns = `id, started_at, status, error,
	features_passed, features_failed,
	scenarios_passed, scenarios_failed, scenarios_skipped,
	steps_passed, steps_failed, steps_skipped, steps_missing, steps_pending`

func scanRun(row interface{ Scan(...any) error }) (Run, error) {
	var run Run
	res := &run.Result
	err := row.Scan(&run.ID, &run.StartedAt, &run.Status, &run.Error,
		&res.Features.Passed, &res.Features.Failed,
		&res.Scenarios.Passed, &res.Scenarios.Failed, &res.Scenarios.Skipped,
		&res.Steps.Passed, &res.Steps.Failed, &res.Steps.Skipped, &res.Steps.Missing, &res.Steps.Pending)
	return run, err
}

// RecentRuns returns up to limit runs, newest first.
func RecentRuns(sqlDB *sql.DB, limit int) ([]Run, error) {
	rows, err := sqlDB.Query(`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FindRun looks a run up by full ID or unique ID prefix.
func FindRun(sqlDB *sql.DB, prefix string) (Run, error) {
	rows, err := sqlDB.Query(`SELECT `+runColumns+` FROM runs WHERE id LIKE ? || '%' LIMIT 2`, prefix)
	if err != nil {
		return Run{}, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return Run{}, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return Run{}, err
	}
	switch len(runs) {
	case 0:
		return Run{}, fmt.Errorf("run %s not found", prefix)
	case 1:
		return runs[0], nil
	default:
		return Run{}, fmt.Errorf("run prefix %s is ambiguous", prefix)
	}
}

// RunSteps returns the recorded steps of a run in execution order. Unless
// all is set, passed steps are left out.
func RunSteps(sqlDB *sql.DB, runID string, all bool) ([]StepResult, error) {
	query := `SELECT feature, scenario, step, status, error FROM step_results WHERE run_id = ?`
	if !all {
		query += ` AND status != 'passed'`
	}
	rows, err := sqlDB.Query(query+` ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying step results: %w", err)
	}
	defer rows.Close()

	var out []StepResult
	for rows.Next() {
		var s StepResult
		if err := rows.Scan(&s.Feature, &s.Scenario, &s.Step, &s.Status, &s.Error); err != nil {
			return nil, fmt.Errorf("scanning step result: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
