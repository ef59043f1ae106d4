package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/alerting"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
)

// Store persists alert rules and scaling policies as JSON documents. Rows keep
// their rowid on update, so listing by rowid returns registration order.
type Store struct {
	logger *slog.Logger
	db     *sql.DB
	now    func() time.Time
}

// NewStore wraps an opened and migrated database.
func NewStore(logger *slog.Logger, db *sql.DB) *Store {
	return &Store{
		logger: logger.With("component", "sqlite-store"),
		db:     db,
		now:    time.Now,
	}
}

var (
	_ alerting.RuleRepository  = (*Store)(nil)
	_ scaling.PolicyRepository = (*Store)(nil)
)

// Name returns the name of the component
func (s *Store) Name() string {
	return "sqlite-store"
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}

	return nil
}

// Shutdown closes the database.
func (s *Store) Shutdown(ctx context.Context) error {
	s.logger.InfoContext(ctx, "closing state database")

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}

	return nil
}

func (s *Store) SaveAlertRule(ctx context.Context, rule alerting.Rule) error {
	doc, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("marshal alert rule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO alert_rules (id,metric,rule_json,updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET metric=excluded.metric,rule_json=excluded.rule_json,updated_at=excluded.updated_at`,
		rule.ID, rule.Metric, string(doc), s.now().UTC())
	if err != nil {
		return fmt.Errorf("save alert rule %s: %w", rule.ID, err)
	}

	return nil
}

func (s *Store) DeleteAlertRule(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM alert_rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete alert rule %s: %w", id, err)
	}

	return nil
}

func (s *Store) ListAlertRules(ctx context.Context) ([]alerting.Rule, error) {
	return listDocuments[alerting.Rule](ctx, s.db, `SELECT rule_json FROM alert_rules ORDER BY rowid ASC`)
}

func (s *Store) SavePolicy(ctx context.Context, policy scaling.Policy) error {
	doc, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("marshal scaling policy: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO scaling_policies (id,target_service,policy_json,updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET target_service=excluded.target_service,policy_json=excluded.policy_json,updated_at=excluded.updated_at`,
		policy.ID, policy.TargetService, string(doc), s.now().UTC())
	if err != nil {
		return fmt.Errorf("save scaling policy %s: %w", policy.ID, err)
	}

	return nil
}

func (s *Store) DeletePolicy(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scaling_policies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scaling policy %s: %w", id, err)
	}

	return nil
}

func (s *Store) ListPolicies(ctx context.Context) ([]scaling.Policy, error) {
	return listDocuments[scaling.Policy](ctx, s.db, `SELECT policy_json FROM scaling_policies ORDER BY rowid ASC`)
}

func listDocuments[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []T

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		var doc T
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}

		out = append(out, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return out, nil
}
