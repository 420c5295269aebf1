package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulkoehlerdev/GmapsTool/migrations"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
	"github.com/paulkoehlerdev/GmapsTool/pkg/libraries/sqlitedriver"
)

var _ repository.StyleRepository = (*SqliteStyleRepository)(nil)

func NewSqliteStyleRepository(sqliteConnString string, source repository.StyleDocumentSource) (*SqliteStyleRepository, error) {
	sqlConn, err := sql.Open(sqlitedriver.DriverName, sqliteConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to open style database connection: %w", err)
	}

	// every connection to an in-memory database gets its own database
	if strings.Contains(sqliteConnString, ":memory:") {
		sqlConn.SetMaxOpenConns(1)
	}

	return (&SqliteStyleRepository{
		conn:   sqlConn,
		source: source,
	}).init()
}

type SqliteStyleRepository struct {
	conn   *sql.DB
	source repository.StyleDocumentSource
}

func (s *SqliteStyleRepository) init() (*SqliteStyleRepository, error) {
	file, err := migrations.FS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}

	for _, query := range strings.Split(string(file), ";") {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if _, err := s.conn.Exec(query); err != nil {
			return nil, fmt.Errorf("failed to execute schema file at query %s: %w", query, err)
		}
	}

	return s, nil
}

func (s *SqliteStyleRepository) Close() error {
	return s.conn.Close()
}

func (s *SqliteStyleRepository) Import(ctx context.Context, name string, path string) error {
	if s.source == nil {
		return &entities.DependencyError{Name: "StyleDocumentSource"}
	}

	rules, err := s.source.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load style document: %w", err)
	}

	return s.save(ctx, name, path, rules)
}

func (s *SqliteStyleRepository) Save(ctx context.Context, name string, rules []entities.StyleRule) error {
	return s.save(ctx, name, "", rules)
}

func (s *SqliteStyleRepository) save(ctx context.Context, name string, source string, rules []entities.StyleRule) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start style database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteStyle(ctx, tx, name); err != nil {
		return err
	}

	writer := sqlitestylewriter{}
	if err := writer.init(ctx, tx); err != nil {
		return fmt.Errorf("failed to create style writer: %w", err)
	}
	defer writer.close()

	if err := writer.writeStyle(ctx, name, source, rules); err != nil {
		return fmt.Errorf("failed to write style %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit style database transaction: %w", err)
	}

	return nil
}

func (s *SqliteStyleRepository) Get(ctx context.Context, name string) ([]entities.StyleRule, error) {
	var exists int
	err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM style WHERE name = ?", name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to query style: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrStyleNotFound, name)
	}

	rules, err := s.getRules(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.getStylers(ctx, name, rules); err != nil {
		return nil, err
	}

	return rules, nil
}

func (s *SqliteStyleRepository) getRules(ctx context.Context, name string) ([]entities.StyleRule, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT feature_type, element_type FROM style_rule WHERE style_name = ? ORDER BY sequence_id",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query style rules: %w", err)
	}
	defer rows.Close()

	rules := []entities.StyleRule{}
	for rows.Next() {
		var rule entities.StyleRule
		if err := rows.Scan(&rule.FeatureType, &rule.ElementType); err != nil {
			return nil, fmt.Errorf("failed to scan style rule: %w", err)
		}
		rule.Stylers = entities.Stylers{}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read style rules: %w", err)
	}

	return rules, nil
}

func (s *SqliteStyleRepository) getStylers(ctx context.Context, name string, rules []entities.StyleRule) error {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT rule_sequence_id, key, value_json FROM style_styler WHERE style_name = ? ORDER BY rule_sequence_id, sequence_id",
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to query stylers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ruleID    int
			key       string
			valueJSON string
		)
		if err := rows.Scan(&ruleID, &key, &valueJSON); err != nil {
			return fmt.Errorf("failed to scan styler: %w", err)
		}
		if ruleID < 0 || ruleID >= len(rules) {
			return fmt.Errorf("styler references unknown rule %d", ruleID)
		}

		dec := json.NewDecoder(strings.NewReader(valueJSON))
		dec.UseNumber()
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode styler %q: %w", key, err)
		}

		rules[ruleID].Stylers = append(rules[ruleID].Stylers, entities.Styler{Key: key, Value: value})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read stylers: %w", err)
	}

	return nil
}

func (s *SqliteStyleRepository) List(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT name FROM style ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query styles: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan style name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read styles: %w", err)
	}

	return names, nil
}

func (s *SqliteStyleRepository) Delete(ctx context.Context, name string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start style database transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteStyle(ctx, tx, name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit style database transaction: %w", err)
	}

	return nil
}

// Colors returns the distinct #RRGGBB colors a style uses, in first use order.
func (s *SqliteStyleRepository) Colors(ctx context.Context, name string) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT value FROM style_styler
		 WHERE style_name = ? AND is_hex_color(value)
		 GROUP BY value
		 ORDER BY MIN(rule_sequence_id * 1000000 + sequence_id)`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query style colors: %w", err)
	}
	defer rows.Close()

	colors := []string{}
	for rows.Next() {
		var color string
		if err := rows.Scan(&color); err != nil {
			return nil, fmt.Errorf("failed to scan style color: %w", err)
		}
		colors = append(colors, color)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read style colors: %w", err)
	}

	return colors, nil
}

func deleteStyle(ctx context.Context, tx *sql.Tx, name string) error {
	for _, query := range []string{
		"DELETE FROM style_styler WHERE style_name = ?",
		"DELETE FROM style_rule WHERE style_name = ?",
		"DELETE FROM style WHERE name = ?",
	} {
		if _, err := tx.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to delete style %q: %w", name, err)
		}
	}
	return nil
}
