package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
)

type sqlitestylewriter struct {
	insertStylePreparedStatement  *sql.Stmt
	insertRulePreparedStatement   *sql.Stmt
	insertStylerPreparedStatement *sql.Stmt
}

func (s *sqlitestylewriter) init(ctx context.Context, tx *sql.Tx) error {
	if err := s.prepareStatements(ctx, tx); err != nil {
		return fmt.Errorf("failed to prepare statements: %w", err)
	}

	return nil
}

func (s *sqlitestylewriter) prepareStatements(ctx context.Context, tx *sql.Tx) error {
	var err error

	s.insertStylePreparedStatement, err = tx.PrepareContext(ctx,
		"INSERT INTO style (name, source) VALUES (?, ?)",
	)
	if err != nil {
		return err
	}

	s.insertRulePreparedStatement, err = tx.PrepareContext(ctx,
		"INSERT INTO style_rule (style_name, sequence_id, feature_type, element_type) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}

	s.insertStylerPreparedStatement, err = tx.PrepareContext(ctx,
		"INSERT INTO style_styler (style_name, rule_sequence_id, sequence_id, key, value, value_json) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}

	return nil
}

func (s *sqlitestylewriter) close() {
	for _, stmt := range []*sql.Stmt{
		s.insertStylePreparedStatement,
		s.insertRulePreparedStatement,
		s.insertStylerPreparedStatement,
	} {
		if stmt != nil {
			stmt.Close()
		}
	}
}

func (s *sqlitestylewriter) writeStyle(ctx context.Context, name string, source string, rules []entities.StyleRule) error {
	_, err := s.insertStylePreparedStatement.ExecContext(ctx, name, source)
	if err != nil {
		return fmt.Errorf("failed to insert style: %w", err)
	}

	for sequenceID, rule := range rules {
		if err := s.writeRule(ctx, name, sequenceID, rule); err != nil {
			return err
		}
	}

	return nil
}

func (s *sqlitestylewriter) writeRule(ctx context.Context, name string, sequenceID int, rule entities.StyleRule) error {
	_, err := s.insertRulePreparedStatement.ExecContext(ctx, name, sequenceID, rule.FeatureType, rule.ElementType)
	if err != nil {
		return fmt.Errorf("failed to insert style_rule: %w", err)
	}

	for stylerID, styler := range rule.Stylers {
		valueJSON, err := json.Marshal(styler.Value)
		if err != nil {
			return fmt.Errorf("failed to encode styler %q: %w", styler.Key, err)
		}

		_, err = s.insertStylerPreparedStatement.ExecContext(ctx,
			name, sequenceID, stylerID, styler.Key, fmt.Sprint(styler.Value), string(valueJSON),
		)
		if err != nil {
			return fmt.Errorf("failed to insert style_styler: %w", err)
		}
	}

	return nil
}
