// Package credentials persists the bearer token the dashboard attaches to
// backend requests. It never inspects or refreshes the token.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"campaignhub/internal/infra"
	"campaignhub/internal/sqlinline"
)

// AccessToken is the name the dashboard stores its bearer token under.
const AccessToken = "access_token"

// ErrEmptyToken is returned when asked to save a blank token.
var ErrEmptyToken = errors.New("credentials: token is required")

// Store keeps named tokens in a Postgres table shared by dashboard installs.
type Store struct {
	sql   infra.SQLExecutor
	table string
	name  string
}

// NewStore returns a store over table, reading and writing the AccessToken row.
func NewStore(sql infra.SQLExecutor, table string) *Store {
	table = strings.TrimSpace(table)
	if table == "" {
		table = "client_tokens"
	}
	return &Store{sql: sql, table: pq.QuoteIdentifier(table), name: AccessToken}
}

// Token returns the stored token, or "" when none is saved.
func (s *Store) Token(ctx context.Context) (string, error) {
	row := s.sql.QueryRow(ctx, s.query(sqlinline.QSelectClientToken), s.name)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("credentials: load token: %w", err)
	}
	return strings.TrimSpace(token), nil
}

// SetToken saves token, replacing any previous value.
func (s *Store) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if _, err := s.sql.Exec(ctx, s.query(sqlinline.QUpsertClientToken), s.name, token); err != nil {
		return fmt.Errorf("credentials: save token: %w", err)
	}
	return nil
}

// ClearToken removes the stored token. Clearing a missing token is not an error.
func (s *Store) ClearToken(ctx context.Context) error {
	if _, err := s.sql.Exec(ctx, s.query(sqlinline.QDeleteClientToken), s.name); err != nil {
		return fmt.Errorf("credentials: clear token: %w", err)
	}
	return nil
}

func (s *Store) query(tmpl string) string {
	return fmt.Sprintf(tmpl, s.table)
}
