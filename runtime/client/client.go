// Package client is the thin database/sql adapter that dispatches the SQL
// the engine produces. It maps provider names to registered drivers and
// offers primary-key record access built on the composite-key WHERE
// renderer.
package client

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/quillorm/quill/internal/debug"
	"github.com/quillorm/quill/schema"
)

// Client wraps a database connection for one provider.
type Client struct {
	db       *sql.DB
	provider string
}

// New opens a connection for the given provider and DSN.
func New(provider, dsn string) (*Client, error) {
	driver := DriverName(provider)
	if driver == "" {
		return nil, fmt.Errorf("client: unsupported provider: %s", provider)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return &Client{db: db, provider: provider}, nil
}

// NewFromDB wraps an existing connection.
func NewFromDB(provider string, db *sql.DB) *Client {
	return &Client{db: db, provider: provider}
}

// DriverName maps a provider name to its registered database/sql driver,
// or "" for an unknown provider.
func DriverName(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite":
		return "sqlite3"
	}
	return ""
}

// Provider returns the provider name the client was opened with.
func (c *Client) Provider() string { return c.provider }

// DB returns the underlying connection.
func (c *Client) DB() *sql.DB { return c.db }

// Connect verifies the connection.
func (c *Client) Connect(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Disconnect closes the connection.
func (c *Client) Disconnect() error {
	return c.db.Close()
}

// Exec runs a statement.
func (c *Client) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	debug.Debug("exec", "provider", c.provider, "sql", query, "args", args)
	return c.db.ExecContext(ctx, query, args...)
}

// Query runs a query.
func (c *Client) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	debug.Debug("query", "provider", c.provider, "sql", query, "args", args)
	return c.db.QueryContext(ctx, query, args...)
}

// CreateTable runs the CREATE TABLE DDL for a table definition.
func (c *Client) CreateTable(ctx context.Context, t *schema.Table) error {
	_, err := c.Exec(ctx, schema.CreateTableSQL(c.provider, t))
	return err
}

// FindByPrimaryKey queries one record of a table by its (possibly
// composite) key. Values arrive as plain Go scalars and are converted to
// tagged key values, so unsupported types surface as
// *schema.InvalidFieldTypeError before any SQL is built.
func (c *Client) FindByPrimaryKey(ctx context.Context, t *schema.Table, values map[string]any) (*sql.Rows, error) {
	if t.PrimaryKey == nil {
		return nil, fmt.Errorf("client: table %s has no primary key", t.Name)
	}
	pkValues := make(map[string]schema.PKValue, len(values))
	for field, v := range values {
		pk, err := schema.NewPKValue(field, v)
		if err != nil {
			return nil, err
		}
		pkValues[field] = pk
	}
	where, err := t.PrimaryKey.ToWhereClause(pkValues)
	if err != nil {
		return nil, err
	}
	return c.Query(ctx, fmt.Sprintf("SELECT * FROM %s WHERE %s", t.Name, where))
}
