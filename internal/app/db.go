package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/sports-analytics/internal/config"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := parseDSN(cfg.DBURL)
	if cfg.DBDisablePreparedBinary {
		dsn = dsn.withParam("disable_prepared_binary_result", "yes")
	}

	attrs := []attribute.KeyValue{attribute.String("db.system", "postgresql")}
	if dsn.host != "" {
		attrs = append(attrs, attribute.String("server.address", dsn.host))
	}

	db, err := otelsqlx.Open("postgres", dsn.raw,
		otelsql.WithAttributes(attrs...),
		otelsql.WithDBName(dsn.name),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres %s: %w", dsn.redacted(), err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", dsn.redacted(), err)
	}

	return db, nil
}

// dsnInfo is a DB_URL in either URL form (postgres://...) or lib/pq
// key=value form.
type dsnInfo struct {
	raw  string
	url  *url.URL
	name string
	host string
}

func parseDSN(raw string) dsnInfo {
	raw = strings.TrimSpace(raw)
	info := dsnInfo{raw: raw}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		info.url = u
		info.name = strings.TrimPrefix(u.Path, "/")
		info.host = u.Hostname()
		return info
	}

	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "dbname":
			info.name = value
		case "host":
			info.host = value
		}
	}
	return info
}

// withParam sets a query parameter on URL-form DSNs unless the caller already
// set it. key=value DSNs are returned unchanged.
func (d dsnInfo) withParam(key, value string) dsnInfo {
	if d.url == nil {
		return d
	}
	q := d.url.Query()
	if q.Get(key) != "" {
		return d
	}
	q.Set(key, value)
	u := *d.url
	u.RawQuery = q.Encode()
	d.url = &u
	d.raw = u.String()
	return d
}

// redacted is safe to log.
func (d dsnInfo) redacted() string {
	if d.url != nil {
		return d.url.Redacted()
	}
	fields := strings.Fields(d.raw)
	for i, token := range fields {
		if strings.HasPrefix(token, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

// formatDBQueryForTrace collapses whitespace and caps the statement length
// recorded on db spans.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
