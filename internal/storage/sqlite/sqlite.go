package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := migrations.Run(db, cfg.Logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// SaveWebsite stores a website, replacing any previous entry with the same ID.
func (r *Repository) SaveWebsite(ctx context.Context, website model.Website) error {
	competitors, err := encodeJSON(website.Competitors)
	if err != nil {
		return fmt.Errorf("could not encode competitors: %w", err)
	}

	query := `
		INSERT INTO websites (id, domain, site_type, industry, competitors, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			domain = excluded.domain,
			site_type = excluded.site_type,
			industry = excluded.industry,
			competitors = excluded.competitors,
			created_at = excluded.created_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		website.ID,
		website.Domain,
		website.SiteType,
		website.Industry,
		competitors,
		website.CreatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: websites.domain") {
			return fmt.Errorf("website with domain %s: %w", website.Domain, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not save website: %w", err)
	}

	r.logger.Debugf("Saved website in repository: %s", website.ID)
	return nil
}

// GetWebsite retrieves a website by ID.
func (r *Repository) GetWebsite(ctx context.Context, id string) (*model.Website, error) {
	website, err := r.scanWebsite(r.db.QueryRowContext(ctx, websiteSelect+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("website %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query website: %w", err)
	}

	return website, nil
}

// GetWebsiteByDomain retrieves a website by domain.
func (r *Repository) GetWebsiteByDomain(ctx context.Context, domain string) (*model.Website, error) {
	website, err := r.scanWebsite(r.db.QueryRowContext(ctx, websiteSelect+` WHERE domain = ?`, domain))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("website with domain %s: %w", domain, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query website: %w", err)
	}

	return website, nil
}

// ListWebsites returns all stored websites, newest first.
func (r *Repository) ListWebsites(ctx context.Context) ([]model.Website, error) {
	rows, err := r.db.QueryContext(ctx, websiteSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("could not query websites: %w", err)
	}
	defer rows.Close()

	var websites []model.Website
	for rows.Next() {
		website, err := r.scanWebsite(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		websites = append(websites, *website)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return websites, nil
}

// DeleteWebsite deletes a website and its cached audit reports.
func (r *Repository) DeleteWebsite(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM websites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete website: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("website %s: %w", id, model.ErrNotFound)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM audit_reports WHERE website_id = ?`, id); err != nil {
		return fmt.Errorf("could not delete audit reports: %w", err)
	}

	r.logger.Debugf("Deleted website from repository: %s", id)
	return nil
}

const websiteSelect = `SELECT id, domain, site_type, industry, competitors, created_at FROM websites`

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repository) scanWebsite(s scanner) (*model.Website, error) {
	var website model.Website
	var siteType, competitors string
	var createdAt int64

	err := s.Scan(
		&website.ID,
		&website.Domain,
		&siteType,
		&website.Industry,
		&competitors,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	website.SiteType = model.SiteType(siteType)
	website.CreatedAt = time.Unix(createdAt, 0).UTC()
	if err := decodeJSON(competitors, &website.Competitors); err != nil {
		return nil, fmt.Errorf("could not decode competitors: %w", err)
	}

	return &website, nil
}
