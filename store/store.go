// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/christmas-map/auth"
	"github.com/danielhkuo/christmas-map/db"
	"github.com/danielhkuo/christmas-map/models"
)

var ErrNotFound = errors.New("not found")

// Store runs the house and vote queries. Queries are written with
// Postgres-style $N placeholders and rebound for SQLite.
type Store struct {
	db     *sql.DB
	dbType string
}

func New(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType}
}

// rebind rewrites $N placeholders to ? for SQLite.
// Every query numbers its placeholders in order of appearance.
func (s *Store) rebind(query string) string {
	if s.dbType != db.TypeSQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && isDigit(query[i+1]) {
			b.WriteByte('?')
			for i+1 < len(query) && isDigit(query[i+1]) {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ---------- Houses ----------

const houseColumns = `id, name, description, address, latitude, longitude, image_path, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHouse(row rowScanner) (models.House, error) {
	var h models.House
	var description, address, imagePath, createdBy sql.NullString

	err := row.Scan(
		&h.ID,
		&h.Name,
		&description,
		&address,
		&h.Latitude,
		&h.Longitude,
		&imagePath,
		&createdBy,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return models.House{}, err
	}

	h.Description = fromNull(description)
	h.Address = fromNull(address)
	h.ImagePath = fromNull(imagePath)
	h.CreatedBy = fromNull(createdBy)
	return h, nil
}

// ListHousesWithVotes returns every house, newest first, and their votes keyed by house ID
func (s *Store) ListHousesWithVotes(ctx context.Context) ([]models.House, map[string][]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+houseColumns+`
		FROM house
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query houses: %w", err)
	}

	houses := []models.House{}
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, nil, fmt.Errorf("failed to iterate houses: %w", err)
	}
	// Close before the next query; SQLite runs on a single connection
	rows.Close()

	votes, err := s.queryVotes(ctx, `
		SELECT house_id, browser_id, value, created_at, updated_at
		FROM vote
	`)
	if err != nil {
		return nil, nil, err
	}

	byHouse := make(map[string][]models.Vote, len(houses))
	for _, v := range votes {
		byHouse[v.HouseID] = append(byHouse[v.HouseID], v)
	}

	return houses, byHouse, nil
}

// GetHouse returns ErrNotFound if no house has the given id
func (s *Store) GetHouse(ctx context.Context, id string) (models.House, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT `+houseColumns+`
		FROM house
		WHERE id = $1
	`), id)

	h, err := scanHouse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.House{}, ErrNotFound
	}
	if err != nil {
		return models.House{}, fmt.Errorf("failed to query house: %w", err)
	}
	return h, nil
}

// InsertHouse assigns an ID and timestamps (unless already set) and stores the house
func (s *Store) InsertHouse(ctx context.Context, h *models.House) error {
	if h.ID == "" {
		h.ID = auth.NewID()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = h.CreatedAt
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO house (id, name, description, address, latitude, longitude, image_path, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`),
		h.ID,
		h.Name,
		toNull(h.Description),
		toNull(h.Address),
		h.Latitude,
		h.Longitude,
		toNull(h.ImagePath),
		toNull(h.CreatedBy),
		h.CreatedAt,
		h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert house: %w", err)
	}
	return nil
}

// DeleteHouse removes a house and its votes in one transaction.
// Votes are deleted explicitly as well as by the cascade so a SQLite
// connection opened without foreign keys behaves the same.
func (s *Store) DeleteHouse(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM vote WHERE house_id = $1`), id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM house WHERE id = $1`), id)
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ---------- Votes ----------

// UpsertVote records value (+1 or -1) for the browser, replacing any earlier vote
func (s *Store) UpsertVote(ctx context.Context, houseID, browserID string, value int) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO vote (house_id, browser_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (house_id, browser_id) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`), houseID, browserID, value, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

// DeleteVote removes the browser's vote, if any
func (s *Store) DeleteVote(ctx context.Context, houseID, browserID string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		DELETE FROM vote WHERE house_id = $1 AND browser_id = $2
	`), houseID, browserID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return nil
}

// ListVotes returns all votes for one house
func (s *Store) ListVotes(ctx context.Context, houseID string) ([]models.Vote, error) {
	return s.queryVotes(ctx, s.rebind(`
		SELECT house_id, browser_id, value, created_at, updated_at
		FROM vote
		WHERE house_id = $1
	`), houseID)
}

func (s *Store) queryVotes(ctx context.Context, query string, args ...any) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.HouseID, &v.BrowserID, &v.Value, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}
	return votes, nil
}

func toNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
