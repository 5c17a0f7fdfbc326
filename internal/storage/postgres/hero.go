package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/herogen/internal/game/hero"
	"github.com/cory-johannsen/herogen/internal/game/klass"
)

// ErrHeroNotFound is returned when a hero lookup yields no results.
var ErrHeroNotFound = errors.New("hero not found")

// ErrHeroExists is returned when creating a hero whose ID is already stored.
var ErrHeroExists = errors.New("hero already exists")

// HeroRecord is a stored hero with its persistence metadata.
type HeroRecord struct {
	Hero      hero.Hero
	CreatedAt time.Time
}

const insertHero = `
	INSERT INTO heroes (id, name, race, klass, attributes)
	VALUES ($1, $2, $3, $4, $5)`

func heroArgs(h hero.Hero) []any {
	return []any{h.ID(), h.Name(), h.Race().String(), h.Klass().String(), h.Attributes()}
}

// HeroRepository persists heroes as their attribute maps.
type HeroRepository struct {
	db *pgxpool.Pool
}

// NewHeroRepository creates a HeroRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

// Create stores h.
//
// Precondition: h must come from hero.Assembler or hero.FromAttributes.
// Postcondition: Returns the stored record, or ErrHeroExists on a duplicate ID.
func (r *HeroRepository) Create(ctx context.Context, h hero.Hero) (*HeroRecord, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, insertHero+` RETURNING created_at`, heroArgs(h)...).Scan(&createdAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrHeroExists
		}
		return nil, fmt.Errorf("inserting hero: %w", err)
	}
	return &HeroRecord{Hero: h, CreatedAt: createdAt}, nil
}

// CreateAll stores heroes in one transaction; either all are stored or none.
//
// Postcondition: Returns ErrHeroExists if any ID is already stored.
func (r *HeroRepository) CreateAll(ctx context.Context, heroes []hero.Hero) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, h := range heroes {
			if _, err := tx.Exec(ctx, insertHero, heroArgs(h)...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrHeroExists
		}
		return fmt.Errorf("inserting heroes: %w", err)
	}
	return nil
}

// GetByID retrieves a hero by ID.
//
// Postcondition: Returns the record or ErrHeroNotFound.
func (r *HeroRepository) GetByID(ctx context.Context, id uuid.UUID) (*HeroRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT attributes, created_at FROM heroes WHERE id = $1`, id)
	rec, err := scanHero(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHeroNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying hero: %w", err)
	}
	return rec, nil
}

// ListByKlass returns every stored hero of class k, oldest first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *HeroRepository) ListByKlass(ctx context.Context, k klass.Name) ([]*HeroRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT attributes, created_at FROM heroes
		WHERE klass = $1 ORDER BY created_at ASC, id ASC`,
		k.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing heroes: %w", err)
	}
	defer rows.Close()

	var out []*HeroRecord
	for rows.Next() {
		rec, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning hero: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating heroes: %w", err)
	}
	return out, nil
}

// Delete removes a hero by ID.
//
// Postcondition: Returns ErrHeroNotFound when no row matched.
func (r *HeroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeroNotFound
	}
	return nil
}

func scanHero(row pgx.Row) (*HeroRecord, error) {
	var attrs map[string]string
	var createdAt time.Time
	if err := row.Scan(&attrs, &createdAt); err != nil {
		return nil, err
	}
	h, err := hero.FromAttributes(attrs)
	if err != nil {
		return nil, fmt.Errorf("decoding hero attributes: %w", err)
	}
	return &HeroRecord{Hero: h, CreatedAt: createdAt}, nil
}

func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
