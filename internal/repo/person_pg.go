package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/contactbook/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// pgPersonRepo is the Postgres implementation of PersonRepo.
// Tags live in person_tags with an explicit position so insertion order
// survives a round trip.
type pgPersonRepo struct {
	db db
}

// NewPgPersonRepo constructs a PersonRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPgPersonRepo(db db) PersonRepo {
	return &pgPersonRepo{db: db}
}

// List returns all persons in creation order with their tags in position order.
func (r *pgPersonRepo) List(ctx context.Context) ([]domain.Person, error) {
	const q = `
		SELECT id, name, phone, email
		FROM persons
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PgPersonRepo.List: %w", err)
	}
	defer rows.Close()

	var (
		ids    []uuid.UUID
		people []domain.Person
	)
	for rows.Next() {
		id, p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PgPersonRepo.List: scan: %w", err)
		}
		ids = append(ids, id)
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PgPersonRepo.List: rows: %w", err)
	}

	tags, err := r.listTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.PgPersonRepo.List: %w", err)
	}
	for i, id := range ids {
		people[i].Tags = domain.NewTagSet(tags[id]...)
	}

	if people == nil {
		return []domain.Person{}, nil
	}
	return people, nil
}

// Create inserts the person row and its tags in one transaction.
func (r *pgPersonRepo) Create(ctx context.Context, p domain.Person) error {
	const q = `
		INSERT INTO persons (name, phone, email)
		VALUES (@name, @phone, @email)
		RETURNING id`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Create: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	args := pgx.NamedArgs{
		"name":  string(p.Name),
		"phone": string(p.Phone),
		"email": string(p.Email),
	}
	id, err := scanID(tx.QueryRow(ctx, q, args))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.PgPersonRepo.Create: phone %s: %w", p.Phone, domain.ErrDuplicate)
		}
		return fmt.Errorf("repo.PgPersonRepo.Create: %w", err)
	}

	if err := insertTags(ctx, tx, id, p.Tags); err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Create: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Create: commit: %w", err)
	}
	return nil
}

// Replace overwrites the row whose phone is old.Phone and rewrites its tags.
func (r *pgPersonRepo) Replace(ctx context.Context, old, updated domain.Person) error {
	const q = `
		UPDATE persons
		SET name       = @name,
		    phone      = @phone,
		    email      = @email,
		    updated_at = now()
		WHERE phone = @old_phone
		RETURNING id`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Replace: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	args := pgx.NamedArgs{
		"name":      string(updated.Name),
		"phone":     string(updated.Phone),
		"email":     string(updated.Email),
		"old_phone": string(old.Phone),
	}
	id, err := scanID(tx.QueryRow(ctx, q, args))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("repo.PgPersonRepo.Replace: phone %s: %w", updated.Phone, domain.ErrDuplicate)
		}
		return fmt.Errorf("repo.PgPersonRepo.Replace: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM person_tags WHERE person_id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Replace: clear tags: %w", err)
	}
	if err := insertTags(ctx, tx, id, updated.Tags); err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Replace: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.PgPersonRepo.Replace: commit: %w", err)
	}
	return nil
}

// listTags returns every person's tags keyed by person id, in position order.
func (r *pgPersonRepo) listTags(ctx context.Context) (map[uuid.UUID][]domain.Tag, error) {
	const q = `
		SELECT person_id, name, kind
		FROM person_tags
		ORDER BY person_id, position`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.Tag)
	for rows.Next() {
		var (
			personID   pgtype.UUID
			name, kind string
		)
		if err := rows.Scan(&personID, &name, &kind); err != nil {
			return nil, fmt.Errorf("list tags: scan: %w", err)
		}
		k, err := parseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		t, err := domain.NewTagOfKind(name, k)
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		id := uuid.UUID(personID.Bytes)
		out[id] = append(out[id], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: rows: %w", err)
	}
	return out, nil
}

// insertTags writes tags for personID with their set positions.
func insertTags(ctx context.Context, tx db, personID uuid.UUID, tags domain.TagSet) error {
	const q = `
		INSERT INTO person_tags (person_id, position, name, kind)
		VALUES (@person_id, @position, @name, @kind)`

	for i, t := range tags.Tags() {
		args := pgx.NamedArgs{
			"person_id": personID,
			"position":  i,
			"name":      t.Name(),
			"kind":      t.Kind().String(),
		}
		if _, err := tx.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("insert tag %s: %w", t.Name(), err)
		}
	}
	return nil
}

// scanPerson maps a persons row into its id and a tagless domain.Person.
func scanPerson(s scanner) (uuid.UUID, domain.Person, error) {
	var (
		p                  domain.Person
		id                 pgtype.UUID
		name, phone, email string
	)
	if err := s.Scan(&id, &name, &phone, &email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, domain.Person{}, domain.ErrNotFound
		}
		return uuid.Nil, domain.Person{}, err
	}
	p.Name, p.Phone, p.Email = domain.Name(name), domain.Phone(phone), domain.Email(email)
	return uuid.UUID(id.Bytes), p, nil
}

// scanID reads a single RETURNING id column.
func scanID(s scanner) (uuid.UUID, error) {
	var id pgtype.UUID
	if err := s.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, domain.ErrNotFound
		}
		return uuid.Nil, err
	}
	return uuid.UUID(id.Bytes), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
