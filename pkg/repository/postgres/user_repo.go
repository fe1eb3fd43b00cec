package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/usermanagement/pkg/user"
)

// bulkLoadTimeout bounds the table-locked bulk insert transaction.
const bulkLoadTimeout = 60 * time.Second

// db is the slice of pgxpool.Pool the repository uses.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserRepository implements user.Repository backed by PostgreSQL (pgx).
type UserRepository struct {
	db db
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{db: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			age INT NOT NULL,
			country TEXT NOT NULL,
			province TEXT NOT NULL,
			city TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			deleted_at TIMESTAMPTZ
		);
		-- backfill for older schemas
		ALTER TABLE users ADD COLUMN IF NOT EXISTS deleted_at TIMESTAMPTZ;
	`)
	return err
}

const userColumns = `id, first_name, last_name, age, country, province, city, email, password_hash, created_at, deleted_at`

const listFilter = `($1::int IS NULL OR age = $1) AND ($2::text IS NULL OR country = $2)`

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE id = $1
	`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.NotFoundError{ID: id}
		}
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE email = $1
	`, strings.ToLower(email))
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// List returns one page plus totals for the whole filtered set.
// Totals are counted separately from the page window, the way the
// store's output parameters worked: a page beyond the end of a
// non-empty set still reports the full-set totals.
func (r *UserRepository) List(ctx context.Context, q user.ListQuery) (user.PaginatedResult, error) {
	var totalCount int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users
		WHERE `+listFilter+`
	`, q.Age, q.Country).Scan(&totalCount); err != nil {
		return user.PaginatedResult{}, fmt.Errorf("count users: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE `+listFilter+`
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, q.Age, q.Country, q.PageSize, (q.Page-1)*q.PageSize)
	if err != nil {
		return user.PaginatedResult{}, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	result := user.PaginatedResult{Page: q.Page, PageSize: q.PageSize, Items: []user.User{}}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return user.PaginatedResult{}, fmt.Errorf("scan user row: %w", err)
		}
		result.Items = append(result.Items, u)
	}
	if err := rows.Err(); err != nil {
		return user.PaginatedResult{}, fmt.Errorf("list users: %w", err)
	}
	result.TotalCount = totalCount
	if q.PageSize > 0 {
		result.TotalPages = int(math.Ceil(float64(totalCount) / float64(q.PageSize)))
	}
	return result, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, age, country, province, city, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, u.FirstName, u.LastName, u.Age, u.Country, u.Province, u.City,
		strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt)
	if err := row.Scan(&u.ID); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.Email = strings.ToLower(u.Email)
	return u, nil
}

// CreateBatch bulk-loads the batch through the COPY protocol inside a
// single table-locked transaction, then reads the inserted rows back so
// the result carries store-assigned ids in input order.
func (r *UserRepository) CreateBatch(ctx context.Context, users []user.User) ([]user.User, error) {
	ctx, cancel := context.WithTimeout(ctx, bulkLoadTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin bulk insert: %w", err)
	}
	defer tx.Rollback(ctx)

	// The lock keeps the id range of the copied rows contiguous so the
	// read-back below returns exactly this batch.
	if _, err := tx.Exec(ctx, `LOCK TABLE users IN EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("lock users table: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"users"},
		[]string{"first_name", "last_name", "age", "country", "province", "city", "email", "password_hash", "created_at"},
		pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
			u := users[i]
			return []any{
				u.FirstName, u.LastName, u.Age, u.Country, u.Province, u.City,
				strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("bulk copy users: %w", err)
	}
	if copied != int64(len(users)) {
		return nil, fmt.Errorf("bulk copy users: copied %d of %d rows", copied, len(users))
	}

	rows, err := tx.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id DESC
		LIMIT $1
	`, len(users))
	if err != nil {
		return nil, fmt.Errorf("read back bulk insert: %w", err)
	}
	inserted := make([]user.User, 0, len(users))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		inserted = append(inserted, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read back bulk insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit bulk insert: %w", err)
	}

	// The read-back is id-descending; flip it so callers see input order.
	for i, j := 0, len(inserted)-1; i < j; i, j = i+1, j-1 {
		inserted[i], inserted[j] = inserted[j], inserted[i]
	}
	return inserted, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, age = $3, country = $4,
		    province = $5, city = $6, email = $7, password_hash = $8, created_at = $9
		WHERE id = $10
	`, u.FirstName, u.LastName, u.Age, u.Country, u.Province, u.City,
		strings.ToLower(u.Email), u.PasswordHash, u.CreatedAt, u.ID)
	if err != nil {
		return user.User{}, fmt.Errorf("update user: %w", err)
	}
	u.Email = strings.ToLower(u.Email)
	return u, nil
}

// Delete removes the row outright. Deleting a missing id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var createdAt time.Time
	if err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Country, &u.Province,
		&u.City, &u.Email, &u.PasswordHash, &createdAt, &u.DeletedAt,
	); err != nil {
		return user.User{}, err
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
