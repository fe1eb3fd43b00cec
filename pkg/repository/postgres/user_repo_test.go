package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/usermanagement/pkg/user"
)

// fakeDB serves canned results for the count and page queries so List
// can be exercised without a live database.
type fakeDB struct {
	count     int
	rows      [][]any
	countArgs []any
	pageArgs  []any
}

func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	f.pageArgs = args
	return &fakeRows{rows: f.rows}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.countArgs = args
	return &fakeCountRow{count: f.count}
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) { return nil, nil }

type fakeCountRow struct{ count int }

func (r *fakeCountRow) Scan(dest ...any) error {
	*dest[0].(*int) = r.count
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *int64:
			*d = row[i].(int64)
		case *int:
			*d = row[i].(int)
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		case **time.Time:
			if row[i] == nil {
				*d = nil
			} else {
				t := row[i].(time.Time)
				*d = &t
			}
		}
	}
	return nil
}

func userRow(id int64, email string) []any {
	return []any{
		id, "Ada", "Lovelace", 36, "UK", "Greater London", "London",
		email, "$2a$10$hash", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), nil,
	}
}

// A page window past the end of a non-empty filtered set returns no
// rows but must still report the full-set totals.
func TestList_EmptyPageKeepsTotals(t *testing.T) {
	db := &fakeDB{count: 5}
	repo := &UserRepository{db: db}

	result, err := repo.List(context.Background(), user.ListQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Empty(t, result.Items)
	require.Equal(t, 2, result.Page)
	require.Equal(t, 10, result.PageSize)
	require.Equal(t, 5, result.TotalCount)
	require.Equal(t, 1, result.TotalPages)
}

func TestList_ScansPageRows(t *testing.T) {
	db := &fakeDB{count: 2, rows: [][]any{userRow(1, "a@example.com"), userRow(2, "b@example.com")}}
	repo := &UserRepository{db: db}

	result, err := repo.List(context.Background(), user.ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	require.Equal(t, "a@example.com", result.Items[0].Email)
	require.EqualValues(t, 2, result.Items[1].ID)
	require.Equal(t, 2, result.TotalCount)
	require.Equal(t, 1, result.TotalPages)
}

// The count and page queries must see the same filters.
func TestList_FiltersReachBothQueries(t *testing.T) {
	db := &fakeDB{count: 0}
	repo := &UserRepository{db: db}

	age := 30
	country := "UK"
	_, err := repo.List(context.Background(), user.ListQuery{Page: 1, PageSize: 10, Age: &age, Country: &country})
	require.NoError(t, err)

	require.Equal(t, []any{&age, &country}, db.countArgs)
	require.Len(t, db.pageArgs, 4)
	require.Equal(t, &age, db.pageArgs[0])
	require.Equal(t, &country, db.pageArgs[1])
	require.Equal(t, 10, db.pageArgs[2])
	require.Equal(t, 0, db.pageArgs[3])
}
