package books

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookql/internal/types"
)

func TestGetBooks_NegativeLimit(t *testing.T) {
	repo := NewPGXRepository(nil, slog.Default())

	_, err := repo.GetBooks(context.Background(), Filter{Limit: -1})
	assert.ErrorIs(t, err, ErrNegativeLimit)
}

func TestRowIntoCommon(t *testing.T) {
	row := pgxBookRow{BookTitle: "Go Basics", AuthorName: "Alice"}

	assert.Equal(t, types.Book{
		Title:  "Go Basics",
		Author: types.Author{Name: "Alice"},
	}, row.intoCommon())
}

// setupTestDB connects to TEST_DATABASE_URL and reseeds the fixture catalog:
// authors Alice and Bob, two Alice books, one Bob book and one book whose
// author_id matches no author row.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pg, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	ctx := context.Background()

	for _, stmt := range []string{
		`drop table if exists book`,
		`drop table if exists author`,
		`create table author (id bigint primary key, name text not null)`,
		`create table book (id bigserial primary key, title text not null, author_id bigint not null)`,
		`insert into author (id, name) values (1, 'Alice'), (2, 'Bob')`,
		`insert into book (title, author_id) values
			('Go Basics', 1),
			('Rust Deep Dive', 2),
			('Go Advanced', 1),
			('Lost Manuscript', 99)`,
	} {
		_, err := pg.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	return pg
}

func TestGetBooks_Integration(t *testing.T) {
	pg := setupTestDB(t)
	repo := NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	t.Run("no filters excludes orphaned book", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{})
		require.NoError(t, err)

		assert.Equal(t, []types.Book{
			{Title: "Go Advanced", Author: types.Author{Name: "Alice"}},
			{Title: "Go Basics", Author: types.Author{Name: "Alice"}},
			{Title: "Rust Deep Dive", Author: types.Author{Name: "Bob"}},
		}, rows)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{Search: "go"})
		require.NoError(t, err)

		assert.Equal(t, []types.Book{
			{Title: "Go Advanced", Author: types.Author{Name: "Alice"}},
			{Title: "Go Basics", Author: types.Author{Name: "Alice"}},
		}, rows)
	})

	t.Run("author ids filter", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{AuthorIds: []int64{2}})
		require.NoError(t, err)

		assert.Equal(t, []types.Book{
			{Title: "Rust Deep Dive", Author: types.Author{Name: "Bob"}},
		}, rows)
	})

	t.Run("limit without filters", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{Limit: 1})
		require.NoError(t, err)

		// first row of the title ordering
		assert.Equal(t, []types.Book{
			{Title: "Go Advanced", Author: types.Author{Name: "Alice"}},
		}, rows)
	})

	t.Run("filters combine with and", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{AuthorIds: []int64{1}, Search: "basics"})
		require.NoError(t, err)

		assert.Equal(t, []types.Book{
			{Title: "Go Basics", Author: types.Author{Name: "Alice"}},
		}, rows)
	})

	t.Run("empty filters behave as absent", func(t *testing.T) {
		rows, err := repo.GetBooks(ctx, Filter{AuthorIds: []int64{}, Search: ""})
		require.NoError(t, err)

		assert.Len(t, rows, 3)
	})
}
