package books

import (
	"context"
	"log/slog"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookql/internal/types"
)

func NewPGXRepository(pg *pgxpool.Pool, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, l: l}
}

type pgxRepo struct {
	pg *pgxpool.Pool
	l  *slog.Logger
}

type pgxBookRow struct {
	BookTitle  string `db:"book_title"`
	AuthorName string `db:"author_name"`
}

func (r *pgxBookRow) intoCommon() types.Book {
	return types.Book{
		Title:  r.BookTitle,
		Author: types.Author{Name: r.AuthorName},
	}
}

func (p *pgxRepo) GetBooks(ctx context.Context, f Filter) ([]types.Book, error) {
	if f.Limit < 0 {
		return nil, ErrNegativeLimit
	}

	sql, params, err := buildQuery(f)
	if err != nil {
		return nil, err
	}

	var rows []pgxBookRow

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]types.Book, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}
