package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"bookql/internal/storage/books"
	"bookql/internal/types"
)

var authorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Author",
	Fields: graphql.Fields{
		"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var bookType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Book",
	Fields: graphql.Fields{
		"title":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"author": &graphql.Field{Type: graphql.NewNonNull(authorType)},
	},
})

// NewSchema builds the executable schema with the single books query field.
// defaultLimit caps the result set when the caller passes no limit argument;
// 0 disables the cap.
func NewSchema(br books.Repository, defaultLimit int) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"books": &graphql.Field{
					Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType))),
					Args: graphql.FieldConfigArgument{
						"authorIds": &graphql.ArgumentConfig{
							Type: graphql.NewList(graphql.NewNonNull(graphql.Int)),
						},
						"search": &graphql.ArgumentConfig{
							Type: graphql.String,
						},
						"limit": &graphql.ArgumentConfig{
							Type: graphql.Int,
						},
					},
					Resolve: makeBooksResolver(br, defaultLimit),
				},
			},
		}),
	})
}

func makeBooksResolver(br books.Repository, defaultLimit int) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		f, err := filterFromArgs(p.Args, defaultLimit)
		if err != nil {
			return nil, err
		}

		rows, err := br.GetBooks(p.Context, f)
		if err != nil {
			return nil, err
		}

		if rows == nil {
			rows = make([]types.Book, 0)
		}

		return rows, nil
	}
}

func filterFromArgs(args map[string]interface{}, defaultLimit int) (books.Filter, error) {
	f := books.Filter{Limit: defaultLimit}

	if raw, ok := args["authorIds"].([]interface{}); ok {
		ids := make([]int64, 0, len(raw))
		for _, v := range raw {
			id, ok := v.(int)
			if !ok {
				return books.Filter{}, fmt.Errorf("authorIds: expected integer, got %T", v)
			}
			ids = append(ids, int64(id))
		}
		f.AuthorIds = ids
	}

	if search, ok := args["search"].(string); ok {
		f.Search = search
	}

	if limit, ok := args["limit"].(int); ok {
		if limit <= 0 {
			return books.Filter{}, errors.New("limit must be positive")
		}
		f.Limit = limit
	}

	return f, nil
}
