package graph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/graphql-go/graphql"

	"bookql/internal/response"
)

type gqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler exposes the schema over HTTP. Resolver failures travel inside the
// GraphQL errors array; only a body that is not a GraphQL request at all is
// rejected at the transport level.
func Handler(schema graphql.Schema, rr *response.Responder) http.Handler {
	r := chi.NewRouter()

	r.Post("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			rr.RespondAndLogCustom(w, r.Context(),
				fmt.Errorf("decode graphql request: %w", err),
				slog.LevelWarn, http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		rr.SendJson(w, r.Context(), result)
	})

	return r
}
