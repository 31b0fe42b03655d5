// Package swapi is the data-access layer for the SWAPI GraphQL endpoint.
//
// generated.go is produced by genqlient from schema.graphql and queries.graphql
// (see genqlient.yaml); the rest of the package wires the genqlient runtime to
// an instrumented, optionally caching HTTP transport.
package swapi

//go:generate go run github.com/Khan/genqlient genqlient.yaml

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSource string

//go:embed queries.graphql
var queriesSource string

// Operations maps each generated operation name to the document sent upstream.
var Operations = map[string]string{
	"AllFilms":        AllFilms_Operation,
	"FilmDetail":      FilmDetail_Operation,
	"CharacterDetail": CharacterDetail_Operation,
}

// Schema parses the embedded schema subset.
func Schema() (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSource})
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	return schema, nil
}

// ValidateOperations checks queries.graphql and every generated operation
// document against the schema.
func ValidateOperations() error {
	schema, err := Schema()
	if err != nil {
		return err
	}

	if _, errs := gqlparser.LoadQuery(schema, queriesSource); len(errs) > 0 {
		return fmt.Errorf("queries.graphql: %w", errs)
	}
	for name, doc := range Operations {
		if _, errs := gqlparser.LoadQuery(schema, doc); len(errs) > 0 {
			return fmt.Errorf("operation %s: %w", name, errs)
		}
	}
	return nil
}
