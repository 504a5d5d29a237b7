// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetActiveMethodsQueryIsNotConstructed = errors.New(
		"GetActiveMethodsQuery must be created via NewGetActiveMethodsQuery constructor",
	)
)

// GetActiveMethodsQuery retrieves all shipping methods currently offered,
// together with their carrier names. Used by administration screens and by
// the availability endpoint to list candidates.
//
// Example:
//
//	query := NewGetActiveMethodsQuery()
//	handler := NewGetActiveMethodsQueryHandler(db)
//
//	methods, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve methods: %w", err)
//	}
//
//	for _, m := range methods {
//	    fmt.Printf("%s (%s)\n", m.Name, m.CarrierName)
//	}
type GetActiveMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveMethodsQuery creates a query to retrieve active methods.
// This is a parameterless query that fetches the complete active method list.
func NewGetActiveMethodsQuery() GetActiveMethodsQuery {
	return GetActiveMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveMethodsQueryIsNotConstructed if validation fails.
func (q GetActiveMethodsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveMethodsQueryIsNotConstructed)
}

// GetActiveMethodsQueryResponse represents shipping method information in the
// read model.
type GetActiveMethodsQueryResponse struct {
	ID          int64
	Name        string
	CarrierName string
	TaxRate     decimal.Decimal
}
