package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveMethodsQueryHandler retrieves active shipping methods from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveMethodsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveMethodsQueryHandler creates a handler for method retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetActiveMethodsQueryHandler(db *gorm.DB) GetActiveMethodsQueryHandler {
	return GetActiveMethodsQueryHandler{db: db}
}

// Handle executes the query to retrieve active methods of active carriers.
// Returns a slice of method read models sorted by carrier and method name.
func (h GetActiveMethodsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveMethodsQuery,
) ([]GetActiveMethodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := make([]GetActiveMethodsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			c.name,
			m.tax_rate
		FROM shipment_methods m
		JOIN shipment_carriers c ON c.id = m.carrier_id
		WHERE m.is_active AND c.is_active
		ORDER BY c.name, m.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var method GetActiveMethodsQueryResponse

		err = rows.Scan(
			&method.ID,
			&method.Name,
			&method.CarrierName,
			&method.TaxRate,
		)
		if err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return methods, nil
}
