package repository

import (
	"context"
	"database/sql"
	"fmt"
	"transfleet/internal/db/models/postgres/public/model"
	"transfleet/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// TransformerRepository reads and maintains the customers table. Every
// read filters to valid rows: serial, contract and customer all present
// and non-empty. Invalid rows are only visible to DeleteInvalid.
type TransformerRepository interface {
	List() ([]model.Customers, error)
	ListByCustomer(customerName string) ([]model.Customers, error)
	ListCustomerNames() ([]string, error)
	ListContractIDs() ([]string, error)
	DeleteInvalid() (int64, error)
	Ping(ctx context.Context) error
}

type transformerRepositoryHandler struct {
	Db *sql.DB
}

func NewTransformerRepository(db *sql.DB) TransformerRepository {
	return transformerRepositoryHandler{Db: db}
}

func validRecordPredicate() postgres.BoolExpression {
	return table.Customers.Customer.IS_NOT_NULL().
		AND(table.Customers.Customer.NOT_EQ(postgres.String(""))).
		AND(table.Customers.Contract.IS_NOT_NULL()).
		AND(table.Customers.Contract.NOT_EQ(postgres.String(""))).
		AND(table.Customers.Serial.IS_NOT_NULL()).
		AND(table.Customers.Serial.NOT_EQ(postgres.String("")))
}

func (h transformerRepositoryHandler) List() ([]model.Customers, error) {
	query := table.Customers.
		SELECT(table.Customers.AllColumns).
		WHERE(validRecordPredicate()).
		ORDER_BY(table.Customers.Customer.ASC(), table.Customers.Serial.ASC())

	result := []model.Customers{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list transformer records: %w", err)
	}

	return result, nil
}

func (h transformerRepositoryHandler) ListByCustomer(customerName string) ([]model.Customers, error) {
	query := table.Customers.
		SELECT(table.Customers.AllColumns).
		WHERE(
			table.Customers.Customer.EQ(postgres.String(customerName)).
				AND(validRecordPredicate()),
		).
		ORDER_BY(table.Customers.Contract.ASC(), table.Customers.Serial.ASC())

	result := []model.Customers{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for customer %s: %w", customerName, err)
	}

	return result, nil
}

func (h transformerRepositoryHandler) ListCustomerNames() ([]string, error) {
	query := table.Customers.
		SELECT(table.Customers.Customer).
		DISTINCT().
		WHERE(validRecordPredicate()).
		ORDER_BY(table.Customers.Customer.ASC())

	rows := []model.Customers{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer names: %w", err)
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Customer != nil {
			names = append(names, *row.Customer)
		}
	}

	return names, nil
}

func (h transformerRepositoryHandler) ListContractIDs() ([]string, error) {
	query := table.Customers.
		SELECT(table.Customers.Contract).
		DISTINCT().
		WHERE(
			table.Customers.Contract.IS_NOT_NULL().
				AND(table.Customers.Contract.NOT_EQ(postgres.String(""))),
		).
		ORDER_BY(table.Customers.Contract.ASC())

	rows := []model.Customers{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract ids: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Contract != nil {
			ids = append(ids, *row.Contract)
		}
	}

	return ids, nil
}

// DeleteInvalid removes every row with a missing or empty key field and
// returns the number of rows removed. A single DELETE, so the count is
// exact with respect to concurrent writers.
func (h transformerRepositoryHandler) DeleteInvalid() (int64, error) {
	stmt := table.Customers.DELETE().WHERE(
		table.Customers.Customer.IS_NULL().
			OR(table.Customers.Customer.EQ(postgres.String(""))).
			OR(table.Customers.Contract.IS_NULL()).
			OR(table.Customers.Contract.EQ(postgres.String(""))).
			OR(table.Customers.Serial.IS_NULL()).
			OR(table.Customers.Serial.EQ(postgres.String(""))),
	)

	res, err := stmt.Exec(h.Db)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invalid records: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}

	return deleted, nil
}

func (h transformerRepositoryHandler) Ping(ctx context.Context) error {
	err := h.Db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
