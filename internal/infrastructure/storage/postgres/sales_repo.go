package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockbook/internal/core/apperror"
	"stockbook/internal/core/id"
	"stockbook/internal/core/types"
	"stockbook/internal/domain/sales"
)

const salesTable = "sales"

var salesColumns = []string{
	"id", "date", "customer_name", "phone1", "phone2", "address",
	"destination_branch", "products", "cod_amount", "status", "version",
	"created_at", "updated_at",
}

// SalesRepo implements sales.Repository. Product lines are stored as a
// JSONB column, keeping the sale-with-lines document shape.
type SalesRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewSalesRepo creates a new sales repository.
func NewSalesRepo(txManager *TxManager) *SalesRepo {
	return &SalesRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ sales.Repository = (*SalesRepo)(nil)

// saleRow mirrors the sales table for scanning.
type saleRow struct {
	ID                id.ID       `db:"id"`
	Date              time.Time   `db:"date"`
	CustomerName      string      `db:"customer_name"`
	Phone1            string      `db:"phone1"`
	Phone2            string      `db:"phone2"`
	Address           string      `db:"address"`
	DestinationBranch string      `db:"destination_branch"`
	Products          []byte      `db:"products"`
	CODAmount         types.Money `db:"cod_amount"`
	Status            string      `db:"status"`
	Version           int         `db:"version"`
	CreatedAt         time.Time   `db:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at"`
}

func (row *saleRow) toSale() (*sales.Sale, error) {
	var lines []sales.Line
	if len(row.Products) > 0 {
		if err := json.Unmarshal(row.Products, &lines); err != nil {
			return nil, fmt.Errorf("decode product lines: %w", err)
		}
	}

	return &sales.Sale{
		ID:                row.ID,
		Date:              row.Date,
		CustomerName:      row.CustomerName,
		Phone1:            row.Phone1,
		Phone2:            row.Phone2,
		Address:           row.Address,
		DestinationBranch: row.DestinationBranch,
		Lines:             lines,
		CODAmount:         row.CODAmount,
		Status:            sales.Status(row.Status),
		Version:           row.Version,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

// Create inserts a new sale.
func (r *SalesRepo) Create(ctx context.Context, sale *sales.Sale) error {
	products, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("encode product lines: %w", err)
	}

	q := r.builder.Insert(salesTable).
		Columns(salesColumns...).
		Values(
			sale.ID, sale.Date, sale.CustomerName, sale.Phone1, sale.Phone2,
			sale.Address, sale.DestinationBranch, products, sale.CODAmount,
			string(sale.Status), sale.Version, sale.CreatedAt, sale.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	return nil
}

// Update overwrites a sale with optimistic locking on version.
func (r *SalesRepo) Update(ctx context.Context, sale *sales.Sale) error {
	products, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("encode product lines: %w", err)
	}

	q := r.builder.Update(salesTable).
		Set("date", sale.Date).
		Set("customer_name", sale.CustomerName).
		Set("phone1", sale.Phone1).
		Set("phone2", sale.Phone2).
		Set("address", sale.Address).
		Set("destination_branch", sale.DestinationBranch).
		Set("products", products).
		Set("cod_amount", sale.CODAmount).
		Set("status", string(sale.Status)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", sale.UpdatedAt).
		Where(squirrel.Eq{"id": sale.ID}).
		Where(squirrel.Eq{"version": sale.Version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(salesTable, sale.ID)
	}

	sale.Version++
	return nil
}

// GetByID returns one sale.
func (r *SalesRepo) GetByID(ctx context.Context, saleID id.ID) (*sales.Sale, error) {
	q := r.builder.
		Select(salesColumns...).
		From(salesTable).
		Where(squirrel.Eq{"id": saleID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row saleRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("sale", saleID)
		}
		return nil, fmt.Errorf("select sale: %w", err)
	}

	return row.toSale()
}

// List returns all sales, newest date first.
func (r *SalesRepo) List(ctx context.Context) ([]sales.Sale, error) {
	q := r.builder.
		Select(salesColumns...).
		From(salesTable).
		OrderBy("date DESC", "created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []saleRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}

	items := make([]sales.Sale, 0, len(rows))
	for i := range rows {
		sale, err := rows[i].toSale()
		if err != nil {
			return nil, err
		}
		items = append(items, *sale)
	}

	return items, nil
}
