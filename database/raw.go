/*
Copyright 2025 Charges ETL Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package database

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.opentelemetry.io/otel"

	"github.com/dmorenov/charges-etl/internal/apierror"
	"github.com/dmorenov/charges-etl/model"
)

// rawColumns are the staging table columns in source order. The source
// extract calls the name column "name" and the second timestamp "paid_at";
// the mapping to company_name/updated_at is positional and happens in
// GetRawRecords, so the rest of the pipeline only ever sees named fields.
var rawColumns = []string{"id", "name", "company_id", "amount", "status", "created_at", "paid_at"}

// EnsureRawTable creates the staging schema and table when missing. Every
// column is VARCHAR(250); typing happens later, in coercion.
func (d Datasource) EnsureRawTable(ctx context.Context) error {
	ctx, span := otel.Tracer("Raw").Start(ctx, "Ensuring raw staging table")
	defer span.End()

	_, err := d.Conn.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, d.RawSchema))
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create raw schema", err)
	}

	columnDefs := ""
	for i, col := range rawColumns {
		if i > 0 {
			columnDefs += ",\n\t\t"
		}
		columnDefs += fmt.Sprintf("%q VARCHAR(250)", col)
	}

	_, err = d.Conn.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %q.%q (\n\t\t%s\n\t)", d.RawSchema, d.RawTable, columnDefs,
	))
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create raw table", err)
	}
	return nil
}

// CopyRawRecords bulk-loads raw rows into the staging table with COPY inside
// a single transaction. A failure rolls the whole load back.
func (d Datasource) CopyRawRecords(ctx context.Context, records []model.RawRecord) (int64, error) {
	ctx, span := otel.Tracer("Raw").Start(ctx, "Bulk loading raw records")
	defer span.End()

	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin raw load transaction", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema(d.RawSchema, d.RawTable, rawColumns...))
	if err != nil {
		_ = tx.Rollback()
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to prepare COPY statement", err)
	}

	for _, r := range records {
		_, err = stmt.ExecContext(ctx, r.ID, r.CompanyName, r.CompanyID, r.Amount, r.Status, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to buffer raw record", err)
		}
	}

	// Flush the COPY buffer.
	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to flush COPY buffer", err)
	}
	if err = stmt.Close(); err != nil {
		_ = tx.Rollback()
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to close COPY statement", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to commit raw load", err)
	}

	return int64(len(records)), nil
}

// GetRawRecords materializes the whole staging table in memory; the pipeline
// is batch-oriented and runs over the full set.
func (d Datasource) GetRawRecords(ctx context.Context) ([]model.RawRecord, error) {
	ctx, span := otel.Tracer("Raw").Start(ctx, "Fetching raw records")
	defer span.End()

	query := fmt.Sprintf(
		`SELECT "id", "name", "company_id", "amount", "status", "created_at", "paid_at" FROM %q.%q`,
		d.RawSchema, d.RawTable,
	)
	rows, err := d.Conn.QueryContext(ctx, query)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to query raw table", err)
	}
	defer rows.Close()

	var records []model.RawRecord
	for rows.Next() {
		var r model.RawRecord
		err = rows.Scan(&r.ID, &r.CompanyName, &r.CompanyID, &r.Amount, &r.Status, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan raw record", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to read raw records", err)
	}
	return records, nil
}
