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

	"go.opentelemetry.io/otel"

	"github.com/dmorenov/charges-etl/internal/apierror"
	"github.com/dmorenov/charges-etl/model"
)

// RecordRun inserts a new batch run record.
func (d Datasource) RecordRun(ctx context.Context, run *model.Run) error {
	ctx, span := otel.Tracer("Run").Start(ctx, "Saving batch run to db")
	defer span.End()

	_, err := d.Conn.ExecContext(ctx, `
		INSERT INTO dbo.etl_runs(
			run_id, status, rows_read, companies_resolved,
			charges_loaded, rows_alerted, started_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.RunID, run.Status, run.RowsRead, run.CompaniesResolved,
		run.ChargesLoaded, run.RowsAlerted, run.StartedAt, run.CompletedAt,
	)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to record batch run", err)
	}
	return nil
}

// UpdateRunStatus updates the status, counts and completion time of a run.
func (d Datasource) UpdateRunStatus(ctx context.Context, run *model.Run) error {
	ctx, span := otel.Tracer("Run").Start(ctx, "Updating batch run status")
	defer span.End()

	_, err := d.Conn.ExecContext(ctx, `
		UPDATE dbo.etl_runs
		SET status = $2, rows_read = $3, companies_resolved = $4,
			charges_loaded = $5, rows_alerted = $6, completed_at = $7
		WHERE run_id = $1`,
		run.RunID, run.Status, run.RowsRead, run.CompaniesResolved,
		run.ChargesLoaded, run.RowsAlerted, run.CompletedAt,
	)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update batch run", err)
	}
	return nil
}
