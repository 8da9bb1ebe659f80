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

// UpsertCharges writes validated charges in one transaction, keyed by charge
// id: new rows are inserted, existing ones get their mutable fields
// overwritten.
func (d Datasource) UpsertCharges(ctx context.Context, charges []model.Charge) error {
	ctx, span := otel.Tracer("Charge").Start(ctx, "Upserting charges")
	defer span.End()

	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin charge upsert", err)
	}

	for _, charge := range charges {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO dbo.charges (id, company_id, amount, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				company_id = EXCLUDED.company_id,
				amount     = EXCLUDED.amount,
				status     = EXCLUDED.status,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at`,
			charge.ChargeID, charge.CompanyID, charge.Amount, charge.Status, charge.CreatedAt, charge.UpdatedAt,
		)
		if err != nil {
			_ = tx.Rollback()
			return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to upsert charge", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to commit charge upsert", err)
	}
	return nil
}
