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

// UpsertCompanies writes the canonical company catalog in one transaction:
// new ids are inserted, existing ids get their name overwritten.
func (d Datasource) UpsertCompanies(ctx context.Context, companies []model.Company) error {
	ctx, span := otel.Tracer("Company").Start(ctx, "Upserting companies")
	defer span.End()

	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin company upsert", err)
	}

	for _, company := range companies {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO dbo.companies (company_id, company_name)
			VALUES ($1, $2)
			ON CONFLICT (company_id) DO UPDATE
			SET company_name = EXCLUDED.company_name`,
			company.CompanyID, company.CompanyName,
		)
		if err != nil {
			_ = tx.Rollback()
			return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to upsert company", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to commit company upsert", err)
	}
	return nil
}
