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

	"github.com/dmorenov/charges-etl/model"
)

// IDataSource defines the interface for data source operations, grouping
// related functionalities.
type IDataSource interface {
	rawdata // Raw staging table operations
	company // Company catalog operations
	charge  // Validated charge operations
	run     // Batch run bookkeeping
}

// rawdata defines methods for the raw staging table.
type rawdata interface {
	EnsureRawTable(ctx context.Context) error                                       // Creates the staging table if missing
	CopyRawRecords(ctx context.Context, records []model.RawRecord) (int64, error)   // Bulk-loads raw rows via COPY
	GetRawRecords(ctx context.Context) ([]model.RawRecord, error)                   // Reads the whole staging table
}

// company defines methods for the canonical company store.
type company interface {
	UpsertCompanies(ctx context.Context, companies []model.Company) error // Insert new, overwrite name on conflict
}

// charge defines methods for the validated charge store.
type charge interface {
	UpsertCharges(ctx context.Context, charges []model.Charge) error // Insert new, overwrite mutable fields on conflict
}

// run defines methods for batch run bookkeeping.
type run interface {
	RecordRun(ctx context.Context, run *model.Run) error       // Records a new batch run
	UpdateRunStatus(ctx context.Context, run *model.Run) error // Updates status, counts and completion time
}
