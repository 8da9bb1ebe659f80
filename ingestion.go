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
package etl

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dmorenov/charges-etl/internal/apierror"
	"github.com/dmorenov/charges-etl/model"
)

// rawColumnCount is the number of columns the source extract carries; the
// mapping to semantic fields is positional.
const rawColumnCount = 7

// LoadRawCSV bulk-loads a source CSV into the raw staging table. The first
// row is assumed to be a header. Everything is loaded as-is; cleaning
// happens later in the pipeline, not here.
func (s *Etl) LoadRawCSV(ctx context.Context, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Cannot open source file %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Cannot parse source file %s", path), err)
	}
	if len(rows) == 0 {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Source file %s is empty", path), nil)
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rawRecordFromRow(row))
	}

	if err := s.datasource.EnsureRawTable(ctx); err != nil {
		return 0, err
	}
	n, err := s.datasource.CopyRawRecords(ctx, records)
	if err != nil {
		return 0, err
	}

	logrus.Infof("loaded %d raw rows from %s", n, path)
	return n, nil
}

// rawRecordFromRow maps the first seven CSV columns to their semantic names.
// Empty cells become nulls, matching how the staging table treats them.
func rawRecordFromRow(row []string) model.RawRecord {
	cells := make([]sql.NullString, rawColumnCount)
	for i := 0; i < rawColumnCount && i < len(row); i++ {
		if row[i] != "" {
			cells[i] = sql.NullString{String: row[i], Valid: true}
		}
	}
	return model.RawRecord{
		ID:          cells[0],
		CompanyName: cells[1],
		CompanyID:   cells[2],
		Amount:      cells[3],
		Status:      cells[4],
		CreatedAt:   cells[5],
		UpdatedAt:   cells[6],
	}
}
