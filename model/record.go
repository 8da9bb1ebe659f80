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
package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// RawRecord is a charge row exactly as it sits in the staging table: seven
// nullable string columns. It is produced once by ingestion and read-only
// afterwards.
type RawRecord struct {
	ID          sql.NullString
	CompanyName sql.NullString
	CompanyID   sql.NullString
	Amount      sql.NullString
	Status      sql.NullString
	CreatedAt   sql.NullString
	UpdatedAt   sql.NullString
}

// TypedRecord is a RawRecord after type coercion. Amount and the timestamps
// carry their own null markers; a value that failed to parse is simply
// invalid, never an error.
type TypedRecord struct {
	ID          sql.NullString
	CompanyName sql.NullString
	CompanyID   sql.NullString
	Amount      decimal.NullDecimal
	Status      sql.NullString
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

// Coerce converts the raw string columns into typed values. Parse failures
// become invalid (null) values, so this is total and never fails.
func (r RawRecord) Coerce() TypedRecord {
	return TypedRecord{
		ID:          r.ID,
		CompanyName: r.CompanyName,
		CompanyID:   r.CompanyID,
		Amount:      CoerceAmount(r.Amount),
		Status:      r.Status,
		CreatedAt:   CoerceTimestamp(r.CreatedAt),
		UpdatedAt:   CoerceTimestamp(r.UpdatedAt),
	}
}
