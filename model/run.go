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

import "time"

// Run is the bookkeeping row for one pipeline batch: lifecycle status plus
// the counts reported to the caller when the batch finishes.
type Run struct {
	ID                int64      `json:"-"`
	RunID             string     `json:"run_id"`
	Status            string     `json:"status"`
	RowsRead          int        `json:"rows_read"`
	CompaniesResolved int        `json:"companies_resolved"`
	ChargesLoaded     int        `json:"charges_loaded"`
	RowsAlerted       int        `json:"rows_alerted"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at"`
}
