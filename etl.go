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
	"embed"

	"github.com/dmorenov/charges-etl/config"
	"github.com/dmorenov/charges-etl/database"
	"github.com/dmorenov/charges-etl/internal/alertledger"
	"github.com/dmorenov/charges-etl/model"
)

// Batch run lifecycle statuses.
const (
	StatusStarted    = "started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

//go:embed sql/*.sql
var SQLFiles embed.FS

// AlertSink receives the rejected records of a batch. The validator never
// writes alerts itself; the sink is injected so validation stays
// side-effect-free.
type AlertSink interface {
	Append(alerts []model.Alert) error
}

// Etl is the batch pipeline service: it pulls raw rows from the staging
// table, cleans and validates them, and hands companies, charges and alerts
// to their stores.
type Etl struct {
	datasource database.IDataSource
	sink       AlertSink
	validator  *ChargeValidator
}

// NewEtl initializes the pipeline with the configured alert ledger and the
// fixed validation vocabulary.
func NewEtl(db database.IDataSource) (*Etl, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	return &Etl{
		datasource: db,
		sink:       alertledger.New(configuration.AlertLedger.Path),
		validator:  NewChargeValidator(DefaultValidationConfig()),
	}, nil
}
