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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wacul/ptr"

	"github.com/dmorenov/charges-etl/model"
)

// Run executes one pipeline batch to completion: fetch raw rows, coerce,
// resolve companies, validate charges, persist everything and append alerts.
// Data-quality problems never abort the batch, they end up in the ledger;
// an infrastructure failure marks the run failed and is returned. The
// returned Run carries the counts reported to the caller either way.
func (s *Etl) Run(ctx context.Context) (*model.Run, error) {
	run := &model.Run{
		RunID:     model.GenerateUUIDWithSuffix("run"),
		Status:    StatusStarted,
		StartedAt: time.Now(),
	}
	if err := s.datasource.RecordRun(ctx, run); err != nil {
		return run, err
	}

	run.Status = StatusInProgress
	if err := s.process(ctx, run); err != nil {
		run.Status = StatusFailed
		run.CompletedAt = ptr.Time(time.Now())
		if updateErr := s.datasource.UpdateRunStatus(ctx, run); updateErr != nil {
			logrus.Errorf("failed to mark run %s as failed: %v", run.RunID, updateErr)
		}
		return run, err
	}
	return run, nil
}

func (s *Etl) process(ctx context.Context, run *model.Run) error {
	raw, err := s.datasource.GetRawRecords(ctx)
	if err != nil {
		return err
	}
	run.RowsRead = len(raw)

	records := make([]model.TypedRecord, len(raw))
	for i, r := range raw {
		records[i] = r.Coerce()
	}

	companies := ResolveCompanies(records)
	run.CompaniesResolved = len(companies)
	if err := s.datasource.UpsertCompanies(ctx, companies); err != nil {
		return err
	}

	// The catalog is read-only from here on; validation only consults it.
	catalog := model.NewCompanyCatalog(companies)
	charges, alerts := s.validator.Validate(records, catalog)
	run.ChargesLoaded = len(charges)
	run.RowsAlerted = len(alerts)

	if err := s.datasource.UpsertCharges(ctx, charges); err != nil {
		return err
	}
	if err := s.sink.Append(alerts); err != nil {
		return err
	}

	run.Status = StatusCompleted
	run.CompletedAt = ptr.Time(time.Now())
	if err := s.datasource.UpdateRunStatus(ctx, run); err != nil {
		return err
	}

	logrus.Infof("run %s completed: %d rows read, %d companies resolved, %d charges loaded, %d rows alerted",
		run.RunID, run.RowsRead, run.CompaniesResolved, run.ChargesLoaded, run.RowsAlerted)
	return nil
}
