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

// Package alertledger appends rejected records to a CSV ledger. The ledger
// is a historical log: it is never truncated or deduplicated, so repeated
// runs over overlapping data accumulate repeated alerts.
package alertledger

import (
	"encoding/csv"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dmorenov/charges-etl/model"
)

type Ledger struct {
	path string
}

func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Append writes the alerts to the end of the ledger file, creating it with
// a header row when it does not exist yet. Appending nothing is a no-op.
func (l *Ledger) Append(alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	_, statErr := os.Stat(l.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(model.AlertColumns); err != nil {
			return err
		}
	}
	for _, alert := range alerts {
		if err := w.Write(alert.Row()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	logrus.Infof("alert ledger %s updated: %d records appended", l.path, len(alerts))
	return nil
}
