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
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCommands creates the command that executes one pipeline batch.
func runCommands(b *etlInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the clean/reconcile/validate pipeline over the staging table",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := b.etl.Run(cmd.Context())
			if err != nil {
				logrus.Errorf("run %s failed: %v", run.RunID, err)
				return err
			}

			logrus.Infof("run %s: %d rows read, %d companies resolved, %d charges loaded, %d rows alerted",
				run.RunID, run.RowsRead, run.CompaniesResolved, run.ChargesLoaded, run.RowsAlerted)
			return nil
		},
	}
}
