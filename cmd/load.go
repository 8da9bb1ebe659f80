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
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadCommands creates the command that bulk-loads the source CSV into the
// raw staging table.
func loadCommands(b *etlInstance) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "bulk-load the source CSV into the raw staging table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = b.cnf.RawSource.File
			}
			if file == "" {
				return errors.New("no source file: pass --file or set raw_source.file in the config")
			}

			n, err := b.etl.LoadRawCSV(cmd.Context(), file)
			if err != nil {
				logrus.Errorf("raw load failed: %v", err)
				return err
			}

			logrus.Infof("raw load finished: %d rows inserted from %s", n, file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path of the CSV extract to load")
	return cmd
}
