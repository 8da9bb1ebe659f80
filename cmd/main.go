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
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	etl "github.com/dmorenov/charges-etl"
	"github.com/dmorenov/charges-etl/config"
	"github.com/dmorenov/charges-etl/database"
	"github.com/dmorenov/charges-etl/internal/apierror"
)

// CLI wraps the root cobra command of the application.
type CLI struct {
	cmd *cobra.Command
}

// etlInstance holds the pipeline service and its configuration for the
// lifetime of a command.
type etlInstance struct {
	etl *etl.Etl
	cnf *config.Configuration
}

// recoverPanic handles any panics during command execution and logs them.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the pipeline before any
// command runs.
func preRun(app *etlInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		err := config.InitConfig(configFile)
		if err != nil {
			log.Fatal("error loading config ", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newEtl, err := setupEtl(cnf)
		if err != nil {
			log.Fatal(err)
		}

		app.etl = newEtl
		app.cnf = cnf
		return nil
	}
}

// setupEtl connects the datasource and builds the pipeline service.
func setupEtl(cnf *config.Configuration) (*etl.Etl, error) {
	db, err := database.NewDataSource(cnf)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	newEtl, err := etl.NewEtl(db)
	if err != nil {
		return nil, fmt.Errorf("error creating etl: %v", err)
	}
	return newEtl, nil
}

// NewCLI assembles the command-line interface: load, run and migrate.
func NewCLI() *CLI {
	var configFile string
	b := &etlInstance{}

	var rootCmd = &cobra.Command{
		Use:   "charges-etl",
		Short: "Charge cleaning and reconciliation pipeline",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./charges.json", "Configuration file for the pipeline")
	rootCmd.PersistentPreRunE = preRun(b)

	rootCmd.AddCommand(loadCommands(b))
	rootCmd.AddCommand(runCommands(b))
	rootCmd.AddCommand(migrateCommands(b))

	return &CLI{cmd: rootCmd}
}

// executeCLI runs the root command and exits non-zero on failure.
func (w CLI) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(apierror.MapErrorToExitStatus(err))
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
