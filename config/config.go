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
package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_RAW_SCHEMA   = "data_raw"
	DEFAULT_RAW_TABLE    = "charges_raw"
	DEFAULT_LEDGER_PATH  = "alertas_charges_invalidos.csv"
	DEFAULT_PROJECT_NAME = "Charges ETL"
)

var ConfigStore atomic.Value

type DataSourceConfig struct {
	Dns string `json:"dns" envconfig:"CHARGES_DATA_SOURCE_DNS"`
}

func (c DataSourceConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dns, validation.Required.Error("data source DNS is required")),
	)
}

// RawSourceConfig locates the staging table and the default CSV extract.
type RawSourceConfig struct {
	Schema string `json:"schema" envconfig:"CHARGES_RAW_SCHEMA"`
	Table  string `json:"table" envconfig:"CHARGES_RAW_TABLE"`
	File   string `json:"file" envconfig:"CHARGES_RAW_FILE"`
}

type AlertLedgerConfig struct {
	Path string `json:"path" envconfig:"CHARGES_ALERT_LEDGER_PATH"`
}

type Configuration struct {
	ProjectName string            `json:"project_name" envconfig:"CHARGES_PROJECT_NAME"`
	DataSource  DataSourceConfig  `json:"data_source"`
	RawSource   RawSourceConfig   `json:"raw_source"`
	AlertLedger AlertLedgerConfig `json:"alert_ledger"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("charges", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called charges.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if err := cnf.DataSource.Validate(); err != nil {
		log.Println("Error: Data source DNS is empty. It's a required field.")
		return err
	}

	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}
	if cnf.RawSource.Schema == "" {
		cnf.RawSource.Schema = DEFAULT_RAW_SCHEMA
	}
	if cnf.RawSource.Table == "" {
		cnf.RawSource.Table = DEFAULT_RAW_TABLE
	}
	if cnf.AlertLedger.Path == "" {
		cnf.AlertLedger.Path = DEFAULT_LEDGER_PATH
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.DataSource.Dns = strings.TrimSpace(cnf.DataSource.Dns)
	cnf.RawSource.Schema = strings.TrimSpace(cnf.RawSource.Schema)
	cnf.RawSource.Table = strings.TrimSpace(cnf.RawSource.Table)
	cnf.AlertLedger.Path = strings.TrimSpace(cnf.AlertLedger.Path)

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
