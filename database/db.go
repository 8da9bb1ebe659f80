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
package database

import (
	"database/sql"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq" // Postgres driver
	"github.com/sirupsen/logrus"

	"github.com/dmorenov/charges-etl/config"
)

// Declare a package-level variable to hold the singleton instance.
var instance *Datasource
var once sync.Once

// Datasource wraps the Postgres connection plus the location of the raw
// staging table, which comes from configuration.
type Datasource struct {
	Conn      *sql.DB
	RawSchema string
	RawTable  string
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	return GetDBConnection(configuration)
}

// GetDBConnection ensures a single database connection instance.
func GetDBConnection(configuration *config.Configuration) (*Datasource, error) {
	var err error
	once.Do(func() {
		con, errConn := ConnectDB(configuration.DataSource.Dns)
		if errConn != nil {
			err = errConn
			return
		}
		instance = &Datasource{
			Conn:      con,
			RawSchema: configuration.RawSource.Schema,
			RawTable:  configuration.RawSource.Table,
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// ConnectDB establishes a database connection with pooling. The initial ping
// is retried with exponential backoff; once the pipeline is running there
// are no retries, a storage failure aborts the batch.
func ConnectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
	err = backoff.Retry(db.Ping, policy)
	if err != nil {
		logrus.Errorf("database connection error: %v", err)
		return nil, err
	}

	logrus.Info("database connection established")
	return db, nil
}
