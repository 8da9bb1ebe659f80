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
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/dmorenov/charges-etl/model"
)

func testDatasource(t *testing.T) (Datasource, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	ds := Datasource{Conn: db, RawSchema: "data_raw", RawTable: "charges_raw"}
	return ds, mock, func() { _ = db.Close() }
}

func TestEnsureRawTable(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	mock.ExpectExec(`CREATE SCHEMA IF NOT EXISTS "data_raw"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS "data_raw"."charges_raw"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := ds.EnsureRawTable(context.TODO())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyRawRecords_Success(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	records := []model.RawRecord{
		{
			ID:     sql.NullString{String: "c1", Valid: true},
			Amount: sql.NullString{String: "150.50", Valid: true},
			Status: sql.NullString{String: "paid", Valid: true},
		},
		{
			ID: sql.NullString{String: "c2", Valid: true},
		},
	}

	mock.ExpectBegin()
	mock.ExpectPrepare(`COPY "data_raw"."charges_raw"`)
	mock.ExpectExec(`COPY "data_raw"."charges_raw"`).
		WithArgs("c1", nil, nil, "150.50", "paid", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`COPY "data_raw"."charges_raw"`).
		WithArgs("c2", nil, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`COPY "data_raw"."charges_raw"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := ds.CopyRawRecords(context.TODO(), records)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCopyRawRecords_RollsBackOnFailure(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectPrepare(`COPY "data_raw"."charges_raw"`)
	mock.ExpectExec(`COPY "data_raw"."charges_raw"`).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	_, err := ds.CopyRawRecords(context.TODO(), []model.RawRecord{{}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRawRecords(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	rows := sqlmock.NewRows([]string{"id", "name", "company_id", "amount", "status", "created_at", "paid_at"}).
		AddRow("c1", "Cafe S.A.", nil, "150.50", "paid", "20200101", nil).
		AddRow(nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT "id", "name", "company_id", "amount", "status", "created_at", "paid_at" FROM "data_raw"."charges_raw"`).
		WillReturnRows(rows)

	records, err := ds.GetRawRecords(context.TODO())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "c1", records[0].ID.String)
	assert.Equal(t, "Cafe S.A.", records[0].CompanyName.String)
	assert.False(t, records[0].CompanyID.Valid)
	assert.False(t, records[1].ID.Valid)
}

func TestGetRawRecords_QueryError(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT`).WillReturnError(fmt.Errorf("relation does not exist"))

	_, err := ds.GetRawRecords(context.TODO())
	assert.Error(t, err)
}
