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
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/dmorenov/charges-etl/internal/apierror"
	"github.com/dmorenov/charges-etl/model"
)

func TestUpsertCompanies_Success(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	companies := []model.Company{
		{CompanyID: strings.Repeat("a", 40), CompanyName: "Acme"},
		{CompanyID: strings.Repeat("b", 40), CompanyName: "Desconocido"},
	}

	mock.ExpectBegin()
	for _, company := range companies {
		mock.ExpectExec("INSERT INTO dbo.companies").
			WithArgs(company.CompanyID, company.CompanyName).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	err := ds.UpsertCompanies(context.TODO(), companies)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCompanies_RollsBackOnFailure(t *testing.T) {
	ds, mock, closeDB := testDatasource(t)
	defer closeDB()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO dbo.companies").
		WillReturnError(fmt.Errorf("deadlock detected"))
	mock.ExpectRollback()

	err := ds.UpsertCompanies(context.TODO(), []model.Company{{CompanyID: strings.Repeat("a", 40), CompanyName: "Acme"}})
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrInternalServer, err.(apierror.APIError).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
