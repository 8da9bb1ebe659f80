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
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorenov/charges-etl/model"
)

func companyRow(companyID, companyName string) model.TypedRecord {
	return record("x", companyName, companyID, "1", "paid", "20200101", "")
}

func TestResolveCompaniesMajorityName(t *testing.T) {
	id := strings.Repeat("X", 40)
	records := []model.TypedRecord{
		companyRow(id, "Acme"),
		companyRow(id, "Acme"),
		companyRow(id, "Beta"),
	}

	companies := ResolveCompanies(records)
	require.Len(t, companies, 1)
	assert.Equal(t, model.Company{CompanyID: id, CompanyName: "Acme"}, companies[0])
}

func TestResolveCompaniesTieBreaksOnFirstSeen(t *testing.T) {
	id := strings.Repeat("X", 40)
	records := []model.TypedRecord{
		companyRow(id, "Beta"),
		companyRow(id, "Acme"),
		companyRow(id, "Acme"),
		companyRow(id, "Beta"),
	}

	companies := ResolveCompanies(records)
	require.Len(t, companies, 1)
	assert.Equal(t, "Beta", companies[0].CompanyName)
}

func TestResolveCompaniesAllNullNames(t *testing.T) {
	id := strings.Repeat("Z", 40)
	records := []model.TypedRecord{
		companyRow(id, ""),
		companyRow(id, ""),
	}

	companies := ResolveCompanies(records)
	require.Len(t, companies, 1)
	assert.Equal(t, model.UnknownCompanyName, companies[0].CompanyName)
}

func TestResolveCompaniesSkipsMalformedIDs(t *testing.T) {
	records := []model.TypedRecord{
		companyRow("short-id", "Acme"),
		companyRow("", "Beta"),
		companyRow(strings.Repeat("A", 41), "Gamma"),
	}

	assert.Empty(t, ResolveCompanies(records))
}

func TestResolveCompaniesUniqueIDs(t *testing.T) {
	faker := gofakeit.New(11)

	ids := make([]string, 10)
	for i := range ids {
		ids[i] = strings.Repeat(fmt.Sprintf("%d", i%10), 40)
	}

	var records []model.TypedRecord
	for i := 0; i < 500; i++ {
		records = append(records, companyRow(ids[faker.Number(0, 9)], faker.Company()))
	}

	companies := ResolveCompanies(records)
	seen := make(map[string]bool)
	for _, company := range companies {
		assert.False(t, seen[company.CompanyID], "duplicate company_id %s", company.CompanyID)
		seen[company.CompanyID] = true
	}
}
