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
package model

const (
	// CompanyIDLength is the only valid length for a company identifier.
	CompanyIDLength = 40

	// UnknownCompanyName is the placeholder for companies whose observed
	// names were all null.
	UnknownCompanyName = "Desconocido"
)

// Company is the canonical (id, name) pair after deduplication: exactly one
// name per 40-character company id.
type Company struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// CompanyCatalog indexes companies by the normalized form of their canonical
// name so misspelled or accent-variant names on charge rows can be matched
// back to an id. The catalog is built once per batch and read-only afterwards.
type CompanyCatalog struct {
	companies []Company
	byName    map[string]Company
}

// NewCompanyCatalog builds the normalized-name index. When two canonical
// names collapse to the same key the first one wins, keeping lookups
// deterministic. Names that normalize to the empty string are not indexed.
func NewCompanyCatalog(companies []Company) *CompanyCatalog {
	catalog := &CompanyCatalog{
		companies: companies,
		byName:    make(map[string]Company, len(companies)),
	}
	for _, company := range companies {
		key := NormalizeName(company.CompanyName)
		if key == "" {
			continue
		}
		if _, exists := catalog.byName[key]; !exists {
			catalog.byName[key] = company
		}
	}
	return catalog
}

// LookupByName returns the company whose canonical name normalizes to the
// given key. The key must already be normalized.
func (c *CompanyCatalog) LookupByName(normalized string) (Company, bool) {
	if normalized == "" {
		return Company{}, false
	}
	company, ok := c.byName[normalized]
	return company, ok
}

// Companies returns the catalog entries in their original order.
func (c *CompanyCatalog) Companies() []Company {
	return c.companies
}
