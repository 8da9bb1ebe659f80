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

import "github.com/dmorenov/charges-etl/model"

// ResolveCompanies collapses raw charge rows into one canonical company per
// company id. Rows whose id is not exactly 40 characters contribute nothing
// here; they are judged later, during charge validation. Within a group the
// canonical name is the most frequently observed non-null name, ties broken
// by first-encountered order, and a group with only null names gets the
// "Desconocido" placeholder. Output order follows first appearance of each
// id, so repeated runs over the same data produce the same sequence.
func ResolveCompanies(records []model.TypedRecord) []model.Company {
	type candidate struct {
		count int
		seen  int
	}

	idOrder := make([]string, 0)
	groups := make(map[string]map[string]*candidate)
	seq := 0

	for _, r := range records {
		if !r.CompanyID.Valid || len(r.CompanyID.String) != model.CompanyIDLength {
			continue
		}
		id := r.CompanyID.String
		names, ok := groups[id]
		if !ok {
			names = make(map[string]*candidate)
			groups[id] = names
			idOrder = append(idOrder, id)
		}
		if !r.CompanyName.Valid {
			continue
		}
		c, ok := names[r.CompanyName.String]
		if !ok {
			c = &candidate{seen: seq}
			names[r.CompanyName.String] = c
		}
		seq++
		c.count++
	}

	companies := make([]model.Company, 0, len(idOrder))
	for _, id := range idOrder {
		best := ""
		bestCount := 0
		bestSeen := 0
		for name, c := range groups[id] {
			if c.count > bestCount || (c.count == bestCount && c.seen < bestSeen) {
				best, bestCount, bestSeen = name, c.count, c.seen
			}
		}
		if bestCount == 0 {
			best = model.UnknownCompanyName
		}
		companies = append(companies, model.Company{CompanyID: id, CompanyName: best})
	}
	return companies
}
