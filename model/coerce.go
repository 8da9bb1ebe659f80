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

import (
	"database/sql"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayouts are tried in order after the YYYYMMDD special case.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// CoerceAmount parses a raw amount column into a decimal. Any parse failure
// yields a null decimal rather than an error.
func CoerceAmount(raw sql.NullString) decimal.NullDecimal {
	if !raw.Valid {
		return decimal.NullDecimal{}
	}
	s := strings.TrimSpace(raw.String)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// CoerceTimestamp parses a raw date column into an instant. Date columns in
// the source sometimes carry a float artifact like "20190121.0"; the ".0"
// suffix is stripped before parsing. An 8-digit value is read as YYYYMMDD,
// anything else goes through the layout ladder. Failures yield a null time.
func CoerceTimestamp(raw sql.NullString) sql.NullTime {
	if !raw.Valid {
		return sql.NullTime{}
	}
	s := strings.TrimSpace(raw.String)
	if s == "" {
		return sql.NullTime{}
	}

	s = strings.TrimSuffix(s, ".0")

	if len(s) == 8 && isDigits(s) {
		t, err := time.Parse("20060102", s)
		if err != nil {
			return sql.NullTime{}
		}
		return sql.NullTime{Time: t, Valid: true}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
