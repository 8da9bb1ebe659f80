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
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func rawValue(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestCoerceAmount(t *testing.T) {
	d := CoerceAmount(rawValue("150.50"))
	assert.True(t, d.Valid)
	assert.Equal(t, "150.5", d.Decimal.String())

	d = CoerceAmount(rawValue("-42"))
	assert.True(t, d.Valid)
	assert.Equal(t, "-42", d.Decimal.String())

	d = CoerceAmount(rawValue("1.2e3"))
	assert.True(t, d.Valid)
	assert.Equal(t, "1200", d.Decimal.String())

	assert.False(t, CoerceAmount(rawValue("$12.00")).Valid)
	assert.False(t, CoerceAmount(rawValue("abc")).Valid)
	assert.False(t, CoerceAmount(rawValue("")).Valid)
	assert.False(t, CoerceAmount(sql.NullString{}).Valid)
}

func TestCoerceTimestamp(t *testing.T) {
	expected := time.Date(2019, time.January, 21, 0, 0, 0, 0, time.UTC)

	ts := CoerceTimestamp(rawValue("20190121"))
	assert.True(t, ts.Valid)
	assert.Equal(t, expected, ts.Time)

	// Float artifact from the source extract.
	ts = CoerceTimestamp(rawValue("20190121.0"))
	assert.True(t, ts.Valid)
	assert.Equal(t, expected, ts.Time)

	ts = CoerceTimestamp(rawValue("2019-01-21"))
	assert.True(t, ts.Valid)
	assert.Equal(t, expected, ts.Time)

	ts = CoerceTimestamp(rawValue("2019-01-21 15:04:05"))
	assert.True(t, ts.Valid)
	assert.Equal(t, time.Date(2019, time.January, 21, 15, 4, 5, 0, time.UTC), ts.Time)

	assert.False(t, CoerceTimestamp(rawValue("not a date")).Valid)
	assert.False(t, CoerceTimestamp(rawValue("209901")).Valid)
	assert.False(t, CoerceTimestamp(rawValue("")).Valid)
	assert.False(t, CoerceTimestamp(sql.NullString{}).Valid)
}

// Coercion must be total: any string yields a value or a null, never a panic.
func TestCoercionTotality(t *testing.T) {
	faker := gofakeit.New(7)

	assert.NotPanics(t, func() {
		for i := 0; i < 500; i++ {
			raw := rawValue(faker.LetterN(uint(faker.Number(0, 30))))
			CoerceAmount(raw)
			CoerceTimestamp(raw)

			numeric := rawValue(faker.DigitN(uint(faker.Number(1, 20))))
			CoerceAmount(numeric)
			CoerceTimestamp(numeric)
		}
	})
}
