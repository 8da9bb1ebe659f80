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
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"accents and punctuation", "Café, S.A.", "cafe sa"},
		{"plain", "cafe sa", "cafe sa"},
		{"mixed case", "ACME Corp", "acme corp"},
		{"whitespace collapse", "  Acme \t  Corp  ", "acme corp"},
		{"digits kept", "Grupo 21", "grupo 21"},
		{"tilde", "Montaña S.A. de C.V.", "montana sa de cv"},
		{"only punctuation", "¡¿!?", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"Café, S.A.", "ACME  Corp.", "Peña & Hijos", ""}

	faker := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		inputs = append(inputs, faker.Company())
		inputs = append(inputs, faker.Sentence(5))
	}

	for _, input := range inputs {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once), "input %q", input)
	}
}

func TestNormalizeNameMatchesVariants(t *testing.T) {
	// Accent and punctuation variants of the same name must share a key.
	assert.Equal(t, NormalizeName("CAFÉ, S.A."), NormalizeName("Cafe S.A."))
	assert.Equal(t, NormalizeName("Cafe S.A."), NormalizeName("cafe sa"))
}
