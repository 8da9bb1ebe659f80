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
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/dmorenov/charges-etl/model"
)

// ValidationConfig is the fixed validation vocabulary. It is part of the
// pipeline's contract with the charge store and must not drift: the status
// set and the amount bound mirror the dbo.charges column definitions.
type ValidationConfig struct {
	ValidStatuses map[string]struct{}
	MaxAmount     decimal.Decimal
}

// DefaultValidationConfig returns the contract values: the eight known
// charge statuses and the largest amount a DECIMAL(16,2) column can hold.
func DefaultValidationConfig() ValidationConfig {
	statuses := []string{
		"expired", "paid", "voided", "pending_payment",
		"partially_refunded", "pre_authorized", "charged_back", "refunded",
	}
	valid := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		valid[s] = struct{}{}
	}
	return ValidationConfig{
		ValidStatuses: valid,
		MaxAmount:     decimal.RequireFromString("99999999999999.99"),
	}
}

// ChargeValidator applies the validation rules to typed records, in order,
// and partitions them into charges and alerts. It never touches storage.
type ChargeValidator struct {
	cnf ValidationConfig
}

func NewChargeValidator(cnf ValidationConfig) *ChargeValidator {
	return &ChargeValidator{cnf: cnf}
}

// Validate runs every record through the rule sequence. A record is alerted
// at most once, with the reason of the first rule it fails; survivors become
// charges. Every input record ends up in exactly one of the two outputs.
func (v *ChargeValidator) Validate(records []model.TypedRecord, catalog *model.CompanyCatalog) ([]model.Charge, []model.Alert) {
	charges := make([]model.Charge, 0, len(records))
	alerts := make([]model.Alert, 0)

	for _, r := range records {
		if reason, ok := v.check(&r, catalog); !ok {
			alerts = append(alerts, model.Alert{Record: r, Reason: reason})
			continue
		}
		charges = append(charges, toCharge(r))
	}
	return charges, alerts
}

// check applies the rules in their declared order and reports the first
// failure. The company-id rule may repair the record in place; the repaired
// id is kept even if a later rule rejects the record, so the alert shows
// the record as it was when it failed.
func (v *ChargeValidator) check(r *model.TypedRecord, catalog *model.CompanyCatalog) (string, bool) {
	// Rule 1: a charge without an id cannot be keyed.
	if !r.ID.Valid {
		return "ID de transacción nulo", false
	}

	// Rule 2: accept a well-formed company id as-is; otherwise try to
	// recover it through the normalized company name.
	if !r.CompanyID.Valid || len(r.CompanyID.String) != model.CompanyIDLength {
		match, ok := v.lookupByName(r, catalog)
		if !ok {
			if !r.CompanyID.Valid {
				return "company_id inválido y nombre no encontrado en catálogo", false
			}
			return "company_id inválido (longitud ≠ 40)", false
		}
		r.CompanyID = sql.NullString{String: match.CompanyID, Valid: true}
	}

	// Rule 3: amount must exist and fit in DECIMAL(16,2).
	if !r.Amount.Valid {
		return "amount es nulo o NaN", false
	}
	if r.Amount.Decimal.Abs().GreaterThan(v.cnf.MaxAmount) {
		sign := "positivo"
		if r.Amount.Decimal.Sign() < 0 {
			sign = "negativo"
		}
		return fmt.Sprintf("amount excede DECIMAL(16,2) (%s: %s)", sign, r.Amount.Decimal.StringFixed(2)), false
	}

	// Rule 4: status must belong to the fixed vocabulary.
	status := ""
	if r.Status.Valid {
		status = r.Status.String
	}
	if _, ok := v.cnf.ValidStatuses[status]; !ok {
		return fmt.Sprintf("status inválido o desconocido: '%s'", status), false
	}

	// Rule 5: completeness. created_at is the only field not covered by the
	// rules above; anything else failing here means the rule set and this
	// check have drifted apart, which is worth shouting about.
	if !r.ID.Valid || !r.CompanyID.Valid || !r.Amount.Valid || !r.Status.Valid {
		logrus.Errorf("validation drift: record %s incomplete after passing all rules", r.ID.String)
		return "registro incompleto tras validación", false
	}
	if !r.CreatedAt.Valid {
		return "created_at es nulo", false
	}

	return "", true
}

// lookupByName resolves a record's company through the catalog using its
// normalized name. On a miss it logs the closest catalog name as a hint for
// whoever curates the data; the hint never repairs anything.
func (v *ChargeValidator) lookupByName(r *model.TypedRecord, catalog *model.CompanyCatalog) (model.Company, bool) {
	if !r.CompanyName.Valid {
		return model.Company{}, false
	}
	key := model.NormalizeName(r.CompanyName.String)
	match, ok := catalog.LookupByName(key)
	if ok {
		return match, true
	}

	if closest := closestCompanyName(key, catalog); closest != "" {
		logrus.Warnf("empresa '%s' sin coincidencia exacta en catálogo; la más cercana es '%s'", r.CompanyName.String, closest)
	}
	return model.Company{}, false
}

// closestCompanyName returns the catalog name nearest to the key by edit
// distance, when the distance is small relative to the name length.
func closestCompanyName(key string, catalog *model.CompanyCatalog) string {
	if key == "" {
		return ""
	}

	best := ""
	bestDistance := -1
	for _, company := range catalog.Companies() {
		candidate := model.NormalizeName(company.CompanyName)
		if candidate == "" {
			continue
		}
		distance := levenshtein.DistanceForStrings([]rune(key), []rune(candidate), levenshtein.DefaultOptions)
		if bestDistance == -1 || distance < bestDistance {
			best, bestDistance = company.CompanyName, distance
		}
	}

	maxLength := len([]rune(key))
	if l := len([]rune(best)); l > maxLength {
		maxLength = l
	}
	// More than a third of the characters differing is not a near miss.
	if bestDistance == -1 || bestDistance*3 > maxLength {
		return ""
	}
	return best
}

func toCharge(r model.TypedRecord) model.Charge {
	charge := model.Charge{
		ChargeID:  r.ID.String,
		CompanyID: r.CompanyID.String,
		Amount:    r.Amount.Decimal,
		Status:    r.Status.String,
		CreatedAt: r.CreatedAt.Time,
	}
	if r.UpdatedAt.Valid {
		t := r.UpdatedAt.Time
		charge.UpdatedAt = &t
	}
	return charge
}
