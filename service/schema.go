package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// BuildRecordJSONSchema describes a consolidated record as a JSON Schema
// (draft 2020-12 subset). Series fields carry at most three values and every
// scalar is either a value or null.
func BuildRecordJSONSchema() map[string]any {
	series := func(limit int) map[string]any {
		s := map[string]any{"type": "array", "items": map[string]any{"type": "number"}}
		if limit > 0 {
			s["maxItems"] = limit
		}
		return s
	}

	company := object(map[string]any{
		"name":                nullable("string"),
		"registration_number": nullable("string"),
		"ceo":                 nullable("string"),
		"industry":            nullable("string"),
		"established_date":    nullable("string"),
		"address":             nullable("string"),
		"employee_count":      nullable("integer"),
		"phone":               nullable("string"),
	})

	financial := object(map[string]any{
		"revenue":           series(3),
		"operating_income":  series(3),
		"net_income":        series(3),
		"total_assets":      series(3),
		"total_liabilities": series(0),
		"equity":            series(0),
		"debt_ratio":        nullable("number"),
		"current_ratio":     nullable("number"),
		"quick_ratio":       nullable("number"),
		"roe":               nullable("number"),
		"roa":               nullable("number"),
	}, "revenue", "operating_income", "net_income", "total_assets")

	credit := object(map[string]any{
		"credit_rating":        nullable("string"),
		"rating_agency":        nullable("string"),
		"rating_date":          nullable("string"),
		"credit_limit":         nullable("number"),
		"default_history_flag": nullable("boolean"),
	})

	business := object(map[string]any{
		"main_products":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"certifications": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"export_ratio":   nullable("number"),
	})

	loan := object(map[string]any{
		"loans": map[string]any{
			"type": "array",
			"items": object(map[string]any{
				"institution": map[string]any{"type": "string", "minLength": 1},
				"loan_type":   map[string]any{"type": "string", "enum": []string{"working", "facility", "other"}},
				"amount":      map[string]any{"type": "number", "exclusiveMinimum": 0},
			}, "institution", "loan_type", "amount"),
		},
		"guarantees": map[string]any{
			"type": "array",
			"items": object(map[string]any{
				"institution": map[string]any{"type": "string", "minLength": 1},
				"amount":      map[string]any{"type": "number", "exclusiveMinimum": 0},
			}, "institution", "amount"),
		},
		"total_loan":      nullable("number"),
		"total_guarantee": nullable("number"),
		"loan_count":      map[string]any{"type": "integer", "minimum": 0},
	})

	collateral := object(map[string]any{
		"collaterals": map[string]any{
			"type": "array",
			"items": object(map[string]any{
				"type":   map[string]any{"type": "string", "enum": []string{"real_estate", "guarantee", "deposit"}},
				"amount": map[string]any{"type": "number"},
			}, "type", "amount"),
		},
		"total_collateral": nullable("number"),
		"collateral_count": map[string]any{"type": "integer", "minimum": 0},
	})

	completeness := object(map[string]any{
		"has_company_info":    map[string]any{"type": "boolean"},
		"has_financial_info":  map[string]any{"type": "boolean"},
		"has_credit_info":     map[string]any{"type": "boolean"},
		"has_loan_info":       map[string]any{"type": "boolean"},
		"has_collateral_info": map[string]any{"type": "boolean"},
	})

	return object(map[string]any{
		"company":      company,
		"financial":    financial,
		"credit":       credit,
		"business":     business,
		"loan":         loan,
		"collateral":   collateral,
		"completeness": completeness,
	}, "company", "financial", "credit", "business", "loan", "collateral", "completeness")
}

func object(props map[string]any, required ...string) map[string]any {
	o := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
	if len(required) > 0 {
		o["required"] = required
	}
	return o
}

func nullable(kind string) map[string]any {
	return map[string]any{"type": []string{kind, "null"}}
}

// RecordValidator checks consolidated records against BuildRecordJSONSchema.
type RecordValidator struct {
	schema *jsonschema.Schema
}

func NewRecordValidator() (*RecordValidator, error) {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &RecordValidator{schema: schema}, nil
}

// Validate returns the record's JSON encoding once it matches the schema.
func (v *RecordValidator) Validate(record dto.ConsolidatedRecord) ([]byte, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("record does not match schema: %w", err)
	}
	return data, nil
}
