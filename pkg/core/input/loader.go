// Package input loads analysis inputs from disk. Files are parsed as Hjson
// so analysts can keep comments and loose punctuation next to the numbers;
// plain JSON is a subset and loads unchanged.
package input

import (
	"encoding/json"
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"

	"dcf_valuation/pkg/core/dcf"
)

// Analysis bundles the two inputs a valuation run needs.
type Analysis struct {
	Company     dcf.CompanyData          `json:"company"`
	Assumptions dcf.ValuationAssumptions `json:"assumptions"`
}

// LoadAnalysis reads and parses an analysis file.
func LoadAnalysis(path string) (*Analysis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	return ParseAnalysis(raw)
}

// ParseAnalysis decodes Hjson input. Decoding goes through an intermediate
// map and standard JSON so struct tags stay the single source of field names.
func ParseAnalysis(raw []byte) (*Analysis, error) {
	var node map[string]interface{}
	if err := hjson.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("parsing analysis input: %w", err)
	}

	jsonBytes, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("normalizing analysis input: %w", err)
	}

	var a Analysis
	if err := json.Unmarshal(jsonBytes, &a); err != nil {
		return nil, fmt.Errorf("decoding analysis input: %w", err)
	}
	return &a, nil
}

// Validate runs both core validators and returns soft warnings alongside any
// hard error.
func (a *Analysis) Validate() ([]string, error) {
	if err := dcf.ValidateCompany(a.Company); err != nil {
		return nil, err
	}
	v := dcf.Validate(a.Assumptions)
	if !v.IsValid() {
		return v.Warnings, fmt.Errorf("%w: %v", dcf.ErrInvalidAssumptions, v.Errors)
	}
	return v.Warnings, nil
}
