// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ItemCandidate holds the raw fields submitted for a new item, before
// validation. Empty text in the optional fields means "absent".
type ItemCandidate struct {
	Name        string       `json:"name" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Calorie     CalorieInput `json:"calorie"`
	Description string       `json:"description"`
	Image       string       `json:"image" validate:"omitempty,http_url"`
}

// CalorieInput is the calorie field as typed by the submitter.
// JSON payloads may carry it as a string, a number or null.
type CalorieInput string

// UnmarshalJSON accepts "89", 89 and null.
func (c *CalorieInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = CalorieInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("calorie must be a number or a string: %w", err)
	}
	*c = CalorieInput(n.String())
	return nil
}

// CalorieText formats an optional calorie value back into CalorieInput.
func CalorieText(v *float64) CalorieInput {
	if v == nil {
		return ""
	}
	return CalorieInput(strconv.FormatFloat(*v, 'f', -1, 64))
}
