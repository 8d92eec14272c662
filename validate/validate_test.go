// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVoterValidator(t *testing.T) {
	check := NewVoterValidator(Rules{MinAge: 18, RequiredFields: []string{"id", "age"}})

	tests := []struct {
		name     string
		voter    Record
		expected Verdict
	}{
		{name: "nil voter", voter: nil, expected: Verdict{Reason: "Invalid voter"}},
		{name: "missing age", voter: Record{"id": "V1"}, expected: Verdict{Reason: "Missing age"}},
		{name: "nil age", voter: Record{"id": "V1", "age": nil}, expected: Verdict{Reason: "Missing age"}},
		{name: "first missing field wins", voter: Record{}, expected: Verdict{Reason: "Missing id"}},
		{name: "underage", voter: Record{"id": "V1", "age": 16}, expected: Verdict{Reason: "Underage"}},
		{name: "exactly min age", voter: Record{"id": "V1", "age": 18}, expected: Verdict{Valid: true}},
		{name: "adult", voter: Record{"id": "V1", "age": 20}, expected: Verdict{Valid: true}},
		{name: "float age", voter: Record{"id": "V1", "age": 17.5}, expected: Verdict{Reason: "Underage"}},
		{name: "numeric string age", voter: Record{"id": "V1", "age": "16"}, expected: Verdict{Reason: "Underage"}},
		{name: "non numeric age", voter: Record{"id": "V1", "age": "unknown"}, expected: Verdict{Valid: true}},
		{name: "empty string id is present", voter: Record{"id": "", "age": 30}, expected: Verdict{Valid: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, check(tc.voter))
		})
	}
}

func TestValidatorAgeNotRequired(t *testing.T) {
	assert := assert.New(t)

	check := NewVoterValidator(Rules{MinAge: 21, RequiredFields: []string{"id"}})

	// age is only compared when it is present
	assert.Equal(Verdict{Valid: true}, check(Record{"id": "V1"}))
	assert.Equal(Verdict{Reason: "Underage"}, check(Record{"id": "V1", "age": 20}))

	tests := []struct {
		name     string
		age      any
		expected Verdict
	}{
		{name: "null age", age: nil, expected: Verdict{Reason: "Underage"}},
		{name: "empty string", age: "", expected: Verdict{Reason: "Underage"}},
		{name: "blank string", age: "  ", expected: Verdict{Reason: "Underage"}},
		{name: "true", age: true, expected: Verdict{Reason: "Underage"}},
		{name: "false", age: false, expected: Verdict{Reason: "Underage"}},
		{name: "numeric string", age: "20", expected: Verdict{Reason: "Underage"}},
		{name: "adult string", age: "30", expected: Verdict{Valid: true}},
		{name: "minus infinity word", age: "-Infinity", expected: Verdict{Reason: "Underage"}},
		{name: "go inf spelling", age: "-inf", expected: Verdict{Valid: true}},
		{name: "not a number", age: "abc", expected: Verdict{Valid: true}},
		{name: "list", age: []any{1}, expected: Verdict{Valid: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := check(Record{"id": "V1", "age": tc.age})
			assert.Equal(tc.expected, got)
		})
	}
}

func TestValidatorKeepsOwnRules(t *testing.T) {
	fields := []string{"id", "name"}
	rules := Rules{MinAge: 18, RequiredFields: fields}
	check := NewVoterValidator(rules)

	fields[1] = "age"
	rules.MinAge = 99

	assert.Equal(t, Verdict{Reason: "Missing name"}, check(Record{"id": "V1", "age": 40}))
	assert.Equal(t, Verdict{Valid: true}, check(Record{"id": "V1", "name": "Mohan", "age": 40}))
}

func TestMissingField(t *testing.T) {
	field, ok := MissingField("Missing age")
	assert.True(t, ok)
	assert.Equal(t, "age", field)

	_, ok = MissingField("Underage")
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in       any
		expected float64
		ok       bool
	}{
		{in: 25, expected: 25, ok: true},
		{in: int64(30), expected: 30, ok: true},
		{in: 19.5, expected: 19.5, ok: true},
		{in: json.Number("42"), expected: 42, ok: true},
		{in: " 17 ", expected: 17, ok: true},
		{in: "abc", ok: false},
		{in: "-inf", ok: false},
		{in: "Infinity", ok: false},
		{in: "1e2", expected: 100, ok: true},
		{in: "", ok: false},
		{in: nil, ok: false},
		{in: true, ok: false},
	}

	for _, tc := range tests {
		got, ok := Number(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		if tc.ok {
			assert.Equal(t, tc.expected, got, "input %v", tc.in)
		}
	}
}
