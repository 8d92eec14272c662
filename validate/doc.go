// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate builds voter validation functions from declarative rules.

# Rules

	rules := validate.Rules{
		MinAge:         18,
		RequiredFields: []string{"id", "name", "age"},
	}
	check := validate.NewVoterValidator(rules)

# Checks

The returned function inspects a Record and stops at the first failure:

  - nil record: "Invalid voter"
  - missing or nil required field, in order: "Missing <field>"
  - numeric age below MinAge: "Underage"

Anything else is valid. The function keeps its own copy of the rules and
can be called any number of times.
*/
package validate
