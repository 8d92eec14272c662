// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scenario reads election scenarios from JSON or YAML files.

	s, err := scenario.Load("testdata/gram-panchayat.yaml")

The format follows the file extension (.json, .yaml, .yml). Decode reads
from any io.Reader when the format is known.

Validate checks the parts that the election itself treats as trusted
input: candidate IDs must be present and unique, and every region in the
tree must have a name.
*/
package scenario
