// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
)

// Supported formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnknownFormat      = errors.New("unknown scenario format")
	ErrNoCandidates       = errors.New("scenario has no candidates")
	ErrEmptyCandidateID   = errors.New("candidate id is empty")
	ErrDuplicateCandidate = errors.New("duplicate candidate id")
	ErrUnnamedRegion      = errors.New("region has no name")
)

// FormatFromPath picks the decoder for a file by its extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "file %q", path)
	}
}

// Load reads and validates the scenario stored at path
func Load(path string) (models.Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.Scenario{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.Scenario{}, errors.WithStack(err)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return models.Scenario{}, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	if err := Validate(s); err != nil {
		return models.Scenario{}, errors.Wrapf(err, "invalid scenario %s", path)
	}
	return s, nil
}

// Decode parses a scenario without validating it
func Decode(r io.Reader, format string) (models.Scenario, error) {
	var s models.Scenario
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return models.Scenario{}, errors.Wrap(err, "failed to decode JSON")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
			return models.Scenario{}, errors.Wrap(err, "failed to decode YAML")
		}
	default:
		return models.Scenario{}, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
	return s, nil
}

// Validate checks candidates and regions of a decoded scenario
func Validate(s models.Scenario) error {
	if len(s.Candidates) == 0 {
		return ErrNoCandidates
	}

	seen := make(map[string]bool, len(s.Candidates))
	for i, c := range s.Candidates {
		if c.ID == "" {
			return errors.Wrapf(ErrEmptyCandidateID, "candidate #%d", i+1)
		}
		if seen[c.ID] {
			return errors.Wrapf(ErrDuplicateCandidate, "candidate %q", c.ID)
		}
		seen[c.ID] = true
	}

	return validateRegion(s.Regions)
}

func validateRegion(r *region.Region) error {
	if r == nil {
		return nil
	}
	if r.Name == "" {
		return ErrUnnamedRegion
	}
	for _, sub := range r.SubRegions {
		if err := validateRegion(sub); err != nil {
			return errors.WithMessagef(err, "under %q", r.Name)
		}
	}
	return nil
}
