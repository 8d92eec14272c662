// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/region"
	"github.com/danielhkuo/panchayat/validate"
)

var ErrMultipleRootRegions = errors.New("region table has more than one root")

// LoadScenario reads a complete scenario from the database
func LoadScenario(ctx context.Context, db *sql.DB) (models.Scenario, error) {
	var s models.Scenario
	var err error

	if s.Name, err = getScenarioName(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get scenario name")
	}
	if s.Candidates, err = getCandidates(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get candidates")
	}
	if s.Voters, err = getVoters(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get voters")
	}
	if s.Ballots, err = getBallots(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get ballots")
	}
	if s.Rules, err = getRules(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get validation rules")
	}
	if s.Regions, err = getRegions(ctx, db); err != nil {
		return models.Scenario{}, errors.Wrap(err, "failed to get regions")
	}

	return s, nil
}

func getScenarioName(ctx context.Context, db *sql.DB) (string, error) {
	var name string
	err := db.QueryRowContext(ctx, `SELECT name FROM scenario LIMIT 1`).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return name, errors.WithStack(err)
}

func getCandidates(ctx context.Context, db *sql.DB) ([]election.Candidate, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, party FROM candidate ORDER BY position, id
	`)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var candidates []election.Candidate
	for rows.Next() {
		var c election.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party); err != nil {
			return nil, errors.WithStack(err)
		}
		candidates = append(candidates, c)
	}

	return candidates, errors.WithStack(rows.Err())
}

// getVoters maps NULL columns to absent record fields
func getVoters(ctx context.Context, db *sql.DB) ([]validate.Record, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, age FROM voter ORDER BY seq
	`)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var voters []validate.Record
	for rows.Next() {
		var id, name sql.NullString
		var age sql.NullFloat64
		if err := rows.Scan(&id, &name, &age); err != nil {
			return nil, errors.WithStack(err)
		}

		rec := validate.Record{}
		if id.Valid {
			rec["id"] = id.String
		}
		if name.Valid {
			rec["name"] = name.String
		}
		if age.Valid {
			rec["age"] = age.Float64
		}
		voters = append(voters, rec)
	}

	return voters, errors.WithStack(rows.Err())
}

func getBallots(ctx context.Context, db *sql.DB) ([]models.Ballot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT voter_id, candidate_id FROM ballot ORDER BY seq
	`)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	var ballots []models.Ballot
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.VoterID, &b.CandidateID); err != nil {
			return nil, errors.WithStack(err)
		}
		ballots = append(ballots, b)
	}

	return ballots, errors.WithStack(rows.Err())
}

// getRules returns nil when no rule row exists
func getRules(ctx context.Context, db *sql.DB) (*validate.Rules, error) {
	var minAge float64
	var fields string
	err := db.QueryRowContext(ctx, `
		SELECT min_age, required_fields FROM validation_rule LIMIT 1
	`).Scan(&minAge, &fields)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rules := &validate.Rules{MinAge: minAge}
	for _, field := range strings.Split(fields, ",") {
		if field = strings.TrimSpace(field); field != "" {
			rules.RequiredFields = append(rules.RequiredFields, field)
		}
	}
	return rules, nil
}

// getRegions rebuilds the region tree from its adjacency list.
// Rows that cannot be reached from the root are ignored.
func getRegions(ctx context.Context, db *sql.DB) (*region.Region, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, parent_id, name, votes FROM region ORDER BY position, id
	`)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer rows.Close()

	type regionRow struct {
		id     int64
		parent sql.NullInt64
		node   *region.Region
	}

	var all []regionRow
	byID := make(map[int64]*region.Region)
	for rows.Next() {
		var r regionRow
		r.node = &region.Region{}
		if err := rows.Scan(&r.id, &r.parent, &r.node.Name, &r.node.Votes); err != nil {
			return nil, errors.WithStack(err)
		}
		all = append(all, r)
		byID[r.id] = r.node
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var root *region.Region
	for _, r := range all {
		if !r.parent.Valid {
			if root != nil {
				return nil, ErrMultipleRootRegions
			}
			root = r.node
			continue
		}
		if parent, ok := byID[r.parent.Int64]; ok {
			parent.SubRegions = append(parent.SubRegions, r.node)
		}
	}
	return root, nil
}
