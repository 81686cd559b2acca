package github

import (
	"context"
	"fmt"
)

// Ruleset is a GitHub branch ruleset payload. Rulesets are configured, not
// evaluated, by relgate: GitHub enforces them server side.
type Ruleset struct {
	ID          int64              `json:"id,omitempty"`
	Name        string             `json:"name"`
	Target      string             `json:"target"`
	Enforcement string             `json:"enforcement"`
	Conditions  *RulesetConditions `json:"conditions,omitempty"`
	Rules       []RulesetRule      `json:"rules,omitempty"`
}

// RulesetConditions scopes a ruleset to a set of refs
type RulesetConditions struct {
	RefName RefNameCondition `json:"ref_name"`
}

// RefNameCondition holds the ref include/exclude patterns of a ruleset
type RefNameCondition struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// RulesetRule is a single rule within a ruleset
type RulesetRule struct {
	Type       string `json:"type"`
	Parameters any    `json:"parameters,omitempty"`
}

// PullRequestRuleParameters are the parameters of a pull_request rule
type PullRequestRuleParameters struct {
	RequiredApprovingReviewCount   int  `json:"required_approving_review_count"`
	DismissStaleReviewsOnPush      bool `json:"dismiss_stale_reviews_on_push"`
	RequireCodeOwnerReview         bool `json:"require_code_owner_review"`
	RequireLastPushApproval        bool `json:"require_last_push_approval"`
	RequiredReviewThreadResolution bool `json:"required_review_thread_resolution"`
}

// DefaultRulesets builds the rulesets that implement release branch
// isolation: trunk only moves through reviewed pull requests, staging only
// through pull requests, and neither can be deleted or force-pushed.
func DefaultRulesets(trunk, staging string) []*Ruleset {
	return []*Ruleset{
		{
			Name:        "relgate: protect " + trunk,
			Target:      "branch",
			Enforcement: "active",
			Conditions: &RulesetConditions{
				RefName: RefNameCondition{
					Include: []string{"refs/heads/" + trunk},
					Exclude: []string{},
				},
			},
			Rules: []RulesetRule{
				{Type: "deletion"},
				{Type: "non_fast_forward"},
				{
					Type: "pull_request",
					Parameters: PullRequestRuleParameters{
						RequiredApprovingReviewCount: 1,
						DismissStaleReviewsOnPush:    true,
					},
				},
			},
		},
		{
			Name:        "relgate: protect " + staging,
			Target:      "branch",
			Enforcement: "active",
			Conditions: &RulesetConditions{
				RefName: RefNameCondition{
					Include: []string{"refs/heads/" + staging},
					Exclude: []string{},
				},
			},
			Rules: []RulesetRule{
				{Type: "deletion"},
				{Type: "non_fast_forward"},
				{
					Type:       "pull_request",
					Parameters: PullRequestRuleParameters{},
				},
			},
		},
	}
}

// ListRulesets lists the repository's branch rulesets
func (c *RealClient) ListRulesets(ctx context.Context) ([]*Ruleset, error) {
	u := fmt.Sprintf("repos/%s/%s/rulesets", c.owner, c.repo)
	req, err := c.client.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}

	var rulesets []*Ruleset
	if _, err := c.client.Do(ctx, req, &rulesets); err != nil {
		return nil, fmt.Errorf("failed to list rulesets: %w", err)
	}
	return rulesets, nil
}

// CreateRuleset creates a new branch ruleset
func (c *RealClient) CreateRuleset(ctx context.Context, rs *Ruleset) error {
	u := fmt.Sprintf("repos/%s/%s/rulesets", c.owner, c.repo)
	req, err := c.client.NewRequest("POST", u, rs)
	if err != nil {
		return err
	}

	if _, err := c.client.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("failed to create ruleset %q: %w", rs.Name, err)
	}
	return nil
}

// UpdateRuleset replaces an existing branch ruleset
func (c *RealClient) UpdateRuleset(ctx context.Context, id int64, rs *Ruleset) error {
	u := fmt.Sprintf("repos/%s/%s/rulesets/%d", c.owner, c.repo, id)
	req, err := c.client.NewRequest("PUT", u, rs)
	if err != nil {
		return err
	}

	if _, err := c.client.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("failed to update ruleset %q: %w", rs.Name, err)
	}
	return nil
}
