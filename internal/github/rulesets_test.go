package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRulesets(t *testing.T) {
	t.Parallel()

	rulesets := DefaultRulesets("main", "staging")
	require.Len(t, rulesets, 2)

	trunk := rulesets[0]
	require.Equal(t, "relgate: protect main", trunk.Name)
	require.Equal(t, "branch", trunk.Target)
	require.Equal(t, "active", trunk.Enforcement)
	require.Equal(t, []string{"refs/heads/main"}, trunk.Conditions.RefName.Include)

	types := make([]string, 0, len(trunk.Rules))
	for _, rule := range trunk.Rules {
		types = append(types, rule.Type)
	}
	require.ElementsMatch(t, []string{"deletion", "non_fast_forward", "pull_request"}, types)

	staging := rulesets[1]
	require.Equal(t, []string{"refs/heads/staging"}, staging.Conditions.RefName.Include)
}

func TestRulesetSerialization(t *testing.T) {
	t.Parallel()

	rulesets := DefaultRulesets("main", "staging")

	data, err := json.Marshal(rulesets[0])
	require.NoError(t, err)

	payload := string(data)
	require.Contains(t, payload, `"name":"relgate: protect main"`)
	require.Contains(t, payload, `"ref_name"`)
	require.Contains(t, payload, `"required_approving_review_count":1`)
	// ID must not leak into create payloads
	require.NotContains(t, payload, `"id"`)
}
