package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_DefaultsDescription(t *testing.T) {
	set := Compile([]Rule{{ID: "aws-key", Pattern: `AKIA[0-9A-Z]{16}`}}, nil)
	require.Len(t, set.Rules, 1)
	assert.Equal(t, "aws-key", set.Rules[0].Description)
}

func TestCompile_SkipsMalformedRule(t *testing.T) {
	set := Compile([]Rule{
		{ID: "bad", Pattern: `([unclosed`},
		{ID: "good", Pattern: `ghp_[0-9A-Za-z]{36}`},
	}, nil)

	require.Len(t, set.Rules, 1)
	assert.Equal(t, "good", set.Rules[0].ID)
	require.Len(t, set.Skipped, 1)
	assert.Equal(t, "bad", set.Skipped[0].ID)
	assert.Error(t, set.Skipped[0].Err)
}

func TestCompile_SkipsMalformedExclusion(t *testing.T) {
	set := Compile(nil, []string{`node_modules/`, `([`})
	assert.Len(t, set.Exclusions, 1)
	assert.Len(t, set.Skipped, 1)
}

func TestCompile_CaseInsensitiveMultiline(t *testing.T) {
	set := Compile([]Rule{{ID: "anchored", Pattern: `^secret=\w+$`}}, nil)
	require.Len(t, set.Rules, 1)

	content := "first line\nSECRET=abc123\nlast line"
	locs := set.Rules[0].FindMatches(content)
	require.Len(t, locs, 1)
	assert.Equal(t, "SECRET=abc123", content[locs[0][0]:locs[0][1]])
}

func TestMightMatch(t *testing.T) {
	set := Compile([]Rule{{ID: "kw", Pattern: `x+`, Keywords: []string{"AWS", "token"}}}, nil)
	require.Len(t, set.Rules, 1)
	r := set.Rules[0]

	// callers pass pre-lowered content
	assert.True(t, r.MightMatch("contains aws somewhere"))
	assert.True(t, r.MightMatch("a token= here"))
	assert.False(t, r.MightMatch("nothing relevant"))

	// no keywords means the gate is always open
	open := Compile([]Rule{{ID: "open", Pattern: `y+`}}, nil).Rules[0]
	assert.True(t, open.MightMatch("anything"))
}

func TestExcludedPath(t *testing.T) {
	set := Compile(nil, []string{`node_modules/`, `\.venv/`})

	assert.True(t, set.ExcludedPath("node_modules/pkg/index.js"))
	assert.True(t, set.ExcludedPath("app/.venv/lib/site.py"))
	assert.False(t, set.ExcludedPath("src/main.go"))
}

func TestDefaults_AllCompile(t *testing.T) {
	set := Compile(Defaults(), DefaultExclusions())
	assert.Empty(t, set.Skipped)
	assert.Equal(t, len(Defaults()), len(set.Rules))
	assert.Equal(t, len(DefaultExclusions()), len(set.Exclusions))
}
