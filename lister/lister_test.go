package lister

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/soclist/filter"
)

// staticSource is a fixed-name Source for tests.
type staticSource []string

func (s staticSource) Names() []string {
	return append([]string(nil), s...)
}

func defaultPredicates(t *testing.T) filter.Predicates {
	t.Helper()
	preds, err := filter.NewPredicates("canoe", "660", "gen")
	require.NoError(t, err)
	return preds
}

func TestListOnePerLine(t *testing.T) {
	l := New(staticSource{"SM8350", "SC7280", "CanoeLake", "Gen3"}, nil)

	var buf bytes.Buffer
	require.NoError(t, l.List(&buf))

	assert.Equal(t, "SM8350\nSC7280\nCanoeLake\nGen3\n", buf.String())
}

func TestListCandidatesLabeledLine(t *testing.T) {
	l := New(staticSource{"SM8350", "SC7280", "CanoeLake", "Gen3"}, nil)

	var buf bytes.Buffer
	require.NoError(t, l.ListCandidates(&buf, defaultPredicates(t)))

	assert.Equal(t, "candidates: [CanoeLake, Gen3]\n", buf.String())
}

func TestListCandidatesEmpty(t *testing.T) {
	l := New(staticSource{"SM8350", "SC7280"}, nil)

	var buf bytes.Buffer
	require.NoError(t, l.ListCandidates(&buf, defaultPredicates(t)))

	assert.Equal(t, "candidates: []\n", buf.String())
}

func TestRunSequence(t *testing.T) {
	l := New(staticSource{"SDM660", "SM8350"}, nil)

	var buf bytes.Buffer
	require.NoError(t, l.Run(&buf, defaultPredicates(t)))

	assert.Equal(t, "SDM660\nSM8350\ncandidates: [SDM660]\n", buf.String())
}

func TestRunEmptySource(t *testing.T) {
	l := New(staticSource{}, nil)

	var buf bytes.Buffer
	require.NoError(t, l.Run(&buf, defaultPredicates(t)))

	assert.Equal(t, "candidates: []\n", buf.String())
}
