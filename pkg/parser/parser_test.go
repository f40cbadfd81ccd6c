package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const banner = `+----------------------------------------------------------------------+
                            RPM Repositories
+----------------------------------------------------------------------+`

const twoRepos = banner + `

Id:                  repo1
Display Name:        Repo One
Description:         None
Content Unit Counts:
Notes:
Importers:
  Config:
    Feed:              http://example.com/feed
  Id:                    yum_importer
  Scheduled Syncs:       2012-09-18T14:00:00Z/P1D, 2012-09-19T02:00:00Z/PT12H
Distributors:
  Config:
    Serve Http:   True
    Serve Https:  False
  Id:                   yum_distributor

Id:                  repo2
Display Name:        Repo Two
Description:         Second
Notes:
  owner:  ops
  tier:   gold

`

func TestParse_OneBlockPerEntity(t *testing.T) {
	blocks := Parse(twoRepos)
	require.Len(t, blocks, 2)

	assert.Equal(t, "repo1", blocks[0]["Id"])
	assert.Equal(t, "repo2", blocks[1]["Id"])
}

func TestParse_DiscardsHeaderAndTrailingArtifacts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty input", input: "", want: 0},
		{name: "banner only", input: banner + "\n", want: 0},
		{name: "banner and blank lines", input: banner + "\n\n\n\n", want: 0},
		{name: "single entity", input: banner + "\n\nId: a1\n", want: 1},
		{name: "trailing newlines", input: banner + "\n\nId: a1\n\nId: b2\n\n\n\n", want: 2},
		{name: "extra blank line between entities", input: banner + "\n\nId: a1\n\n\nId: b2\n", want: 2},
		{name: "crlf line endings", input: strings.ReplaceAll(banner+"\n\nId: a1\n\nId: b2\n", "\n", "\r\n"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input)
			assert.Len(t, blocks, tt.want)
			for _, b := range blocks {
				assert.NotNil(t, b)
			}
		})
	}
}

func TestParse_NestedBlocks(t *testing.T) {
	blocks := Parse(twoRepos)
	require.Len(t, blocks, 2)
	repo := blocks[0]

	importers := repo.Block("Importers")
	require.NotNil(t, importers)
	feed, ok := importers.Block("Config").String("Feed")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/feed", feed)

	syncs, ok := importers.String("Scheduled Syncs")
	require.True(t, ok)
	assert.Equal(t, "2012-09-18T14:00:00Z/P1D, 2012-09-19T02:00:00Z/PT12H", syncs)

	config := repo.Block("Distributors").Block("Config")
	assert.Equal(t, Block{"Serve Http": "True", "Serve Https": "False"}, config)

	notes := blocks[1].Block("Notes")
	assert.Equal(t, map[string]string{"owner": "ops", "tier": "gold"}, notes.StringMap())
}

func TestParse_EmptyValueWithoutChildrenIsNoData(t *testing.T) {
	blocks := Parse(twoRepos)
	repo := blocks[0]

	assert.True(t, repo.Has("Notes"))
	assert.Nil(t, repo.Block("Notes"))
	_, isString := repo.String("Notes")
	assert.False(t, isString)

	assert.True(t, repo.Has("Content Unit Counts"))
	assert.False(t, repo.Has("Relative URL"))
}

func TestParseBlock_ContinuationLines(t *testing.T) {
	input := strings.Join([]string{
		"Id:           repo1",
		"Description:  A very long description that",
		"              wraps onto a second line",
		"              and a third",
		"Display Name: Repo One",
	}, "\n")

	b := ParseBlock(input)
	assert.Equal(t, "A very long description thatwraps onto a second lineand a third", b["Description"])
	assert.Equal(t, "Repo One", b["Display Name"])
}

func TestParseBlock_MisalignedLineIsNotContinuation(t *testing.T) {
	input := strings.Join([]string{
		"Description:  first part",
		"             one column short",
		"Id:           repo1",
	}, "\n")

	b := ParseBlock(input)
	assert.Equal(t, Block{"Description": "first part"}, b)
}

func TestParseBlock_NestedContinuation(t *testing.T) {
	input := strings.Join([]string{
		"Importers:",
		"  Config:",
		"    Queries:  name~^stdlib$,",
		"              author:puppetlabs",
		"  Id:         puppet_importer",
	}, "\n")

	b := ParseBlock(input)
	queries, ok := b.Block("Importers").Block("Config").String("Queries")
	require.True(t, ok)
	assert.Equal(t, "name~^stdlib$,author:puppetlabs", queries)
	assert.Equal(t, "puppet_importer", b.Block("Importers")["Id"])
}

func TestParseBlock_UnexpectedLineStopsTheBlock(t *testing.T) {
	input := strings.Join([]string{
		"Id:         repo1",
		"this line has no colon",
		"Display Name: never reached",
	}, "\n")

	b := ParseBlock(input)
	assert.Equal(t, Block{"Id": "repo1"}, b)
}

func TestParseBlock_DeeperIndentThanExpectedEndsNesting(t *testing.T) {
	input := strings.Join([]string{
		"Distributors:",
		"    Config: skipped two levels",
		"Id: repo1",
	}, "\n")

	b := ParseBlock(input)
	assert.True(t, b.Has("Distributors"))
	assert.Nil(t, b.Block("Distributors"))
	_, ok := b.String("Id")
	assert.False(t, ok, "parsing stops at the line it could not place")
}

func TestParseBlock_KeyEndsAtFirstColon(t *testing.T) {
	b := ParseBlock("Feed:   http://example.com:8080/repo")
	assert.Equal(t, "http://example.com:8080/repo", b["Feed"])
}

func TestParseBlock_SingleCharacterKeyDoesNotMatch(t *testing.T) {
	assert.Nil(t, ParseBlock("a: 1"))
	assert.Equal(t, Block{"ab": "1"}, ParseBlock("ab: 1"))
}

func TestParseBlock_NoData(t *testing.T) {
	assert.Nil(t, ParseBlock(""))
	assert.Nil(t, ParseBlock("   indented: first line"))
}

func TestParse_LeadingIndentedBlockIsNil(t *testing.T) {
	blocks := Parse(banner + "\n\n  Id: orphan\n\nId: repo1\n")
	require.Len(t, blocks, 2)
	assert.Nil(t, blocks[0])
	assert.Equal(t, "repo1", blocks[1]["Id"])
}

func TestServeFlagsAndEmptyRelativeURL(t *testing.T) {
	input := banner + "\n\n" + strings.Join([]string{
		"Id:            repo1",
		"Relative URL:  ",
		"Distributors:  ",
		"  Config:      ",
		"    Serve Http:  False",
	}, "\n") + "\n"

	blocks := Parse(input)
	require.Len(t, blocks, 1)
	repo := blocks[0]

	assert.True(t, repo.Has("Relative URL"))
	assert.Nil(t, repo.Block("Relative URL"))
	serveHTTP, _ := repo.Block("Distributors").Block("Config").String("Serve Http")
	assert.Equal(t, "False", serveHTTP)
}

func TestScheduleIDs(t *testing.T) {
	input := `+----------------------------------------------------------------------+
                              Schedules
+----------------------------------------------------------------------+

Id:                   5059c8a5ab2d1d0b42000002
Schedule:             2012-09-18T14:00:00Z/P1D
Enabled:              True

Id:   5059c8a5ab2d1d0b42000003
Schedule:             0 2 * * *
`
	assert.Equal(t, []string{"5059c8a5ab2d1d0b42000002", "5059c8a5ab2d1d0b42000003"}, ScheduleIDs(input))
	assert.Empty(t, ScheduleIDs("There are no schedules defined for this operation."))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "   ", want: []string{}},
		{in: "a", want: []string{"a"}},
		{in: "a, b ,c", want: []string{"a", "b", "c"}},
		{in: "a,b,", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.in), "input %q", tt.in)
	}
}

func TestBlockAccessorsOnNil(t *testing.T) {
	var b Block
	_, ok := b.String("Id")
	assert.False(t, ok)
	assert.Nil(t, b.Block("Config"))
	assert.False(t, b.Has("Id"))
	assert.Empty(t, b.Keys())
	assert.Equal(t, []string{"a", "b"}, Block{"b": "2", "a": "1"}.Keys())
}
