package groupfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/disjoint"
)

func frameGroups() disjoint.Groups {
	return disjoint.Groups{
		{{Start: 0, End: 3}},
		{{Start: 3, End: 6}, {Start: 8, End: 10}},
		{{Start: 6, End: 6}},
	}
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/frame.yaml", "testdata/frame.toml"} {
		t.Run(path, func(t *testing.T) {
			doc, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 10, doc.Length)
			assert.Equal(t, []string{"header", "body", "padding"}, doc.Names())
			assert.Equal(t, frameGroups(), doc.Request())
			assert.Equal(t, disjoint.Bounds{Start: 0, End: 10}, doc.Bounds())
			require.NoError(t, doc.Validate())
		})
	}
}

func TestLoadOverlap(t *testing.T) {
	doc, err := Load("testdata/overlap.yml")
	require.NoError(t, err)
	require.ErrorIs(t, doc.Validate(), disjoint.ErrNotDisjoint)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/frame.json")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	tt := []struct {
		name   string
		format Format
		data   string
		err    error
	}{
		{"short pair", FormatYAML, "length: 4\ngroups:\n  - ranges: [[1]]\n", ErrMalformedRange},
		{"long pair", FormatTOML, "length = 4\n[[groups]]\nranges = [[1, 2, 3]]\n", ErrMalformedRange},
		{"duplicate name", FormatYAML, "groups:\n  - name: a\n  - name: a\n", ErrDuplicateName},
		{"negative length", FormatTOML, "length = -1\n", ErrNegativeLength},
		{"unknown format", Format(9), "", ErrUnknownFormat},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.format)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("length: [\n"), FormatYAML)
	require.Error(t, err)
	_, err = Parse([]byte("length = \n"), FormatTOML)
	require.Error(t, err)
}

func TestUnnamedGroups(t *testing.T) {
	doc, err := Parse([]byte("length: 4\ngroups:\n  - ranges: [[0, 2]]\n  - name: tail\n    ranges: [[2, 4]]\n  - {}\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"#0", "tail", "#2"}, doc.Names())
	groups := doc.Request()
	require.Len(t, groups, 3)
	assert.Empty(t, groups[2])
	require.NoError(t, doc.Validate())
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("a/b.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	f, err = FormatFor("c.toml")
	require.NoError(t, err)
	assert.Equal(t, "toml", f.String())
}

func TestRequestKeepsDocumentGroups(t *testing.T) {
	doc, err := Load("testdata/frame.toml")
	require.NoError(t, err)
	require.Len(t, doc.Groups, 3)
	assert.Equal(t, "body", doc.Groups[1].Name)
	assert.Equal(t, [][]int{{3, 6}, {8, 10}}, doc.Groups[1].Ranges)
	req := doc.Request()
	require.Len(t, req, len(doc.Groups))
	assert.Equal(t, disjoint.Range{Start: 8, End: 10}, req[1][1])
}
