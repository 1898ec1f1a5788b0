package tabconv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseSeparator(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		want rune
	}{
		"no separator defaults to comma": {line: "abc", want: ','},
		"comma":                          {line: "a,b,c", want: ','},
		"semicolon beats comma":          {line: "a,b;c;d", want: ';'},
		"tie keeps earlier":              {line: "a,b;c", want: ','},
		"pipe":                           {line: "a|b|c", want: '|'},
		"tab":                            {line: "a\tb", want: '\t'},
		"quotes ignored":                 {line: `"a,b,c";d;e`, want: ','},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chooseSeparator(tt.line))
		})
	}
}

func TestSplitQuoted(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		line string
		sep  rune
		want []string
	}{
		"plain":               {line: "a,b,c", sep: ',', want: []string{"a", "b", "c"}},
		"quoted separator":    {line: `"1, x",2`, sep: ',', want: []string{"1, x", "2"}},
		"doubled quote":       {line: `"a""b",c`, sep: ',', want: []string{`a"b`, "c"}},
		"empty fields":        {line: ",,", sep: ',', want: []string{"", "", ""}},
		"empty quoted":        {line: `"",""`, sep: ',', want: []string{"", ""}},
		"trimmed":             {line: "  a  ;  b ", sep: ';', want: []string{"a", "b"}},
		"quote mid field":     {line: `ab"c,d"e,f`, sep: ',', want: []string{"abc,de", "f"}},
		"unterminated quote":  {line: `"a,b`, sep: ',', want: []string{"a,b"}},
		"multibyte separator": {line: "名前|都市", sep: '|', want: []string{"名前", "都市"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitQuoted(tt.line, tt.sep))
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a", unquote(`"a"`))
	assert.Equal(t, "", unquote(`""`))
	assert.Equal(t, `"`, unquote(`"`))
	assert.Equal(t, `"a`, unquote(`"a`))
	assert.Equal(t, `"a"`, unquote(`""a""`))
}

func TestIsDivider(t *testing.T) {
	t.Parallel()
	assert.True(t, isDivider([]string{"---", ":--", "--:", ":-:", "-"}))
	assert.False(t, isDivider([]string{"---", "a"}))
	assert.False(t, isDivider([]string{""}))
	assert.False(t, isDivider([]string{"::"}))
	assert.False(t, isDivider([]string{"- -"}))
}

func TestCellText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw  string
		want string
	}{
		"absent":  {raw: "", want: ""},
		"null":    {raw: "null", want: ""},
		"string":  {raw: `"a\"b"`, want: `a"b`},
		"escaped": {raw: `"é"`, want: "é"},
		"integer": {raw: "42", want: "42"},
		"float":   {raw: "-1.5e3", want: "-1.5e3"},
		"true":    {raw: "true", want: "true"},
		"false":   {raw: "false", want: "false"},
		"array":   {raw: `[1, "two"]`, want: `[1,"two"]`},
		"object":  {raw: `{ "k" : [ ] }`, want: `{"k":[]}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cellText(json.RawMessage(tt.raw)))
		})
	}
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()
	fields, ok := decodeObject(json.RawMessage(`{"b":1,"a":{"x":2},"b":3}`))
	assert.True(t, ok)
	assert.Equal(t, []field{
		{key: "b", value: json.RawMessage("3")},
		{key: "a", value: json.RawMessage(`{"x":2}`)},
	}, fields)

	_, ok = decodeObject(json.RawMessage(`[1]`))
	assert.False(t, ok)
	_, ok = decodeObject(json.RawMessage(`null`))
	assert.False(t, ok)

	fields, ok = decodeObject(json.RawMessage(`{}`))
	assert.True(t, ok)
	assert.Empty(t, fields)
}

func TestDecodeFields(t *testing.T) {
	t.Parallel()
	fields, ok := decodeFields(json.RawMessage(` ["a", 2, null]`))
	assert.True(t, ok)
	assert.Equal(t, []field{
		{key: "0", value: json.RawMessage(`"a"`)},
		{key: "1", value: json.RawMessage("2")},
		{key: "2", value: json.RawMessage("null")},
	}, fields)

	fields, ok = decodeFields(json.RawMessage(`{"k":true}`))
	assert.True(t, ok)
	assert.Equal(t, []field{{key: "k", value: json.RawMessage("true")}}, fields)

	_, ok = decodeFields(json.RawMessage(`"s"`))
	assert.False(t, ok)
	_, ok = decodeFields(json.RawMessage(`[1,`))
	assert.False(t, ok)
}

func TestTrim(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a", trim("\ufeff \t a \r\n"))
	assert.Equal(t, "", trim("   "))
}

func TestLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", " b", "c "}, lines("a\r\n\n b\n  \r\nc "))
	assert.Nil(t, lines(""))
}

func TestLooksLike(t *testing.T) {
	t.Parallel()
	assert.True(t, looksLikeJSON("[1]"))
	assert.True(t, looksLikeJSON("{}"))
	assert.False(t, looksLikeJSON("a[1]"))
	for _, s := range []string{"<table>", "x<tr>", "<td", "<thead>"} {
		assert.True(t, looksLikeHTML(s), s)
	}
	assert.False(t, looksLikeHTML("<div>"))
	assert.True(t, looksLikeTSV("a\tb"))
	assert.True(t, looksLikeMarkdown("a|b"))
}

func TestRecords(t *testing.T) {
	t.Parallel()
	got := records(Table{{"a", "b", "a"}, {"1"}, {"1", "2", "3", "4"}})
	assert.Equal(t, []record{
		{{key: "a", value: ""}, {key: "b", value: ""}},
		{{key: "a", value: "3"}, {key: "b", value: "2"}},
	}, got)
	assert.Empty(t, records(Table{{"a"}}))
}

func TestComputeWidthsRagged(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{2, 3, 2}, computeWidths(Table{{"a"}, {"bb", "ccc", "dd"}}))
}
