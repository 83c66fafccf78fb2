package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.Len(t, table, 31)

	assert.Equal(t, Conversion{From: "ElvtButton", To: "elvt-button"}, table[0])
	assert.Equal(t, Conversion{From: "ElvtApplication", To: "elvt-application"}, table[len(table)-1])

	seen := make(map[string]bool)
	for _, c := range table {
		assert.True(t, strings.HasPrefix(c.From, "Elvt"), c.From)
		assert.True(t, strings.HasPrefix(c.To, "elvt-"), c.To)
		assert.Equal(t, strings.ToLower(c.To), c.To)
		assert.False(t, seen[c.From], "duplicate entry %s", c.From)
		seen[c.From] = true
	}
}

func TestDefaultTable_ReturnsCopy(t *testing.T) {
	a := DefaultTable()
	a[0].To = "changed"

	b := DefaultTable()
	assert.Equal(t, "elvt-button", b[0].To)
}

func TestTable_Shadowed(t *testing.T) {
	var froms []string
	for _, c := range DefaultTable().Shadowed() {
		froms = append(froms, c.From)
	}
	assert.Equal(t, []string{
		"ElvtExpansionPanelGroup",
		"ElvtBreadcrumbItem",
		"ElvtButtonGroup",
		"ElvtIconButton",
	}, froms)
}

func TestTable_Shadowed_None(t *testing.T) {
	table := Table{{From: "Alpha", To: "a"}, {From: "Beta", To: "b"}}
	assert.Empty(t, table.Shadowed())
}

func TestReplaceIdentifiers(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{
			name:      "open and close tag",
			input:     "<ElvtButton>Click</ElvtButton>",
			want:      "<elvt-button>Click</elvt-button>",
			wantCount: 2,
		},
		{
			name:      "self closing multiword",
			input:     `<ElvtDatePicker value="x" />`,
			want:      `<elvt-date-picker value="x" />`,
			wantCount: 1,
		},
		{
			name:      "text node and attribute value",
			input:     `<p title="ElvtCard">Use ElvtCard here</p>`,
			want:      `<p title="elvt-card">Use elvt-card here</p>`,
			wantCount: 2,
		},
		{
			name:      "longer name rewritten by earlier prefix entry",
			input:     "<ElvtButtonGroup></ElvtButtonGroup>",
			want:      "<elvt-buttonGroup></elvt-buttonGroup>",
			wantCount: 2,
		},
		{
			name:      "icon button",
			input:     "<ElvtIconButton/>",
			want:      "<elvt-iconButton/>",
			wantCount: 1,
		},
		{
			name:      "expansion panel group",
			input:     "<ElvtExpansionPanelGroup><ElvtExpansionPanel/></ElvtExpansionPanelGroup>",
			want:      "<elvt-expansion-panelGroup><elvt-expansion-panel/></elvt-expansion-panelGroup>",
			wantCount: 3,
		},
		{
			name:      "unknown component untouched",
			input:     "<ElvtUnknown></ElvtUnknown>",
			want:      "<ElvtUnknown></ElvtUnknown>",
			wantCount: 0,
		},
		{
			name:      "already converted",
			input:     "<elvt-button></elvt-button>",
			want:      "<elvt-button></elvt-button>",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := ReplaceIdentifiers(tt.input, DefaultTable())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

func TestReplaceIdentifiers_Sequential(t *testing.T) {
	table := Table{
		{From: "Alpha", To: "Beta"},
		{From: "Beta", To: "gamma"},
	}

	got, n := ReplaceIdentifiers("Alpha Beta", table)
	assert.Equal(t, "gamma gamma", got)
	assert.Equal(t, 3, n)
}

func TestReplaceIdentifiers_EmptySourceSkipped(t *testing.T) {
	got, n := ReplaceIdentifiers("abc", Table{{From: "", To: "x"}})
	assert.Equal(t, "abc", got)
	assert.Zero(t, n)
}

func TestReplaceIdentifiers_NoSourceRemains(t *testing.T) {
	table := DefaultTable()

	var b strings.Builder
	for _, c := range table {
		b.WriteString("<" + c.From + "></" + c.From + ">\n")
	}

	got, _ := ReplaceIdentifiers(b.String(), table)
	for _, c := range table {
		assert.NotContains(t, got, c.From)
	}
}

func TestReplaceIdentifiers_Idempotent(t *testing.T) {
	table := DefaultTable()

	var b strings.Builder
	for _, c := range table {
		b.WriteString(c.From + " ")
	}

	once, _ := ReplaceIdentifiers(b.String(), table)
	twice, n := ReplaceIdentifiers(once, table)
	assert.Equal(t, once, twice)
	assert.Zero(t, n)
}
