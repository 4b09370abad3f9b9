// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/xmind2md/pkg/types"
)

func topic(title string, children ...types.Topic) types.Topic {
	t := types.Topic{Title: types.Text(title)}
	if len(children) > 0 {
		t.Children = &types.Children{Attached: children}
	}
	return t
}

func withNote(t types.Topic, note string) types.Topic {
	t.Notes = &types.Notes{Plain: &types.PlainNote{Content: types.Text(note)}}
	return t
}

func sheet(title string, root types.Topic) types.Sheet {
	return types.Sheet{ID: "s", Title: types.Text(title), RootTopic: &root}
}

func nestedSheet() types.Sheet {
	a := withNote(topic("A",
		withNote(topic("A1", topic("A1x")), "deep\nnote"),
		topic("A2"),
	), "n a")
	root := topic("Center", a)
	root.Children.Detached = []types.Topic{topic("D")}
	return sheet("Sheet", root)
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		sheet types.Sheet
		want  string
	}{
		{
			name:  "untitled root falls back to sheet title",
			sheet: sheet("Sheet 1", topic("", withNote(topic("Plan"), "due soon"))),
			want:  "# Sheet 1\n\n来源工作表: Sheet 1\n\n## Plan\n\n> 备注: due soon\n",
		},
		{
			name:  "no sub-topics",
			sheet: sheet("S", topic("Root")),
			want:  "# Root\n\n来源工作表: S\n\n- 无子主题\n",
		},
		{
			name:  "missing root topic",
			sheet: types.Sheet{Title: "S"},
			want:  "# S\n\n来源工作表: S\n\n- 无子主题\n",
		},
		{
			name:  "everything untitled",
			sheet: sheet("", topic("  ", topic("\n\t"))),
			want:  "# 未命名主题\n\n来源工作表: 未命名主题\n\n## 未命名主题\n",
		},
		{
			name:  "nested bullets with notes and detached topics",
			sheet: nestedSheet(),
			want: "# Center\n\n来源工作表: Sheet\n\n" +
				"## A\n\n> 备注: n a\n\n" +
				"- A1\n  - 备注: deep note\n  - A1x\n- A2\n\n" +
				"## D\n",
		},
		{
			name:  "heading without note but with children",
			sheet: sheet("S", topic("R", topic("A", topic("x", topic("y"))))),
			want:  "# R\n\n来源工作表: S\n\n## A\n\n- x\n  - y\n",
		},
		{
			name:  "blank note is no note",
			sheet: sheet("S", topic("R", withNote(topic("A", withNote(topic("b"), " \n ")), "   "))),
			want:  "# R\n\n来源工作表: S\n\n## A\n\n- b\n",
		},
		{
			name:  "whitespace is collapsed",
			sheet: sheet(" My\nSheet ", topic("  Hello\n\tWorld  ", topic("a  b"))),
			want:  "# Hello World\n\n来源工作表: My Sheet\n\n## a b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Markdown(Build(tt.sheet, types.OutlineConfig{}), types.DefaultLabels())
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasSuffix(got, "\n"))
			assert.False(t, strings.HasSuffix(got, "\n\n"), "output must end with exactly one newline")
		})
	}
}

func TestMarkdownOnlyDetachedChildren(t *testing.T) {
	root := topic("R")
	root.Children = &types.Children{Detached: []types.Topic{topic("floating", topic("leaf"))}}

	got := Markdown(Build(sheet("S", root), types.OutlineConfig{}), types.Labels{})
	assert.Equal(t, "# R\n\n来源工作表: S\n\n## floating\n\n- leaf\n", got)
}

func TestMarkdownCustomLabels(t *testing.T) {
	labels := types.Labels{
		Untitled:    "Untitled",
		NoSubtopics: "no sub-topics",
		SourceSheet: "Source sheet",
		Note:        "Note",
	}
	cfg := types.OutlineConfig{Labels: labels}

	got := Markdown(Build(sheet("", topic("")), cfg), labels)
	assert.Equal(t, "# Untitled\n\nSource sheet: Untitled\n\n- no sub-topics\n", got)

	got = Markdown(Build(sheet("S", topic("R", withNote(topic("A", withNote(topic("b"), "x")), "y"))), cfg), labels)
	assert.Equal(t, "# R\n\nSource sheet: S\n\n## A\n\n> Note: y\n\n- b\n  - Note: x\n", got)
}

func TestMarkdownIsStable(t *testing.T) {
	s := nestedSheet()
	first := Markdown(Build(s, types.OutlineConfig{}), types.DefaultLabels())
	second := Markdown(Build(s, types.OutlineConfig{}), types.DefaultLabels())
	assert.Equal(t, first, second)
}

func TestMarkdownHeadingStructure(t *testing.T) {
	src := []byte(Markdown(Build(nestedSheet(), types.OutlineConfig{}), types.DefaultLabels()))
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []string
	var lists int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings = append(headings, strings.Repeat("#", node.Level)+" "+string(node.Lines().Value(src)))
		case *ast.List:
			if node.Parent() == doc {
				lists++
			}
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"# Center", "## A", "## D"}, headings)
	assert.Equal(t, 1, lists)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hello World", Normalize("  Hello\n\tWorld  "))
	assert.Equal(t, "", Normalize(" \r\n\t "))
	assert.Equal(t, "a b c", Normalize("a\u3000b c"))
}

func TestBuildNormalizeUnicode(t *testing.T) {
	decomposed := "Cafe\u0301"
	s := sheet("S", topic(decomposed))

	plain := Build(s, types.OutlineConfig{})
	assert.Equal(t, decomposed, plain.Title)

	nfc := Build(s, types.OutlineConfig{NormalizeUnicode: true})
	assert.Equal(t, "Caf\u00e9", nfc.Title)
}

func TestBuild(t *testing.T) {
	got := Build(nestedSheet(), types.OutlineConfig{})
	want := Outline{
		Title: "Center",
		Sheet: "Sheet",
		Topics: []Node{
			{Title: "A", Note: "n a", Children: []Node{
				{Title: "A1", Note: "deep note", Children: []Node{{Title: "A1x"}}},
				{Title: "A2"},
			}},
			{Title: "D"},
		},
	}
	assert.Equal(t, want, got)
}

func TestRender(t *testing.T) {
	o := Build(nestedSheet(), types.OutlineConfig{})

	t.Run("markdown", func(t *testing.T) {
		for _, f := range []types.OutputFormat{"", types.FormatMarkdown} {
			data, err := Render(o, f, types.Labels{})
			require.NoError(t, err)
			assert.Equal(t, Markdown(o, types.DefaultLabels()), string(data))
		}
	})

	t.Run("html", func(t *testing.T) {
		data, err := Render(o, types.FormatHTML, types.Labels{})
		require.NoError(t, err)
		html := string(data)
		assert.Contains(t, html, "<h1>Center</h1>")
		assert.Contains(t, html, "<h2>A</h2>")
		assert.Contains(t, html, "<blockquote>\n<p>备注: n a</p>\n</blockquote>")
		assert.Contains(t, html, "<li>A2</li>")
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Render(o, types.FormatYAML, types.Labels{})
		require.NoError(t, err)
		var back Outline
		require.NoError(t, yaml.Unmarshal(data, &back))
		assert.Equal(t, o, back)
	})

	t.Run("json", func(t *testing.T) {
		data, err := Render(o, types.FormatJSON, types.Labels{})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(data), "}\n"))
		var back Outline
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, o, back)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Render(o, "pdf", types.Labels{})
		require.ErrorIs(t, err, types.ErrFormat)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{"", types.FormatMarkdown, false},
		{"md", types.FormatMarkdown, false},
		{"Markdown", types.FormatMarkdown, false},
		{"html", types.FormatHTML, false},
		{"yml", types.FormatYAML, false},
		{"yaml", types.FormatYAML, false},
		{"json", types.FormatJSON, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
