package docs

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the readme and the topic files stay in sync: every
// topic named in readme.md must load, and every topic file must be named
// in readme.md.
func TestTopics(t *testing.T) {
	source, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	// Topic names appear in the readme as code spans inside list items.
	var inReadme []string
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if span, ok := n.(*ast.CodeSpan); ok {
			inReadme = append(inReadme, string(span.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk readme.md: %v", err)
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("no topics embedded")
	}

	for _, topic := range all {
		if !slices.Contains(inReadme, topic) {
			t.Errorf("topic %q is embedded but not mentioned in readme.md", topic)
		}
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q): %v", topic, err)
		}
	}
}

func TestGetTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topics must error")
	}
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme): %v", err)
	}
	if len(content) == 0 {
		t.Error("readme is empty")
	}
}

func TestGetTopics_Star(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*): %v", err)
	}
	for _, want := range []string{"# Scenarios", "# Privacy"} {
		if !strings.Contains(content, want) {
			t.Errorf("expanded topics missing %q", want)
		}
	}
}
