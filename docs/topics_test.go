package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopicsParse checks that every embedded topic is valid markdown
// starting with a level-1 heading.
func TestTopicsParse(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) = %v", topic, err)
			continue
		}
		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		h, ok := first.(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}

// TestReadmeListsTopics checks that the readme mentions every topic by name.
func TestReadmeListsTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) = %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v", err)
	}
	for _, topic := range topics {
		if !strings.Contains(readme, topic) {
			t.Errorf("readme does not mention topic %q", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) should fail")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) = %v", err)
	}
	for _, topic := range []string{"data", "filters", "dashboard"} {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) = %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopics(*) missing content of %q", topic)
		}
	}
}
