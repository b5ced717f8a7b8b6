package csl

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/matsen/zotref/internal/reference"
)

func testIndex(entries ...*reference.Entry) *reference.Index {
	byCollection := make(map[string][]*reference.Entry)
	for _, e := range entries {
		byCollection[e.Collection] = append(byCollection[e.Collection], e)
	}
	return reference.NewIndex(byCollection)
}

func articleEntry() *reference.Entry {
	return &reference.Entry{
		ID:      1,
		Key:     "ABCD1234",
		Citekey: "Smith_2020",
		Type:    "journalArticle",
		Year:    "2020",
		Fields: map[string]string{
			"title":            "A \"quoted\" title",
			"date":             "2020-03-05",
			"publicationTitle": "Journal of Things",
			"abstractNote":     "Should never be exported",
			"url":              "https://example.org/x",
		},
		Creators: map[string][]reference.Creator{
			"author": {{Last: "Smith", First: "John"}, {Last: "Doe", First: "Jane"}},
			"editor": {{Last: "Green", First: "Bob"}},
		},
		AuthorLast: "Smith, Doe",
		Collection: "Ecology",
	}
}

func TestExportYAMLRendering(t *testing.T) {
	out := ExportYAML(testIndex(articleEntry()), []string{"ABCD1234#Smith_2020"})

	wants := []string{
		"---\nreferences:\n",
		"- type: article-journal\n",
		"  id: ABCD1234#Smith_2020\n",
		"  author:\n  - family: \"Smith\"\n    given: \"John\"\n  - family: \"Doe\"\n    given: \"Jane\"\n",
		"  editor:\n  - family: \"Green\"\n    given: \"Bob\"\n",
		"  issued:\n    year: 2020\n    month: 03\n    day: 05\n",
		"  container-title: \"Journal of Things\"\n", // publicationTitle remapped
		"  URL: \"https://example.org/x\"\n",        // url remapped
		"  title: \"A \\\"quoted\\\" title\"\n",     // quotes escaped
		"...\n\ndummy text\n",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("export missing %q:\n%s", w, out)
		}
	}

	if strings.Contains(out, "Should never be exported") {
		t.Error("abstract leaked into the export")
	}
}

func TestExportYAMLParses(t *testing.T) {
	out := ExportYAML(testIndex(articleEntry()), []string{"ABCD1234#Smith_2020"})

	var doc struct {
		References []map[string]interface{} `yaml:"references"`
	}
	dec := yaml.NewDecoder(strings.NewReader(out))
	if err := dec.Decode(&doc); err != nil {
		t.Fatalf("exported block is not valid YAML: %v\n%s", err, out)
	}
	if len(doc.References) != 1 {
		t.Fatalf("parsed %d references, want 1", len(doc.References))
	}
	ref := doc.References[0]
	if ref["type"] != "article-journal" {
		t.Errorf("type = %v", ref["type"])
	}
	if ref["id"] != "ABCD1234#Smith_2020" {
		t.Errorf("id = %v", ref["id"])
	}
}

func TestExportYAMLUnmappedTypePassesThrough(t *testing.T) {
	e := articleEntry()
	e.Type = "webpage"
	out := ExportYAML(testIndex(e), []string{"ABCD1234#Smith_2020"})
	if !strings.Contains(out, "- type: webpage\n") {
		t.Errorf("unmapped type rewritten:\n%s", out)
	}
}

func TestExportYAMLZeroDate(t *testing.T) {
	e := articleEntry()
	e.Fields["date"] = "0000-00-00"
	e.Year = "0000"
	out := ExportYAML(testIndex(e), []string{"ABCD1234#Smith_2020"})
	if strings.Contains(out, "issued:") {
		t.Errorf("zero-year date rendered:\n%s", out)
	}
}

func TestExportYAMLYearOnlyDate(t *testing.T) {
	e := articleEntry()
	e.Fields["date"] = "2020"
	out := ExportYAML(testIndex(e), []string{"ABCD1234#Smith_2020"})
	if !strings.Contains(out, "  issued:\n    year: 2020\n") {
		t.Errorf("year-only date not rendered:\n%s", out)
	}
	if strings.Contains(out, "month:") || strings.Contains(out, "day:") {
		t.Errorf("missing segments rendered:\n%s", out)
	}
}

func TestExportYAMLNoMatch(t *testing.T) {
	if out := ExportYAML(testIndex(articleEntry()), []string{"ZZZZ#x"}); out != "" {
		t.Errorf("ExportYAML() = %q, want empty", out)
	}
	if out := ExportYAML(testIndex(), []string{"ABCD1234#Smith_2020"}); out != "" {
		t.Errorf("ExportYAML() on empty index = %q, want empty", out)
	}
}

func TestExportYAMLDoesNotMutateEntry(t *testing.T) {
	e := articleEntry()
	ExportYAML(testIndex(e), []string{"ABCD1234#Smith_2020"})
	if _, ok := e.Fields["publicationTitle"]; !ok {
		t.Error("export renamed the cached entry's fields")
	}
	if e.Fields["title"] != "A \"quoted\" title" {
		t.Errorf("export escaped the cached entry's value: %q", e.Fields["title"])
	}
}

func TestMapType(t *testing.T) {
	tests := []struct{ in, want string }{
		{"journalArticle", "article-journal"},
		{"film", "motion_picture"},
		{"webpage", "webpage"},
	}
	for _, tt := range tests {
		if got := MapType(tt.in); got != tt.want {
			t.Errorf("MapType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapField(t *testing.T) {
	tests := []struct{ in, want string }{
		{"date", "issued"},
		{"abstractNote", "abstract"},
		{"publicationTitle", "container-title"},
		{"somethingCustom", "somethingCustom"},
	}
	for _, tt := range tests {
		if got := MapField(tt.in); got != tt.want {
			t.Errorf("MapField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
