package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Maazi-78/Compiler/decaf/parser"
)

func parseSource(t *testing.T, src string) *parser.Node {
	t.Helper()
	node, err := parser.ParseProgram(strings.NewReader(src), parser.WithFile("test.dcf"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return node
}

func TestTreeEncoder(t *testing.T) {
	node := parseSource(t, "package main;\nfunc main() void {\nPrint(1 + 2);\n}\n")

	var b strings.Builder
	if err := NewTreeEncoder(&b).Encode(node); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"Program",
		"  main",
		"  DeclList",
		"    FnDecl",
		"      void",
		"      main",
		"      StmtBlock",
		"        StmtList",
		"          PrintStmt",
		"            Actuals",
		"              Add",
		"                1",
		"                2",
		"",
	}, "\n")
	if got := b.String(); got != expected {
		t.Errorf("tree output:\n%s\nwant:\n%s", got, expected)
	}
}

func TestASTJSONEncoder(t *testing.T) {
	node := parseSource(t, "package main;\nint x;\n")

	var b strings.Builder
	if err := NewASTJSONEncoder(&b).Encode(node); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Label    string `json:"label"`
		Children []struct {
			Label string `json:"label"`
			Line  int    `json:"line"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(b.String()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, b.String())
	}
	if got.Label != "Program" {
		t.Errorf("root label = %q, want Program", got.Label)
	}
	if len(got.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(got.Children))
	}
	if got.Children[0].Label != "main" || got.Children[0].Line != 1 {
		t.Errorf("first child = %+v, want main on line 1", got.Children[0])
	}
	if got.Children[1].Label != "DeclList" {
		t.Errorf("second child label = %q, want DeclList", got.Children[1].Label)
	}
}
