package parser

import (
	"strings"
	"testing"
)

func TestNewNodeSkipsNil(t *testing.T) {
	a := NewNode(KindBreakStmt)
	b := NewNode(KindContinueStmt)
	node := NewNode(KindStmtList, a, nil, b, nil)

	if len(node.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(node.Children))
	}
	if node.Children[0] != a || node.Children[1] != b {
		t.Error("children out of order")
	}
}

func TestAdopt(t *testing.T) {
	a := NewNode(KindBreakStmt)
	b := NewNode(KindContinueStmt)
	c := NewNode(KindReturnStmt)

	dst := NewNode(KindStmtList, a)
	src := NewNode(KindStmtList, b, c)
	dst.Adopt(src)

	if len(dst.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(dst.Children))
	}
	for i, want := range []*Node{a, b, c} {
		if dst.Children[i] != want {
			t.Errorf("child %d moved out of order", i)
		}
	}
	if len(src.Children) != 0 {
		t.Errorf("source keeps %d children, want 0", len(src.Children))
	}
}

func TestAdoptNil(t *testing.T) {
	dst := NewNode(KindStmtList, NewNode(KindBreakStmt))
	dst.Adopt(nil)
	if len(dst.Children) != 1 {
		t.Errorf("got %d children, want 1", len(dst.Children))
	}
}

func TestNodeLabel(t *testing.T) {
	tok := Token{Kind: TokenIdent, Literal: "radius"}
	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{"identifier leaf", &Node{Kind: KindIdentifier, Token: &tok}, "radius"},
		{"type leaf", &Node{Kind: KindTypeName, Token: &Token{Kind: TokenType, Literal: "double"}}, "double"},
		{"production", NewNode(KindWhileStmt), "WhileStmt"},
		{"leaf without token", &Node{Kind: KindIdentifier}, "Identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	node, err := ParseProgram(strings.NewReader("package main;\nint x;\n"))
	if err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		"Program",
		"  main",
		"  DeclList",
		"    VarDecl",
		"      int",
		"      x",
		"",
	}, "\n")
	if got := node.String(); got != expected {
		t.Errorf("String() =\n%s\nwant:\n%s", got, expected)
	}
}

func TestFirstChildOfKind(t *testing.T) {
	want := NewNode(KindStmtList)
	node := NewNode(KindStmtBlock, NewNode(KindVarDeclList), want)

	if got := node.FirstChildOfKind(KindStmtList); got != want {
		t.Errorf("FirstChildOfKind(StmtList) = %v", got)
	}
	if got := node.FirstChildOfKind(KindIfStmt); got != nil {
		t.Errorf("FirstChildOfKind(IfStmt) = %v, want nil", got)
	}
}
