package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"def", KwDef, true},
		{"class", KwClass, true},
		{"None", KwNone, true},
		{"match", Invalid, false}, // soft keyword, lexed as Ident
		{"Def", Invalid, false},
		{"", Invalid, false},
	}

	for _, tt := range tests {
		k, ok := LookupKeyword(tt.text)
		if ok != tt.ok {
			t.Errorf("%q: expected ok=%v, got %v", tt.text, tt.ok, ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("%q: expected %v, got %v", tt.text, tt.kind, k)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !(Token{Kind: StringLit}).IsString() {
		t.Error("StringLit should be a string")
	}
	if !(Token{Kind: IntLit}).IsLiteral() || (Token{Kind: Ident}).IsLiteral() {
		t.Error("IsLiteral misclassifies")
	}
	if !(Token{Kind: KwDef}).IsKeyword() || (Token{Kind: Ident}).IsKeyword() {
		t.Error("IsKeyword misclassifies")
	}
	if !(Token{Kind: Plus}).IsPunctOrOp() || (Token{Kind: Newline}).IsPunctOrOp() {
		t.Error("IsPunctOrOp misclassifies")
	}
}

func TestBracketPredicates(t *testing.T) {
	opens := []Kind{LParen, LBracket, LBrace}
	closes := []Kind{RParen, RBracket, RBrace}

	for _, k := range opens {
		if !(Token{Kind: k}).OpensBracket() {
			t.Errorf("%v should open a bracket", k)
		}
	}
	for _, k := range closes {
		if !(Token{Kind: k}).ClosesBracket() {
			t.Errorf("%v should close a bracket", k)
		}
	}
	if (Token{Kind: Lt}).OpensBracket() || (Token{Kind: Gt}).ClosesBracket() {
		t.Error("comparison operators are not brackets")
	}
}

func TestKindString(t *testing.T) {
	if got := KwDef.String(); got != "def" {
		t.Errorf("expected def, got %q", got)
	}
	if got := StringLit.String(); got != "StringLit" {
		t.Errorf("expected StringLit, got %q", got)
	}
	if got := Kind(255).String(); got != "Kind(?)" {
		t.Errorf("expected fallback name, got %q", got)
	}
}
