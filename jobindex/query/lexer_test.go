package query

import (
	"testing"
)

func TestLexSimple(t *testing.T) {
	tokens, err := Lex("skill:go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Tokens: Word("skill"), Colon, Word("go"), EOF
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens (including EOF), got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokWord || tokens[0].Value != "skill" {
		t.Errorf("expected Word(skill), got %v", tokens[0])
	}
	if tokens[1].Kind != TokColon {
		t.Errorf("expected Colon, got %v", tokens[1])
	}
	if tokens[2].Kind != TokWord || tokens[2].Value != "go" {
		t.Errorf("expected Word(go), got %v", tokens[2])
	}
	if tokens[3].Kind != TokEOF {
		t.Errorf("expected EOF, got %v", tokens[3])
	}
}

func TestLexString(t *testing.T) {
	tokens, err := Lex(`location:"New York"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[2].Kind != TokString || tokens[2].Value != "New York" {
		t.Errorf("expected String(New York), got %v", tokens[2])
	}
}

func TestLexEscapedString(t *testing.T) {
	tokens, err := Lex(`"say \"hi\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Value != `say "hi"` {
		t.Errorf("expected unescaped value, got %q", tokens[0].Value)
	}
}

func TestLexPunctuationInWords(t *testing.T) {
	tokens, err := Lex("c++ 100% Full-Time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"c++", "100%", "Full-Time"}
	for i, w := range want {
		if tokens[i].Kind != TokWord || tokens[i].Value != w {
			t.Errorf("token %d: expected Word(%s), got %v", i, w, tokens[i])
		}
	}
}

func TestLexUnterminatedString(t *testing.T) {
	if _, err := Lex(`"open`); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestLexEmpty(t *testing.T) {
	tokens, err := Lex("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokEOF {
		t.Errorf("expected only EOF, got %v", tokens)
	}
}
