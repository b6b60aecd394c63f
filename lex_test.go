package evalexpr

import "testing"

func TestTokenizerBasic(t *testing.T) {
	cases := []struct {
		src  string
		want []tokenKind
	}{
		{"", []tokenKind{tokenEOF}},
		{"  \t\n ", []tokenKind{tokenEOF}},
		{"42", []tokenKind{tokenInt, tokenEOF}},
		{"4.2", []tokenKind{tokenFloat, tokenEOF}},
		{"4.2e1", []tokenKind{tokenFloat, tokenEOF}},
		{"4e-1", []tokenKind{tokenFloat, tokenEOF}},
		{"true false", []tokenKind{tokenBoolean, tokenBoolean, tokenEOF}},
		{"x1 _y", []tokenKind{tokenIdentifier, tokenIdentifier, tokenEOF}},
		{"str::to_uppercase", []tokenKind{tokenIdentifier, tokenEOF}},
		{`"hi"`, []tokenKind{tokenString, tokenEOF}},
		{"1+2-3*4/5%6^7", []tokenKind{
			tokenInt, tokenPlus, tokenInt, tokenMinus, tokenInt, tokenStar,
			tokenInt, tokenSlash, tokenInt, tokenPercent, tokenInt, tokenHat, tokenInt, tokenEOF,
		}},
		{"a==b!=c<=d>=e<f>g", []tokenKind{
			tokenIdentifier, tokenEq, tokenIdentifier, tokenNeq, tokenIdentifier, tokenLeq,
			tokenIdentifier, tokenGeq, tokenIdentifier, tokenLt, tokenIdentifier, tokenGt, tokenIdentifier, tokenEOF,
		}},
		{"a&&b||!c", []tokenKind{
			tokenIdentifier, tokenAnd, tokenIdentifier, tokenOr, tokenNot, tokenIdentifier, tokenEOF,
		}},
		{"a += b -= c *= d /= e %= f ^= g &&= h ||= i", []tokenKind{
			tokenIdentifier, tokenPlusAssign, tokenIdentifier, tokenMinusAssign, tokenIdentifier, tokenStarAssign,
			tokenIdentifier, tokenSlashAssign, tokenIdentifier, tokenPercentAssign, tokenIdentifier, tokenHatAssign,
			tokenIdentifier, tokenAndAssign, tokenIdentifier, tokenOrAssign, tokenIdentifier, tokenEOF,
		}},
		{"(a, b; c)", []tokenKind{
			tokenLBrace, tokenIdentifier, tokenComma, tokenIdentifier, tokenSemicolon, tokenIdentifier, tokenRBrace, tokenEOF,
		}},
	}
	for _, c := range cases {
		tz := newTokenizer(c.src)
		var got []tokenKind
		for {
			tok, err := tz.next()
			if err != nil {
				t.Errorf("%q: unexpected tokenizer error: %v", c.src, err)
				break
			}
			got = append(got, tok.kind)
			if tok.kind == tokenEOF {
				break
			}
		}
		if len(got) != len(c.want) {
			t.Errorf("%q: got %d tokens %v, want %d %v", c.src, len(got), got, len(c.want), c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("%q: token %d = %v, want %v", c.src, i, got[i], c.want[i])
			}
		}
	}
}

func TestTokenizerNamespacedIdentifier(t *testing.T) {
	tz := newTokenizer("str::regex_matches(a, b)")
	tok, err := tz.next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.kind != tokenIdentifier || tok.text != "str::regex_matches" {
		t.Errorf("first token = %v, want identifier %q", tok, "str::regex_matches")
	}
}

func TestTokenizerPushback(t *testing.T) {
	tz := newTokenizer("1 2")
	a, err := tz.next()
	if err != nil {
		t.Fatal(err)
	}
	tz.push(a)
	b, err := tz.next()
	if err != nil {
		t.Fatal(err)
	}
	if b.kind != a.kind || b.ival != a.ival {
		t.Errorf("push/next round trip: got %v, want %v", b, a)
	}
}

func TestTokenizerDoublePushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("double push: want panic, got none")
		}
	}()
	tz := newTokenizer("1")
	a, _ := tz.next()
	tz.push(a)
	tz.push(a)
}

func TestScanStringEscapes(t *testing.T) {
	tz := newTokenizer(`"a\"b\\c\nd"`)
	tok, err := tz.next()
	if err != nil {
		t.Fatal(err)
	}
	want := `a"b\c\nd`
	if tok.text != want {
		t.Errorf("scanString = %q, want %q", tok.text, want)
	}
}

func TestScanStringUnmatchedQuote(t *testing.T) {
	tz := newTokenizer(`"unterminated`)
	_, err := tz.next()
	if _, ok := err.(*UnmatchedQuoteError); !ok {
		t.Errorf("unterminated string: got %v, want *UnmatchedQuoteError", err)
	}
}

func TestScanNumberError(t *testing.T) {
	tz := newTokenizer("1e")
	_, err := tz.next()
	if _, ok := err.(*TokenizeError); !ok {
		t.Errorf("malformed exponent: got %v, want *TokenizeError", err)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	tz := newTokenizer("$")
	_, err := tz.next()
	if _, ok := err.(*TokenizeError); !ok {
		t.Errorf("unrecognized character: got %v, want *TokenizeError", err)
	}
}
