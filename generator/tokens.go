package generator

import (
	"github.com/t14raptor/go-jack/seq"
	"github.com/t14raptor/go-jack/token"
)

// Tokens renders a token stream as markup, one element per line, wrapped in
// a <tokens> element. Symbol glyphs are escaped; other text is written as is.
func Tokens(toks []token.Token) string {
	var out seq.Text
	out.WriteString("<tokens>\n")
	for _, tok := range toks {
		writeToken(&out, tok)
	}
	out.WriteString("</tokens>\n")
	return out.String()
}

func writeToken(out *seq.Text, tok token.Token) {
	switch {
	case tok.Kind == token.Keyword:
		element(out, "keyword", tok.Name.String())
	case tok.Kind == token.Name:
		element(out, "identifier", tok.Name.String())
	case tok.Kind.IsSymbol():
		element(out, "symbol", tok.Kind.Markup())
	case tok.Kind == token.Str:
		element(out, "stringConstant", tok.Name.String())
	case tok.Kind == token.Int:
		out.Appendf("<%s> %d </%s>\n", "integerConstant", tok.Int, "integerConstant")
	}
}

func element(out *seq.Text, tag, text string) {
	out.Appendf("<%s> %s </%s>\n", tag, text, tag)
}
