package expr

import (
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "name"
	case tokOp:
		return "operator"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lex splits the input into tokens. Identifiers may contain dots so that
// qualified names such as math.sin arrive as a single token.
func lex(src string) ([]token, error) {
	var tokens []token
	runes := []rune(src)
	// Byte offsets keep error positions stable for multi-byte input.
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	i := 0
	for i < len(runes) {
		r := runes[i]
		start := offsets[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			j := scanNumber(runes, i)
			text := string(runes[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: "malformed number " + strconv.Quote(text)}
			}
			tokens = append(tokens, token{kind: tokNumber, text: text, num: v, pos: start})
			i = j

		case unicode.IsLetter(r) || r == '_':
			j := i + 1
			for j < len(runes) {
				c := runes[j]
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
					j++
					continue
				}
				if c == '.' && j+1 < len(runes) && (unicode.IsLetter(runes[j+1]) || runes[j+1] == '_') {
					j++
					continue
				}
				break
			}
			tokens = append(tokens, token{kind: tokIdent, text: string(runes[i:j]), pos: start})
			i = j

		case r == '*' && i+1 < len(runes) && runes[i+1] == '*':
			tokens = append(tokens, token{kind: tokOp, text: "^", pos: start})
			i += 2

		case r == '+' || r == '-' || r == '*' || r == '/' || r == '%' || r == '^':
			tokens = append(tokens, token{kind: tokOp, text: string(r), pos: start})
			i++

		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: start})
			i++

		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: start})
			i++

		default:
			return nil, &SyntaxError{Pos: start, Msg: "unexpected character " + strconv.QuoteRune(r)}
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: offsets[len(runes)]})
	return tokens, nil
}

// scanNumber returns the index just past a decimal literal starting at i.
func scanNumber(runes []rune, i int) int {
	j := i
	for j < len(runes) && unicode.IsDigit(runes[j]) {
		j++
	}
	if j < len(runes) && runes[j] == '.' {
		j++
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
	}
	if j < len(runes) && (runes[j] == 'e' || runes[j] == 'E') {
		k := j + 1
		if k < len(runes) && (runes[k] == '+' || runes[k] == '-') {
			k++
		}
		if k < len(runes) && unicode.IsDigit(runes[k]) {
			for k < len(runes) && unicode.IsDigit(runes[k]) {
				k++
			}
			j = k
		}
	}
	return j
}
