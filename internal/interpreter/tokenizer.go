package interpreter

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tokenizer splits a command line into words separated by ASCII whitespace.
// Unicode spaces such as NBSP stay inside a word.
type tokenizer struct {
	lexer *lexmachine.Lexer
}

func newTokenizer() (*tokenizer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte("[ \t\n\r\v\f]+"), skip)
	l.Add([]byte("[^ \t\n\r\v\f]+"), word)
	if err := l.Compile(); err != nil {
		return nil, fmt.Errorf("compile tokenizer: %w", err)
	}
	return &tokenizer{lexer: l}, nil
}

func (t *tokenizer) Tokenize(line string) ([]string, error) {
	scanner, err := t.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []string
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok.(string))
	}
	return tokens, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func word(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes), nil
}
