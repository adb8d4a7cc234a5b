package interpreter

import "strings"

// maxDepth bounds how many SE commands may wrap each other on one line.
const maxDepth = 32

// Starter begins paced script execution. It is what INICIAR TIMER triggers.
type Starter interface {
	Start()
}

// Keyword identifies a command.
type Keyword int

const (
	KeywordUnknown Keyword = iota
	KeywordVar
	KeywordMove
	KeywordHelp
	KeywordShow
	KeywordStart
	KeywordIf
)

var keywords = map[string]Keyword{
	"VAR":     KeywordVar,
	"MOVER":   KeywordMove,
	"AJUDA":   KeywordHelp,
	"MOSTRAR": KeywordShow,
	"INICIAR": KeywordStart,
	"SE":      KeywordIf,
}

// Command is a tokenized line. Args excludes the keyword itself.
type Command struct {
	Keyword Keyword
	Name    string
	Args    []string
}

// Interpreter runs command lines against a session. It keeps no state of its
// own between lines.
type Interpreter struct {
	session *Session
	tok     *tokenizer
	starter Starter
}

func New(session *Session) (*Interpreter, error) {
	tok, err := newTokenizer()
	if err != nil {
		return nil, err
	}
	return &Interpreter{session: session, tok: tok}, nil
}

// SetStarter attaches what INICIAR TIMER starts.
func (in *Interpreter) SetStarter(s Starter) {
	in.starter = s
}

func (in *Interpreter) Session() *Session {
	return in.session
}

// Interpret runs one line. A failure is written to the console once and
// then returned; callers do not need to report it again.
func (in *Interpreter) Interpret(line string) error {
	err := in.run(line, 0)
	if err != nil {
		in.session.Log(err.Error(), true)
	}
	return err
}

func (in *Interpreter) run(line string, depth int) error {
	if depth > maxDepth {
		return newError(ErrNestingTooDeep, "Condições aninhadas demais (máximo %d)", maxDepth)
	}
	tokens, err := in.tok.Tokenize(line)
	if err != nil {
		return newError(ErrSyntax, "Linha inválida: %v", err)
	}
	cmd := parseCommand(tokens)
	switch cmd.Keyword {
	case KeywordVar:
		return in.execVar(cmd)
	case KeywordMove:
		return in.execMove(cmd)
	case KeywordHelp:
		return in.execHelp(cmd)
	case KeywordShow:
		return in.execShow(cmd)
	case KeywordStart:
		return in.execStart(cmd)
	case KeywordIf:
		return in.execIf(cmd, depth)
	default:
		return newError(ErrUnknownCommand, "Comando desconhecido")
	}
}

func parseCommand(tokens []string) Command {
	if len(tokens) == 0 {
		return Command{}
	}
	name := strings.ToUpper(tokens[0])
	return Command{Keyword: keywords[name], Name: name, Args: tokens[1:]}
}
