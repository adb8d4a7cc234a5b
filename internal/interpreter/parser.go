package interpreter

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Board file format, one directive per line, keywords in any case:
//
//	# comment
//	SIZE 30
//	ROBOT 0 0
//	TARGET 29 29
//	OBSTACLE 4 7
type BoardFile struct {
	Directives []*Directive `parser:"@@*"`
}

type Directive struct {
	Pos lexer.Position

	Size     *int        `parser:"  'SIZE' @Int"`
	Robot    *Coordinate `parser:"| 'ROBOT' @@"`
	Target   *Coordinate `parser:"| 'TARGET' @@"`
	Obstacle *Coordinate `parser:"| 'OBSTACLE' @@"`
}

type Coordinate struct {
	X int `parser:"@Int"`
	Y int `parser:"@Int"`
}

func (c *Coordinate) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

var boardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Keyword", Pattern: `(?i)\b(SIZE|ROBOT|TARGET|OBSTACLE)\b`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var boardParser = participle.MustBuild[BoardFile](
	participle.Lexer(boardLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Keyword"),
)

// ParseBoard reads a board file. SIZE and TARGET are required; the robot
// starts at (0, 0) unless ROBOT says otherwise.
func ParseBoard(filename string, r io.Reader) (BoardSpec, error) {
	file, err := boardParser.Parse(filename, r)
	if err != nil {
		return BoardSpec{}, err
	}
	return file.Spec()
}

func (f *BoardFile) Spec() (BoardSpec, error) {
	var spec BoardSpec
	var haveSize, haveRobot, haveTarget bool
	for _, d := range f.Directives {
		switch {
		case d.Size != nil:
			if haveSize {
				return BoardSpec{}, fmt.Errorf("%s: SIZE given twice", d.Pos)
			}
			spec.Size, haveSize = *d.Size, true
		case d.Robot != nil:
			if haveRobot {
				return BoardSpec{}, fmt.Errorf("%s: ROBOT given twice", d.Pos)
			}
			spec.Robot, haveRobot = d.Robot.Position(), true
		case d.Target != nil:
			if haveTarget {
				return BoardSpec{}, fmt.Errorf("%s: TARGET given twice", d.Pos)
			}
			spec.Target, haveTarget = d.Target.Position(), true
		case d.Obstacle != nil:
			spec.Obstacles = append(spec.Obstacles, d.Obstacle.Position())
		}
	}
	if !haveSize {
		return BoardSpec{}, fmt.Errorf("%w: missing SIZE", ErrInvalidBoard)
	}
	if !haveTarget {
		return BoardSpec{}, fmt.Errorf("%w: missing TARGET", ErrInvalidBoard)
	}
	return spec, nil
}
