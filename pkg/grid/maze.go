package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrHeader      = errors.New("maze: invalid header, expected \"start_x start_y goal_x goal_y\"")
	ErrRowCount    = errors.New("maze: wrong number of rows")
	ErrColumnCount = errors.New("maze: wrong number of columns")
	ErrCellValue   = errors.New("maze: invalid cell value")
)

// Dimensions of the reference workspace
const (
	DefaultWidth  = 50
	DefaultHeight = 30
)

// maze parse states
const (
	PARSE_HEADER = iota
	PARSE_ROWS   = iota
	PARSE_DONE   = iota
)

// Maze is a planning problem: a workspace together with the start and goal cell
type Maze struct {
	Start Position
	Goal  Position
	Grid  *Grid
}

// Parse a maze with the given dimensions.
// The first grid line is the top row (y = height-1), the last one is y = 0.
// Empty lines and lines starting with '#' are skipped.
func ParseMaze(r io.Reader, width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	maze := &Maze{}
	rows := make([][]Label, height)
	parsedRows := 0

	parseState := PARSE_HEADER
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			continue
		}

		switch parseState {
		case PARSE_HEADER:
			values, err := parseInts(strings.Fields(line))
			if err != nil || len(values) != 4 {
				return nil, fmt.Errorf("%w (line %d)", ErrHeader, lineNumber)
			}
			maze.Start = Position{X: values[0], Y: values[1]}
			maze.Goal = Position{X: values[2], Y: values[3]}
			parseState = PARSE_ROWS
		case PARSE_ROWS:
			tokens := strings.Fields(line)
			if len(tokens) != width {
				return nil, fmt.Errorf("%w: expected %d values in line %d, got %d", ErrColumnCount, width, lineNumber, len(tokens))
			}
			row := make([]Label, width)
			for x, token := range tokens {
				value, err := strconv.Atoi(token)
				if err != nil || !Label(value).Valid() {
					return nil, fmt.Errorf("%w: %q in line %d", ErrCellValue, token, lineNumber)
				}
				row[x] = Label(value)
			}
			rows[height-1-parsedRows] = row
			parsedRows++
			if parsedRows == height {
				parseState = PARSE_DONE
			}
		case PARSE_DONE:
			return nil, fmt.Errorf("%w: unexpected data in line %d, expected %d rows", ErrRowCount, lineNumber, height)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if parseState == PARSE_HEADER {
		return nil, ErrHeader
	}
	if parsedRows != height {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrRowCount, height, parsedRows)
	}

	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	maze.Grid = g
	return maze, nil
}

func ParseMazeString(maze string, width, height int) (*Maze, error) {
	return ParseMaze(strings.NewReader(maze), width, height)
}

func ReadMazeFile(filename string, width, height int) (*Maze, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseMaze(file, width, height)
}

// Format the maze in the same format ParseMaze reads
func FormatMaze(m *Maze) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d %d %d %d\n", m.Start.X, m.Start.Y, m.Goal.X, m.Goal.Y))
	sb.WriteString(m.Grid.String())
	return sb.String()
}

func WriteMazeFile(m *Maze, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(FormatMaze(m)); err != nil {
		return err
	}
	return writer.Flush()
}

func parseInts(tokens []string) ([]int, error) {
	values := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
