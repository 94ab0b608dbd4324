package console

import (
	"bufio"
	"errors"
	"fmt"
	"gato/engine"
	"gato/experiments/metrics"
	"gato/game"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNotNumber     = errors.New("not a number")
	ErrOutOfRange    = errors.New("coordinate out of range")
	ErrOccupied      = errors.New("cell already occupied")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Console is the human's seat: it renders the game to out and reads the human's moves from in.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) Banner() {
	fmt.Fprintln(c.out, "========================================")
	fmt.Fprintln(c.out, "          4x4 TIC-TAC-TOE")
	fmt.Fprintf(c.out, "     You: %s | Computer: %s\n", game.Human.Mark(), game.Computer.Mark())
	fmt.Fprintln(c.out, "========================================")
}

func (c *Console) Render(b *game.Board) {
	var sb strings.Builder
	sb.WriteString("\n  ")
	for col := 0; col < game.Size; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	separator := "  " + strings.Repeat("-", 4*game.Size-1) + "\n"
	sb.WriteString("\n" + separator)
	for row := 0; row < game.Size; row++ {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 0; col < game.Size; col++ {
			fmt.Fprintf(&sb, " %s |", b.At(row, col).Mark())
		}
		sb.WriteString("\n" + separator)
	}
	fmt.Fprintln(c.out, sb.String())
}

// FindMove reads the human's move, re-prompting until it is valid.
func (c *Console) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	move, err := c.ReadMove(board)
	return move, metrics.SearchMetric{}, err
}

// ReadMove prompts for a row and a column until they name an empty cell on the board.
// It only fails when the input cannot be read.
func (c *Console) ReadMove(board *game.Board) (game.Move, error) {
	for {
		fmt.Fprintf(c.out, "Your turn (%s)\n", game.Human.Mark())
		row, err := c.askCoordinate("row")
		if err != nil {
			if c.reported(err) {
				continue
			}
			return game.Move{}, err
		}
		col, err := c.askCoordinate("column")
		if err != nil {
			if c.reported(err) {
				continue
			}
			return game.Move{}, err
		}

		move := game.Move{Row: row, Col: col}
		if err := ValidateMove(board, move); err != nil {
			c.reported(err)
			continue
		}
		return move, nil
	}
}

// AskStarter asks who opens the game.
func (c *Console) AskStarter() (game.Cell, error) {
	for {
		line, err := c.prompt("\nWho starts? (1: you, 2: computer): ")
		if err != nil {
			return game.Empty, err
		}
		starter, err := ParseStarter(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter 1 or 2.")
			continue
		}
		return starter, nil
	}
}

func (c *Console) AskPlayAgain() (bool, error) {
	for {
		line, err := c.prompt("\nPlay again? (y/n): ")
		if err != nil {
			return false, err
		}
		again, err := ParseYesNo(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter 'y' or 'n'.")
			continue
		}
		return again, nil
	}
}

func (c *Console) Goodbye() {
	fmt.Fprintln(c.out, "\nThanks for playing!")
}

// Turn renders the board before each move.
func (c *Console) Turn(board *game.Board, player game.Cell) {
	c.Render(board)
	if player == game.Computer {
		fmt.Fprintf(c.out, "Computer's turn (%s)...\n", game.Computer.Mark())
	}
}

func (c *Console) Moved(player game.Cell, move game.Move, _ *game.Board) {
	if player == game.Computer {
		fmt.Fprintf(c.out, "The computer played %v\n", move)
	}
}

func (c *Console) Finished(outcome engine.Outcome, board *game.Board) {
	c.Render(board)
	switch outcome {
	case engine.HumanWins:
		fmt.Fprintln(c.out, "Congratulations! You win!")
	case engine.ComputerWins:
		fmt.Fprintln(c.out, "The computer wins. Try again!")
	case engine.Draw:
		fmt.Fprintln(c.out, "It's a draw. Good game!")
	}
}

func (c *Console) askCoordinate(name string) (int, error) {
	line, err := c.prompt(fmt.Sprintf("Enter the %s (0-%d): ", name, game.Size-1))
	if err != nil {
		return 0, err
	}
	return ParseCoordinate(line)
}

func (c *Console) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// reported prints input mistakes and reports whether err was one
func (c *Console) reported(err error) bool {
	switch {
	case errors.Is(err, ErrNotNumber):
		fmt.Fprintln(c.out, "Error: please enter a valid number.")
	case errors.Is(err, ErrOutOfRange):
		fmt.Fprintf(c.out, "Error: coordinates must be between 0 and %d.\n", game.Size-1)
	case errors.Is(err, ErrOccupied):
		fmt.Fprintln(c.out, "Error: that cell is already taken. Try another.")
	default:
		return false
	}
	return true
}

// ParseCoordinate parses a row or column typed by the human. Range is checked by ValidateMove.
func ParseCoordinate(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumber)
	}
	return n, nil
}

func ValidateMove(board *game.Board, move game.Move) error {
	if !game.InBounds(move) {
		return fmt.Errorf("%v: %w", move, ErrOutOfRange)
	}
	if board.At(move.Row, move.Col) != game.Empty {
		return fmt.Errorf("%v: %w", move, ErrOccupied)
	}
	return nil
}

func ParseStarter(s string) (game.Cell, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return game.Human, nil
	case "2":
		return game.Computer, nil
	default:
		return game.Empty, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
}

// ParseYesNo accepts y/n and the Spanish s/n.
func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "s", "si":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", s, ErrInvalidChoice)
	}
}
