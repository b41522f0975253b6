package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/othello/move"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // e.g. "-games", "-threads"
	Args    []string // possible positional values
}

var botSpecs = []string{"random", "easy", "medium", "hard", "expert"}

var commandMetadata = map[string]CommandMetadata{
	"new":      {Args: []string{"dark", "light"}},
	"position": {Args: []string{"dark", "light"}},
	"gen":      {Options: []string{"-depth"}},
	"set":      {Args: []string{"depth", "difficulty", "threads"}},
	"autoplay": {
		Options: []string{"-games", "-threads", "-p1", "-p2", "-logfile"},
		Args:    []string{"stop"},
	},
	"help": {Args: []string{"play", "set", "autoplay", "script"}},
}

var commandNames = []string{
	"new", "position", "s", "show", "gen", "play", "aiplay", "undo", "score",
	"outcome", "eval", "set", "config", "autoplay", "script", "help", "exit",
}

// Do implements the readline.AutoComplete interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// unterminated quote, most likely
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-p1" || lastCompleteField == "-p2":
			completions = botSpecs
		case cmdName == "set" && lastCompleteField == "difficulty":
			completions = botSpecs[1:]
		case cmdName == "play" && c.sc.game != nil && c.sc.game.Playing():
			completions = lo.Map(c.sc.game.LegalMoves(), func(m move.Move, _ int) string {
				return m.BoardGameCoords()
			})
		default:
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// only the part that still needs typing
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
