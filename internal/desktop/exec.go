package desktop

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Sentinel errors for command launching.
var (
	ErrEmptyExec   = errors.New("empty exec line")
	ErrInvalidExec = errors.New("invalid exec line")
)

// ExecTokens shell-tokenizes an Exec line and strips %-placeholder
// tokens (%f, %u and friends). A first token containing '=' is rejected:
// a bare environment assignment is not a launchable command.
func ExecTokens(execLine string) ([]string, error) {
	tokens := tokenize(execLine)
	if len(tokens) == 0 {
		return nil, ErrEmptyExec
	}

	if strings.Contains(tokens[0], "=") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExec, tokens[0])
	}

	out := tokens[:0]
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "%") {
			continue
		}
		out = append(out, tok)
	}

	return out, nil
}

// Launch spawns the entry's command detached from the panel process.
// extraEnv entries (activation token, GPU selection) are appended to the
// inherited environment.
func Launch(entry Entry, extraEnv []string) error {
	tokens, err := ExecTokens(entry.Exec)
	if err != nil {
		return fmt.Errorf("launching %s: %w", entry.ID, err)
	}

	cmd := exec.Command(tokens[0], tokens[1:]...) //nolint:gosec // launching user-chosen apps is the point
	cmd.Env = append(os.Environ(), extraEnv...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", entry.ID, err)
	}

	// The panel never reaps launched apps.
	return cmd.Process.Release()
}

// LaunchAction spawns a named sub-command of the entry.
func LaunchAction(entry Entry, action EntryAction, extraEnv []string) error {
	return Launch(Entry{ID: entry.ID + ":" + action.Name, Exec: action.Exec}, extraEnv)
}

// tokenize splits a command line on whitespace, honoring single and
// double quotes. Unterminated quotes consume the rest of the line.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder

	inToken := false
	quote := rune(0)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if inToken {
		tokens = append(tokens, cur.String())
	}

	return tokens
}
