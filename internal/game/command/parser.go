package command

import (
	"fmt"
	"strings"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command.
	RawArgs string
}

// Parse splits a text line into a command and arguments.
//
// Precondition: line should be trimmed of leading/trailing whitespace.
// Postcondition: Returns a ParseResult. If line is empty, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	// Split at first space for the command word
	spaceIdx := strings.IndexByte(line, ' ')
	if spaceIdx < 0 {
		return ParseResult{
			Command: strings.ToLower(line),
		}
	}

	cmd := strings.ToLower(line[:spaceIdx])
	rest := strings.TrimSpace(line[spaceIdx+1:])

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	return ParseResult{
		Command: cmd,
		Args:    args,
		RawArgs: rest,
	}
}

// Options splits args into key=value options and positional words. Keys are
// lowercased; values keep their case.
//
// Postcondition: Returns the options and positionals in input order, or an
// error on an empty key or a repeated key.
func Options(args []string) (map[string]string, []string, error) {
	opts := make(map[string]string)
	var positional []string
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			positional = append(positional, a)
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, nil, fmt.Errorf("option %q has no name", a)
		}
		if _, dup := opts[key]; dup {
			return nil, nil, fmt.Errorf("option %q given more than once", key)
		}
		opts[key] = value
	}
	return opts, positional, nil
}
