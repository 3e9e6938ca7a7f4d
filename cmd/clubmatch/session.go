/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-andiamo/splitter"
)

// handleSession runs an interactive loop dispatching the same commands as
// the one-shot CLI. Input is split with quote awareness so multi-word
// player names work, e.g.: player --name "Jon Snow"
func handleSession(ctx context.Context, st *appState, args []string) error {
	// quote-aware splitting so multi-word names stay one argument
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return fmt.Errorf("failed to build input splitter: %w", err)
	}

	fmt.Println("clubmatch session; 'help' for commands, 'quit' to exit")
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		fields, err := spaceSplitter.Split(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			fmt.Print("> ")
			continue
		}
		fields = unquoteAll(fields)

		cmd := fields[0]
		handler, ok := commands[cmd]
		if !ok || cmd == "session" {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
			fmt.Print("> ")
			continue
		}
		if err := handler(ctx, st, fields[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		fmt.Print("> ")
	}

	return scanner.Err()
}

// unquoteAll strips the enclosing double quotes the splitter preserves on
// quoted arguments.
func unquoteAll(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 && strings.HasPrefix(f, `"`) &&
			strings.HasSuffix(f, `"`) {
			f = f[1 : len(f)-1]
		}
		out = append(out, f)
	}
	return out
}
