package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Dirty() bool
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Copy(ctx context.Context, args []string) error
	Generate(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Passwd(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Reload(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  list|l [name|id|time|memo]   list records in the given order
  show <name>                  show one record
  add                          add a record
  edit <name>                  edit a record
  delete|rm <name>             delete every record with that name
  copy|cp <name> [password|id] copy a field to the clipboard
  gen                          print a generated password
  toggle                       show/hide passwords
  passwd                       change the store passphrase
  save                         write changes
  reload                       discard changes and load again
  exit|quit                    leave (asks again when there are unsaved changes)

Everything after the first space following the command is taken as is, so
names may contain spaces (repeated or leading ones included).`

// splitCommand separates the command word from its arguments. Arguments
// are split on single spaces only, so joining them with " " gives back the
// rest of the line exactly and names keep repeated or leading spaces.
func splitCommand(line string) (string, []string) {
	line = strings.TrimLeft(line, " \t")
	cmd, rest, _ := strings.Cut(line, " ")
	if rest == "" {
		return cmd, nil
	}
	return cmd, strings.Split(rest, " ")
}

// runREPL starts a simple read–eval–print loop for the passlist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. The prompt carries statusFn's marker ("*" for unsaved
// changes). Errors returned by handlers are printed and the loop goes on.
//
// The loop exits on scanner EOF, or on "exit"/"quit". With unsaved changes
// the first exit only warns; a second exit in a row discards the changes.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	exitArmed := false

	for {
		printlnFn(fmt.Sprintf("passlist%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		cmd, args := splitCommand(scanner.Text())
		if cmd == "" {
			continue
		}

		if cmd == "exit" || cmd == "quit" {
			if a.Dirty() && !exitArmed {
				printlnFn("Unsaved changes. Run 'save', or exit again to discard them.")
				exitArmed = true
				continue
			}
			printlnFn("Bye!")
			return
		}
		exitArmed = false

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "l", "list":
			err = a.List(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "add":
			err = a.Add(ctx, args)
		case "edit":
			err = a.Edit(ctx, args)
		case "rm", "delete":
			err = a.Delete(ctx, args)
		case "cp", "copy":
			err = a.Copy(ctx, args)
		case "gen":
			err = a.Generate(ctx, args)
		case "toggle":
			err = a.Toggle(ctx, args)
		case "passwd":
			err = a.Passwd(ctx, args)
		case "save":
			err = a.Save(ctx, args)
		case "reload":
			err = a.Reload(ctx, args)
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
