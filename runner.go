package wasteland

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Runner answers queries typed one per line against a loaded Engine.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

const runnerHelp = `Commands:
  walk START GOAL        steps from START to GOAL
  sync START_SFX GOAL_SFX  steps until every *START_SFX walk stands on *GOAL_SFX
  trace START GOAL       nodes visited from START to GOAL
  help                   show this message
  exit | quit            leave`

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner(input io.Reader, output io.Writer) *Runner {
	return &Runner{Input: input, Output: output}
}

// Run reads commands until EOF, "exit" or "quit".
// A failing query is reported on Output and does not stop the loop.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)

	if !r.Headless {
		r.print(fmt.Sprintf("--- Wasteland (%s) ---", engine.Name))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		text, err := lineReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("input error: %w", err)
		}
		eof := err == io.EOF

		text, err = sanitizeCommand(text)
		if err != nil {
			r.print("error: " + err.Error())
			if eof {
				return nil
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 0 {
			if fields[0] == "exit" || fields[0] == "quit" {
				if !r.Headless {
					fmt.Fprintln(r.Output, "Bye!")
				}
				return nil
			}
			r.print(r.answer(ctx, engine, fields))
		}

		if eof {
			return nil
		}
	}
}

func (r *Runner) answer(ctx context.Context, engine *Engine, fields []string) string {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		return runnerHelp
	case "walk", "sync", "trace":
	default:
		return fmt.Sprintf("error: unknown command %q (try help)", cmd)
	}
	if len(args) != 2 {
		return fmt.Sprintf("error: %s expects 2 arguments, got %d", cmd, len(args))
	}

	var (
		steps uint64
		path  []string
		err   error
	)
	switch cmd {
	case "walk":
		steps, err = engine.Walk(ctx, args[0], args[1])
	case "sync":
		steps, err = engine.Synchronize(ctx, args[0], args[1])
	case "trace":
		path, err = engine.Trace(ctx, args[0], args[1])
	}
	if err != nil {
		return "error: " + err.Error()
	}
	if path != nil {
		return strings.Join(path, " -> ")
	}
	return fmt.Sprintf("%d steps", steps)
}

func (r *Runner) print(msg string) {
	if r.Renderer != nil {
		if rendered, err := r.Renderer(msg); err == nil {
			msg = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(msg))
}
