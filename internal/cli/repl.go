package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"colDB/internal/cli/output"
	"colDB/internal/config"
	"colDB/internal/engine"
	"colDB/internal/sql"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errInterrupted is returned by a lineReader when the user pressed Ctrl-C.
// The loop drops the line and keeps going.
var errInterrupted = errors.New("interrupted")

// lineReader yields input lines. io.EOF ends the session.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

func newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := config.GetLogger(ctx)
	r := GetRenderer(ctx)

	eng, err := CreateEngine(cfg, logger)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	var lr lineReader
	if isTerminal(in) {
		lr, err = newReadlineReader(cmd, cfg, eng)
		if err != nil {
			return fmt.Errorf("failed to initialize REPL: %w", err)
		}
	} else {
		lr = newPipeReader(in, 2*eng.MaxQueryLength())
	}
	defer func() { _ = lr.Close() }()

	if cfg.Banner {
		r.Banner()
	}
	return runLoop(ctx, eng, lr, r)
}

// runLoop executes one statement per line until EXIT or end of input.
// Statement errors are printed and never end the session.
func runLoop(ctx context.Context, eng *engine.DBEngine, lr lineReader, r *output.Renderer) error {
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, errInterrupted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, errLineTooLong) {
			r.Error(&sql.ParseError{Reason: sql.ReasonQueryTooLong, Limit: eng.MaxQueryLength()})
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := eng.ExecuteLine(ctx, line)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			r.Error(err)
			continue
		}
		if res.Exit {
			return nil
		}
		r.Result(res)
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(cmd *cobra.Command, cfg *config.Config, eng *engine.DBEngine) (*readlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    newCompleter(eng),
		InterruptPrompt: "^C",
		EOFPrompt:       "EXIT",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errInterrupted
	}
	return line, err
}

func (r *readlineReader) Close() error { return r.rl.Close() }

// newCompleter completes statement keywords and, where a table name is
// expected, the names of existing tables.
func newCompleter(eng *engine.DBEngine) *readline.PrefixCompleter {
	tables := func(string) []string { return eng.Tables() }

	return readline.NewPrefixCompleter(
		readline.PcItem("CREATE", readline.PcItem("TABLE")),
		readline.PcItem("INSERT", readline.PcItem("INTO", readline.PcItemDynamic(tables))),
		readline.PcItem("SELECT", readline.PcItem("*", readline.PcItem("FROM", readline.PcItemDynamic(tables)))),
		readline.PcItem("SAVE"),
		readline.PcItem("LOAD"),
		readline.PcItem("EXIT"),
	)
}

// errLineTooLong is returned by pipeReader for a line it dropped.
var errLineTooLong = errors.New("line too long")

// minPipeLine is the smallest per-line buffer a pipeReader keeps.
const minPipeLine = 1 << 20

// pipeReader reads piped input without prompts or line editing. Lines
// longer than limit are discarded up to their newline and reported as
// errLineTooLong, so one oversized line does not end the session.
type pipeReader struct {
	br    *bufio.Reader
	limit int
}

func newPipeReader(in io.Reader, limit int) *pipeReader {
	if limit < minPipeLine {
		limit = minPipeLine
	}
	return &pipeReader{br: bufio.NewReader(in), limit: limit}
}

func (p *pipeReader) ReadLine() (string, error) {
	var (
		buf     []byte
		dropped bool
		read    bool
	)
	for {
		frag, isPrefix, err := p.br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true
		if !dropped {
			if len(buf)+len(frag) > p.limit {
				dropped = true
				buf = nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if dropped {
		return "", errLineTooLong
	}
	return string(buf), nil
}

func (p *pipeReader) Close() error { return nil }
