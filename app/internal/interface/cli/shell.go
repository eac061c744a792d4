package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"example.com/solar-directory/app/internal/domain/filter"
)

// Session is the view session the shell drives.
type Session interface {
	OnFilterChange(key filter.Key, value string) filter.View
	SetSort(by filter.SortBy) filter.View
	Refetch(ctx context.Context) (filter.View, error)
	Query() string
	View() filter.View
	FetchFailed() bool
	Flush() bool
}

const shellHelp = `commands:
  set <key> <value>   change a filter (search, category, state, city, rating, min_price, max_price)
  unset <key>         clear one filter
  clear               clear all filters
  sort <by>           name, rating, price_asc, price_desc or none
  refetch             reload the collections
  show                print the current view
  query               print the shareable query string
  flush               persist the query now
  quit                leave
`

// Shell reads one command per line and drives a Session.
type Shell struct {
	sess Session
	out  io.Writer
}

func NewShell(sess Session, out io.Writer) *Shell {
	return &Shell{sess: sess, out: out}
}

// Run processes commands from in until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := RenderView(s.out, s.sess.View(), s.sess.FetchFailed()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := s.Exec(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs a single command line. It reports whether the shell should stop;
// the returned error is a write failure, never a bad command.
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := io.WriteString(s.out, shellHelp)
		return false, err
	case "set", "unset":
		name, value, _ := strings.Cut(rest, " ")
		key, ok := filter.ParseKey(name)
		if !ok || key == filter.KeyClearAll {
			return false, s.printf("unknown filter %q\n", name)
		}
		if cmd == "unset" {
			value = ""
		}
		return false, s.render(s.sess.OnFilterChange(key, strings.TrimSpace(value)))
	case "clear":
		return false, s.render(s.sess.OnFilterChange(filter.KeyClearAll, ""))
	case "sort":
		return false, s.render(s.sess.SetSort(filter.ParseSortBy(rest)))
	case "refetch":
		v, err := s.sess.Refetch(ctx)
		if err != nil {
			return false, s.printf("refetch failed: %v\n", err)
		}
		return false, s.render(v)
	case "show":
		return false, s.render(s.sess.View())
	case "query":
		return false, s.printf("?%s\n", s.sess.Query())
	case "flush":
		if s.sess.Flush() {
			return false, s.printf("persisted ?%s\n", s.sess.Query())
		}
		return false, s.printf("nothing pending\n")
	default:
		return false, s.printf("unknown command %q, try help\n", cmd)
	}
}

func (s *Shell) render(v filter.View) error {
	return RenderView(s.out, v, s.sess.FetchFailed())
}

func (s *Shell) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
