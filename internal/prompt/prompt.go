// Package prompt runs the interactive start/end city loop.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atharv3903/citygraph/internal/model"
	"github.com/atharv3903/citygraph/internal/session"
)

const quit = "Q"

// Run reads city pairs from in until "Q" or EOF and writes each path
// description to out.
func Run(sess *session.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	for {
		start, ok := ask(sc, out, "Enter start city (\"Q\" to quit):")
		if !ok {
			return scanErr(sc)
		}
		if start == quit {
			fmt.Fprintln(out, "Terminated.  Goodbye.")
			return nil
		}
		if !sess.Contains(start) {
			fmt.Fprintln(out, start+" is not part of data-base. Please try again.")
			continue
		}

		end, ok := ask(sc, out, "Enter end city (\"Q\" to quit):")
		if !ok {
			return scanErr(sc)
		}
		if end == quit {
			fmt.Fprintln(out, "Terminated.  Goodbye.")
			return nil
		}
		if !sess.Contains(end) {
			fmt.Fprintln(out, end+" is not part of data-base. Please try again.")
			continue
		}

		res, _, err := sess.Route(start, end)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, model.Describe(start, end, res))
	}
}

func ask(sc *bufio.Scanner, out io.Writer, q string) (string, bool) {
	fmt.Fprintln(out, q)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func scanErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
