package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunPlain reads lines from in until the exit word, end of input or ctx is
// done, writing unstyled output to out
func RunPlain(ctx context.Context, ev *Evaluator, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, Banner)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		if err := ctx.Err(); err != nil {
			break
		}

		fmt.Fprint(out, ev.Config().Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		result := ev.Eval(ctx, scanner.Text())
		fmt.Fprint(out, ev.Format(result, false))
		if result.Exit {
			break
		}
	}

	fmt.Fprintln(out, Farewell)
	return scanner.Err()
}
