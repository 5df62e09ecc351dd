package cmd

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/parsec-go/parsec"
)

func newCheckCommand() *cobra.Command {
	var useEoi bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Tokenize a file on whitespace and report the token count or the parse error",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0], useEoi)
		},
	}
	cmd.Flags().BoolVar(&useEoi, "eoi", false, "require the whole file be consumed (ParseWithEoi) instead of tolerating leftover input (ParseWithLeftOver)")

	return cmd
}

func runCheck(path string, useEoi bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	grammar := tokensParser()

	if useEoi {
		tokens, err := parsec.ParseWithEoi(grammar, string(content), path)
		if err != nil {
			fmt.Println(err.Error())
			return err
		}
		fmt.Printf("%d tokens\n", len(tokens))
		return nil
	}

	tokens, leftOver, err := parsec.ParseWithLeftOver(grammar, string(content), path)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	log.Debugf("leftover after tokenizing: %q", leftOver)
	fmt.Printf("%d tokens\n", len(tokens))
	return nil
}

// tokensParser is the CLI's only grammar: a whitespace-separated token
// list built entirely from the library's own primitives (Whitespace,
// TakeWhile1, Label, Many, SequenceLeft, Then), traced at debug level so --verbose
// shows each primitive's attempt against the cursor.
func tokensParser() parsec.Parser[[]string] {
	ws := trace("whitespace", parsec.Whitespace())
	token := trace("token", parsec.Label(parsec.TakeWhile1("token", isNonSpace), "token"))
	lexeme := parsec.SequenceLeft(token, ws)

	return parsec.Then(ws, trace("tokens", parsec.Many(lexeme)))
}

func isNonSpace(r rune) bool { return !unicode.IsSpace(r) }

func trace[O any](name string, p parsec.Parser[O]) parsec.Parser[O] {
	return func(c parsec.Cursor) parsec.Result[O] {
		log.Debugf("%s: attempting at offset %d", name, c.Offset())
		r := p(c)
		if r.Ok() {
			log.Debugf("%s: succeeded, consumed=%v, cursor now %d", name, r.Consumed, r.Cursor.Offset())
		} else {
			log.Debugf("%s: failed, consumed=%v", name, r.Consumed)
		}
		return r
	}
}
