package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("invalid arguments")

func (a *App) share(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	expiry := fs.String("e", "1d", "expiry: 1h, 1d, 7d or never")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	content := strings.Join(fs.Args(), " ")
	if content == "" {
		text, err := readPiped(a.stdin)
		if err != nil {
			return err
		}
		content = text
	}
	if content == "" {
		return fmt.Errorf("%w: nothing to share", errUsage)
	}

	code, err := a.client.Share(ctx, content, *expiry)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, code)
	return nil
}

func (a *App) fetch(ctx context.Context, args []string) error {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%w: fetch takes exactly one code", errUsage)
	}

	content, err := a.client.Fetch(ctx, strings.TrimSpace(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, content)
	if !strings.HasSuffix(content, "\n") {
		fmt.Fprintln(a.out)
	}
	return nil
}
