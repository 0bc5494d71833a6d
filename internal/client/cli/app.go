package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophclip/internal/client/client"
	"github.com/dmitrijs2005/gophclip/internal/client/config"
	"github.com/dmitrijs2005/gophclip/internal/common"
)

const usage = `usage:
  gophclip [-a addr] [-t seconds] share [-e 1h|1d|7d|never] [text...]
  gophclip [-a addr] [-t seconds] fetch CODE
`

type App struct {
	config *config.Config
	client client.Client
	stdin  *os.File
	out    io.Writer
	errOut io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout, os.Stderr), nil
}

func newApp(c *config.Config, cl client.Client, stdin *os.File, out, errOut io.Writer) *App {
	return &App{config: c, client: cl, stdin: stdin, out: out, errOut: errOut}
}

// Run executes the subcommand in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.client.Close()

	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	var err error
	switch args[0] {
	case "share":
		err = a.share(ctx, args[1:])
	case "fetch":
		err = a.fetch(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintln(a.errOut, describe(err))
		return 1
	}
	return 0
}

// describe turns client errors into short user-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, errUsage):
		return err.Error() + "\n" + usage
	case errors.Is(err, common.ErrorNotFound):
		return "no clipboard for that code (it may have expired)"
	case errors.Is(err, common.ErrorCapacityExhausted):
		return "server is busy, try again in a moment"
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "server unavailable: " + err.Error()
	default:
		return "error: " + err.Error()
	}
}
