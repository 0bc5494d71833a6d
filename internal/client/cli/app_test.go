package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/client/client"
	"github.com/dmitrijs2005/gophclip/internal/client/config"
	"github.com/dmitrijs2005/gophclip/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	shared   []string
	expiries []string
	fetched  []string
	code     string
	content  string
	err      error
	closed   bool
	deadline bool
}

func (f *fakeClient) Share(ctx context.Context, content, expiry string) (string, error) {
	_, f.deadline = ctx.Deadline()
	f.shared = append(f.shared, content)
	f.expiries = append(f.expiries, expiry)
	return f.code, f.err
}

func (f *fakeClient) Fetch(ctx context.Context, code string) (string, error) {
	_, f.deadline = ctx.Deadline()
	f.fetched = append(f.fetched, code)
	return f.content, f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

var _ client.Client = (*fakeClient)(nil)

func stubTerminal(t *testing.T, v bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return v }
	t.Cleanup(func() { isTerminal = orig })
}

func stdinWith(t *testing.T, data string) *os.File {
	t.Helper()
	p := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	f, err := os.Open(p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func newTestApp(t *testing.T, fc *fakeClient, stdin *os.File) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg := &config.Config{ServerEndpointAddr: "unused", RequestTimeout: time.Second}
	return newApp(cfg, fc, stdin, &out, &errOut), &out, &errOut
}

func TestRun_ShareFromArgs(t *testing.T) {
	stubTerminal(t, true)
	fc := &fakeClient{code: "4821"}
	app, out, _ := newTestApp(t, fc, nil)

	rc := app.Run(context.Background(), []string{"share", "-e", "1h", "hello", "world"})

	assert.Equal(t, 0, rc)
	assert.Equal(t, []string{"hello world"}, fc.shared)
	assert.Equal(t, []string{"1h"}, fc.expiries)
	assert.Equal(t, "4821\n", out.String())
	assert.True(t, fc.closed)
	assert.True(t, fc.deadline)
}

func TestRun_ShareDefaultsToOneDay(t *testing.T) {
	stubTerminal(t, true)
	fc := &fakeClient{code: "1000"}
	app, _, _ := newTestApp(t, fc, nil)

	require.Equal(t, 0, app.Run(context.Background(), []string{"share", "x"}))
	assert.Equal(t, []string{"1d"}, fc.expiries)
}

func TestRun_ShareFromStdin(t *testing.T) {
	stubTerminal(t, false)
	fc := &fakeClient{code: "5555"}
	app, out, _ := newTestApp(t, fc, stdinWith(t, "line one\nline two\n"))

	rc := app.Run(context.Background(), []string{"share", "-e", "never"})

	assert.Equal(t, 0, rc)
	assert.Equal(t, []string{"line one\nline two\n"}, fc.shared)
	assert.Equal(t, []string{"never"}, fc.expiries)
	assert.Equal(t, "5555\n", out.String())
}

func TestRun_ShareNothingIsUsageError(t *testing.T) {
	stubTerminal(t, true)
	fc := &fakeClient{}
	app, _, errOut := newTestApp(t, fc, nil)

	rc := app.Run(context.Background(), []string{"share"})

	assert.Equal(t, 1, rc)
	assert.Empty(t, fc.shared)
	assert.Contains(t, errOut.String(), "nothing to share")
	assert.Contains(t, errOut.String(), "usage:")
}

func TestRun_ShareBadFlag(t *testing.T) {
	stubTerminal(t, true)
	fc := &fakeClient{}
	app, _, errOut := newTestApp(t, fc, nil)

	rc := app.Run(context.Background(), []string{"share", "-x", "y"})

	assert.Equal(t, 1, rc)
	assert.Empty(t, fc.shared)
	assert.Contains(t, errOut.String(), "invalid arguments")
}

func TestRun_Fetch(t *testing.T) {
	fc := &fakeClient{content: "secret"}
	app, out, _ := newTestApp(t, fc, nil)

	rc := app.Run(context.Background(), []string{"fetch", " 4821 "})

	assert.Equal(t, 0, rc)
	assert.Equal(t, []string{"4821"}, fc.fetched)
	assert.Equal(t, "secret\n", out.String())
}

func TestRun_FetchKeepsTrailingNewline(t *testing.T) {
	fc := &fakeClient{content: "a\nb\n"}
	app, out, _ := newTestApp(t, fc, nil)

	require.Equal(t, 0, app.Run(context.Background(), []string{"fetch", "1234"}))
	assert.Equal(t, "a\nb\n", out.String())
}

func TestRun_FetchArgCount(t *testing.T) {
	for _, args := range [][]string{{"fetch"}, {"fetch", "1", "2"}, {"fetch", "  "}} {
		fc := &fakeClient{}
		app, _, errOut := newTestApp(t, fc, nil)

		assert.Equal(t, 1, app.Run(context.Background(), args), "%v", args)
		assert.Empty(t, fc.fetched)
		assert.Contains(t, errOut.String(), "exactly one code")
	}
}

func TestRun_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", common.ErrorNotFound, "no clipboard for that code"},
		{"capacity", common.ErrorCapacityExhausted, "server is busy"},
		{"unavailable", client.ErrUnavailable, "server unavailable"},
		{"validation", common.ErrorValidation, "error: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{err: tt.err}
			app, out, errOut := newTestApp(t, fc, nil)

			rc := app.Run(context.Background(), []string{"fetch", "1234"})

			assert.Equal(t, 1, rc)
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), tt.want)
		})
	}
}

func TestRun_UsageAndUnknown(t *testing.T) {
	fc := &fakeClient{}
	app, _, errOut := newTestApp(t, fc, nil)
	assert.Equal(t, 2, app.Run(context.Background(), nil))
	assert.Contains(t, errOut.String(), "usage:")

	fc = &fakeClient{}
	app, _, errOut = newTestApp(t, fc, nil)
	assert.Equal(t, 2, app.Run(context.Background(), []string{"paste"}))
	assert.Contains(t, errOut.String(), `unknown command "paste"`)

	fc = &fakeClient{}
	app, out, _ := newTestApp(t, fc, nil)
	assert.Equal(t, 0, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "gophclip")
}
