package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recmarket/internal/client/client"
	"github.com/dmitrijs2005/recmarket/internal/client/config"
	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type App struct {
	config   *config.Config
	client   client.Client
	reader   *bufio.Reader
	out      io.Writer
	loggedIn bool
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewRegistryClient(c.ServerEndpointAddr, c.IdentityToken)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintln(a.out, "Welcome to recmarket CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// principal extracts the principal claim from the identity token without
// verifying it; the server is the authority.
func (a *App) principal() string {
	token := a.client.IdentityToken()
	if token == "" {
		return common.AnonymousPrincipal
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "?"
	}
	p, _ := claims["principal"].(string)
	if p == "" {
		return "?"
	}
	return p
}

func (a *App) getStatus() string {
	state := "logged out"
	if a.loggedIn {
		state = "logged in"
	}
	return fmt.Sprintf("(%s, %s)", a.principal(), state)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
