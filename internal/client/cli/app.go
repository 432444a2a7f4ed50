// Package cli implements the interactive commands of the biogate client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mkravets/biogate/internal/client/api"
	"github.com/mkravets/biogate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// AuthAPI is the server surface consumed by the commands.
type AuthAPI interface {
	Register(ctx context.Context, email, password, name string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	BiometricLogin(ctx context.Context, key string) (*api.AuthResponse, error)
	SetBiometric(ctx context.Context, token string, keys api.FingerKeys) (*api.AuthResponse, error)
}

type App struct {
	api    AuthAPI
	reader *bufio.Reader
	out    io.Writer

	// Token holds the bearer token of the last successful call; enroll
	// uses it when no token was supplied on the command line.
	Token string
}

func NewApp(a AuthAPI, in io.Reader, out io.Writer) *App {
	return &App{api: a, reader: bufio.NewReader(in), out: out}
}

func (a *App) printResult(res *api.AuthResponse) {
	a.Token = res.Token
	fmt.Fprintf(a.out, "Success! Logged in as %s <%s>\nToken: %s\n", res.User.Name, res.User.Email, res.Token)
}

// Register prompts for name, email and password and creates a new account.
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Register(ctx, email, string(password), name)
	if err != nil {
		return err
	}

	a.printResult(res)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.printResult(res)
	return nil
}

// BiometricLogin prompts for a single finger key and authenticates with it.
func (a *App) BiometricLogin(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter biometric key", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.BiometricLogin(ctx, key)
	if err != nil {
		return err
	}

	a.printResult(res)
	return nil
}

var fingerSlots = []string{
	"right thumb", "right index", "right middle", "right ring", "right short",
	"left thumb", "left index", "left middle", "left ring", "left short",
}

// Enroll prompts for all ten finger keys and enrolls them for the
// authenticated user. A bearer token must be available, either from a prior
// login in this session or supplied by the caller.
func (a *App) Enroll(ctx context.Context) error {
	if a.Token == "" {
		return fmt.Errorf("not logged in: run login first or pass a token")
	}

	values := make([]string, 0, len(fingerSlots))
	for _, slot := range fingerSlots {
		v, err := getSimpleText(a.reader, "Enter key for "+slot+" finger", a.out)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	keys := api.FingerKeys{
		RightThumb: values[0], RightIndex: values[1], RightMiddle: values[2], RightRing: values[3], RightShort: values[4],
		LeftThumb: values[5], LeftIndex: values[6], LeftMiddle: values[7], LeftRing: values[8], LeftShort: values[9],
	}

	res, err := a.api.SetBiometric(ctx, a.Token, keys)
	if err != nil {
		return err
	}

	a.printResult(res)
	return nil
}

// Run dispatches a single named command.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "biometric-login":
		return a.BiometricLogin(ctx)
	case "enroll":
		return a.Enroll(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
