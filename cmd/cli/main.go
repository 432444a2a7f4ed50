package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mkravets/biogate/internal/client/api"
	"github.com/mkravets/biogate/internal/client/cli"
)

func main() {

	server := flag.String("s", "http://localhost:8080", "biogate server base URL")
	token := flag.String("t", "", "bearer token (required for enroll unless logging in first)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-s server] [-t token] register|login|biometric-login|enroll\n", os.Args[0])
		os.Exit(2)
	}

	app := cli.NewApp(api.New(*server), os.Stdin, os.Stdout)
	app.Token = *token

	if err := app.Run(context.Background(), flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
