//go:build !appengine
// +build !appengine

package main

import (
	"context"
	_ "net/http/pprof"

	"github.com/gonuts/commander"

	"fmt"
	"os"
	"yu-val-weiss/ape2ud/app"
	"yu-val-weiss/ape2ud/webapi"
)

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " convert|api",
	Short:     "convert morphological analyzer output to CoNLL-U, as a standalone app or as an api server",
}

func init() {
	cmd.Subcommands = append(app.AllCommands().Subcommands, webapi.AllCommands().Subcommands...)
}

func exit(err error) {
	fmt.Printf("**error**: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		exit(err)
	}
	return
}
