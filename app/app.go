package app

import (
	"os"

	"github.com/gonuts/commander"
)

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0] + " convert",
		Short:     "convert analyzer output to CoNLL-U",
	}
	cmd.Subcommands = []*commander.Command{
		ConvertCmd(),
	}
	return cmd
}
