package cmd

import (
	"fmt"
	"os"

	"github.com/streambinder/playlistify/util/anchor"
)

var (
	tui     = anchor.New(anchor.Red)
	cmdRoot = cmdCreate()
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
