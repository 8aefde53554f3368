package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/page-snapshot/internal/snapshot"
)

func main() {
	// Commands return cli exit errors, which Run turns into exit codes.
	if err := snapshot.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
