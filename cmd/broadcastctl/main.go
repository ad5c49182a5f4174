// Command broadcastctl is the operator CLI for the ward alert mesh. It reads
// the same configuration as the server and can print, inspect or send
// broadcasts without going through HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr, nil).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
