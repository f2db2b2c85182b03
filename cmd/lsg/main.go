// Command lsg stores and analyzes large directed graphs: it builds binary
// graph files from text edge lists and runs component, Markov-chain and
// neighborhood analyses on them.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
