package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	settings, err := a.store.GetSettings(context.Background())
	if err == nil && settings.UserEmail != "" {
		s = fmt.Sprintf("(%s)", settings.UserEmail)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to luv letter CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
