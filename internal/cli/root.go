package cli

import (
	"context"
	"fmt"
)

// Root prints the welcome banner and runs the command loop until exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Maré Viva — pescado fresco direto do pescador")
	if a.current != nil {
		fmt.Fprintf(a.out, "Bem-vindo de volta, %s!\n", a.current.Name)
	} else {
		fmt.Fprintln(a.out, "Digite 'ajuda' para ver os comandos")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
