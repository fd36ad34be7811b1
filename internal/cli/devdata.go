package cli

import (
	"context"
	"fmt"
)

// ResetDemoData drops all listings and conversations and reseeds the demo
// data. Development helper; accounts survive.
func (a *App) ResetDemoData(ctx context.Context) error {
	if err := a.seed.ResetTestData(ctx); err != nil {
		a.log.Error(ctx, "demo data reset failed", "error", err)
		fmt.Fprintln(a.out, "Erro ao resetar dados de teste.")
		return err
	}
	if err := a.seed.InitializeTestData(ctx); err != nil {
		a.log.Error(ctx, "demo data reseed failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Dados de teste resetados!")
	return nil
}

// ClearAllData wipes everything, including accounts and the session.
// Development helper.
func (a *App) ClearAllData(ctx context.Context) error {
	if err := a.seed.ClearAllData(ctx); err != nil {
		a.log.Error(ctx, "data wipe failed", "error", err)
		fmt.Fprintln(a.out, "Erro ao limpar dados.")
		return err
	}
	a.current = nil
	fmt.Fprintln(a.out, "Todos os dados foram limpos!")
	return nil
}
