package cli

import (
	"context"
	"fmt"
)

// ListOrders prints the order ledger, oldest first.
func (a *App) ListOrders(ctx context.Context) error {
	list, err := a.orders.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "error listing orders", "error", err)
		return err
	}
	for _, o := range list {
		printlnFn(formatOrder(o))
	}
	return nil
}

// ShowStats prints the dashboard counters: registered accounts, approved
// sellers, and recorded orders.
func (a *App) ShowStats(ctx context.Context) error {
	stats, err := a.orders.Stats(ctx)
	if err != nil {
		a.logger.Error(ctx, "error computing stats", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Users: %d  Sellers: %d  Orders: %d", stats.Users, stats.Sellers, stats.Orders))
	return nil
}
