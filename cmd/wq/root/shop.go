package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wanderquest/internal/engine"
	"wanderquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend gold on equipment and consumables",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd(), newShopEquipCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.ListShop(ctx)
			if err != nil {
				return err
			}
			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, fmt.Sprintf("Shop — you have %s gold", ui.Gold.Render(fmt.Sprintf("%d", snap.Character.Gold)))))
			for _, item := range items {
				price := ui.Gold.Render(fmt.Sprintf("%dG", item.Price))
				if item.Bought {
					price = ui.Muted.Render("owned")
				}
				fmt.Fprintf(out, "- %s %s %s — %s [%s] %s\n",
					item.Icon, item.Name, price, item.Desc, item.Type, ui.Muted.Render(item.ID))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy an item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.BuyItem(ctx, args[0])
			if err != nil {
				var ng engine.NotEnoughGoldError
				if errors.As(err, &ng) {
					return fmt.Errorf("that costs %d gold and you have %d — complete some quests first", ng.Price, ng.Gold)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Bought %s %s. %s gold left.\n",
				ui.IconDone, res.Item.Icon, res.Item.Name, ui.Gold.Render(fmt.Sprintf("%d", res.GoldLeft)))
			return nil
		},
	}
}

func newShopEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <slot> <item-id>",
		Short: "Equip an owned item (weapon|armor|accessory)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("slot and item id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.EquipItem(ctx, engine.Slot(args[0]), args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Equipped.")
			return nil
		},
	}
}
