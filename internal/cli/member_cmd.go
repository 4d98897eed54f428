package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
	"staffplan/internal/fiscal"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage members and their unit prices",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberPriceCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var name, section, role, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.Member{
				Name:     name,
				Role:     role,
				IsActive: true,
			}
			if section != "" {
				sec, err := resolveSection(app, section)
				if err != nil {
					return err
				}
				m.SectionID = &sec.ID
			}
			if start != "" {
				if err := validateDate(start); err != nil {
					return err
				}
				m.StartDate = &start
			}
			if end != "" {
				if err := validateDate(end); err != nil {
					return err
				}
				m.EndDate = &end
			}
			if err := m.ValidateDates(); err != nil {
				return err
			}

			m = app.Workspace.Members.Add(m)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created member %s (%s)\n", m.Name, m.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&section, "section", "", "Section name or ID")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), end month is excluded")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members := app.Workspace.Members.List()
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members found.")
				return nil
			}
			sort.SliceStable(members, func(i, j int) bool { return members[i].Name < members[j].Name })

			rows := make([][]string, 0, len(members))
			for _, m := range members {
				section := formatter.Dim("-")
				if m.SectionID != nil {
					if sec := app.Workspace.Org.GetSection(*m.SectionID); sec != nil {
						section = sec.Name
					}
				}
				price := formatter.Dim("-")
				if len(m.UnitPriceHistory) > 0 {
					price = formatter.Amount(m.UnitPriceHistory[len(m.UnitPriceHistory)-1].Amount)
				}
				rows = append(rows, []string{m.ID[:8], m.Name, m.Role, section, deref(m.StartDate), deref(m.EndDate), price})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "NAME", "ROLE", "SECTION", "START", "END", "PRICE"}, rows))
			return nil
		},
	}
}

func newMemberPriceCmd(app *App) *cobra.Command {
	var member, from string
	var amount float64

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Record a unit price effective from a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, member)
			if err != nil {
				return err
			}
			if _, _, err := fiscal.ParseMonthKey(from); err != nil {
				return fmt.Errorf("invalid month %q: %w", from, err)
			}

			updated := *m
			updated.UnitPriceHistory = append(append([]domain.UnitPriceEntry(nil), m.UnitPriceHistory...),
				domain.UnitPriceEntry{EffectiveFrom: from, Amount: amount})
			sort.SliceStable(updated.UnitPriceHistory, func(i, j int) bool {
				return updated.UnitPriceHistory[i].EffectiveFrom < updated.UnitPriceHistory[j].EffectiveFrom
			})
			app.Workspace.Members.Update(&updated)

			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set unit price %s for %s from %s\n",
				formatter.Amount(amount), m.Name, from)
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Member name or ID")
	cmd.Flags().StringVar(&from, "from", "", "Effective month (YYYY-MM)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Monthly unit price")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMember(app, args[0])
			if err != nil {
				return err
			}
			app.Workspace.Members.Delete(m.ID)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %s\n", m.Name)
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func validateDate(date string) error {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	if _, _, err := fiscal.ParseMonthKey(date[:7]); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return nil
}
