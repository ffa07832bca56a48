package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aidynedit/codec"
	"aidynedit/rom"
	"aidynedit/tables"
	"aidynedit/types"
	"aidynedit/utils"
	"aidynedit/watch"
)

var ErrAssignment = errors.New("expected field=value")

// find_kind matches a typed kind name, fuzzily.
func find_kind(name string) (*types.RecordKind, error) {
	names := make([]string, len(tables.Kinds))
	for i, k := range tables.Kinds {
		names[i] = k.Name
	}
	i, err := utils.Fuzzy_match(names, name, "record kind")
	if err != nil {
		return nil, err
	}
	return tables.Kinds[i], nil
}

func find_field(kind *types.RecordKind, name string) (*types.FieldSpec, error) {
	if f, ok := kind.Field(name); ok {
		return f, nil
	}
	names := make([]string, len(kind.Fields))
	for i, f := range kind.Fields {
		names[i] = f.Name
	}
	i, err := utils.Fuzzy_match(names, name, kind.Name+" field")
	if err != nil {
		return nil, err
	}
	return &kind.Fields[i], nil
}

// split_assignments turns "field=value" arguments into pairs, in order.
func split_assignments(args []string) ([][2]string, error) {
	out := [][2]string{}
	for _, a := range args {
		field, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("%q: %w", a, ErrAssignment)
		}
		out = append(out, [2]string{strings.TrimSpace(field), value})
	}
	return out, nil
}

func show_value(f *types.FieldSpec, v types.Value) string {
	if v.Unset {
		return "-"
	}
	if f.Name == "exp" && !v.IsLabel() && f.Kind == types.FK_UNSIGNED {
		return fmt.Sprintf("%v (%v XP)", v.Int, codec.Experience(v.Int))
	}
	return v.String()
}

func print_fields(tw io.Writer, rec *types.Record) {
	for i := range rec.Kind.Fields {
		f := &rec.Kind.Fields[i]
		fmt.Fprintf(tw, "  %v\t%v\n", f.Name, show_value(f, rec.Get(f.Name)))
	}
}

func print_record(w io.Writer, rec *types.Record) error {
	fmt.Fprintf(w, "%v (%v at 0x%08X)\n", rec.Name, rec.Kind.Name, rec.Address)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	print_fields(tw, rec)
	return tw.Flush()
}

func kinds_cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the kinds of record that can be edited",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range tables.Kinds {
				fmt.Fprintf(tw, "%v\t%v\t%v records\t%v fields\n", k.Name, k.Title, len(k.Addresses), len(k.Fields))
			}
			return tw.Flush()
		},
	}
}

func list_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List every record of a kind, sorted by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			kind, err := find_kind(args[0])
			if err != nil {
				return err
			}
			return print_index(cmd.OutOrStdout(), s, kind)
		},
	}
}

func print_index(w io.Writer, s *rom.Session, kind *types.RecordKind) error {
	idx, err := s.Enumerate(kind)
	if err != nil {
		return err
	}
	for i, name := range idx.Names {
		fmt.Fprintf(w, "%4d  %v\n", i+1, name)
	}
	return nil
}

func get_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <record>",
		Short: "Display one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			kind, err := find_kind(args[0])
			if err != nil {
				return err
			}
			addr, err := s.Select(kind, args[1])
			if err != nil {
				return err
			}
			rec, err := s.Load(kind, addr)
			if err != nil {
				return err
			}
			return print_record(cmd.OutOrStdout(), rec)
		},
	}
}

func set_cmd(o *options) *cobra.Command {
	var rename string
	cmd := &cobra.Command{
		Use:   "set <kind> <record> [field=value]...",
		Short: "Change fields of one record",
		Long: `Change fields of one record.

Numbers are clamped to what the field can hold. A blank value clears a skill.
Coded fields (items, spells, schools, ...) take a label; see "values".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := split_assignments(args[2:])
			if err != nil {
				return err
			}
			renaming := cmd.Flags().Changed("rename")
			if renaming && strings.TrimSpace(rename) == "" {
				return rom.ErrBlankName
			}
			if len(assignments) == 0 && !renaming {
				return errors.New("nothing to set")
			}

			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			kind, err := find_kind(args[0])
			if err != nil {
				return err
			}
			addr, err := s.Select(kind, args[1])
			if err != nil {
				return err
			}
			rec, err := s.Load(kind, addr)
			if err != nil {
				return err
			}

			edited := rec.Clone()
			for _, a := range assignments {
				f, err := find_field(kind, a[0])
				if err != nil {
					return err
				}
				v, err := codec.Validate_and_clamp(f, a[1], s)
				if err != nil {
					return err
				}
				edited.Values[f.Name] = v
			}
			if renaming {
				edited.Name = rename
			}

			saved, err := s.Save(edited)
			if err != nil {
				return err
			}
			return print_record(cmd.OutOrStdout(), saved)
		},
	}
	cmd.Flags().StringVar(&rename, "rename", "", "New name for the record")
	return cmd
}

func values_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "values <kind> <field>",
		Short: "Show what a field accepts",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := find_kind(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, f := range kind.Fields {
					fmt.Fprintf(w, "%v\t%v\n", f.Name, f.Kind)
				}
				return nil
			}

			f, err := find_field(kind, args[1])
			if err != nil {
				return err
			}
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			desc, labels, err := codec.Domain(f, s)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%v.%v: %v\n", kind.Name, f.Name, desc)
			for _, l := range labels {
				fmt.Fprintf(w, "   %v\n", l)
			}
			return nil
		},
	}
}

func dump_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <kind>",
		Short: "Print every record of a kind as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			kind, err := find_kind(args[0])
			if err != nil {
				return err
			}
			idx, err := s.Enumerate(kind)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			header := []string{"#", "name"}
			for _, f := range kind.Fields {
				header = append(header, f.Name)
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))

			for i := range idx.Names {
				addr, err := s.Resolve(idx, i)
				if err != nil {
					return err
				}
				rec, err := s.Load(kind, addr)
				if err != nil {
					return err
				}
				row := []string{fmt.Sprint(i + 1), rec.Name}
				for j := range kind.Fields {
					f := &kind.Fields[j]
					row = append(row, show_value(f, rec.Get(f.Name)))
				}
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
			return tw.Flush()
		},
	}
}

// select_shop takes a 1-based number or a shop label.
func select_shop(s *rom.Session, what string) (int, error) {
	labels, err := s.Shops()
	if err != nil {
		return -1, err
	}
	if utils.Digits(what) == what {
		n, empty := utils.Limit(what, len(labels)+1)
		if !empty {
			if n < 1 || n > len(labels) {
				return -1, rom.ErrNothingSelected
			}
			return n - 1, nil
		}
	}
	return utils.Fuzzy_match(labels, what, "shop")
}

// shop_field finds which region of a shop owns a field.
func shop_field(shop *rom.Shop, name string) (*types.Record, *types.FieldSpec, error) {
	records := shop.Records()
	for _, r := range records {
		if f, ok := r.Kind.Field(name); ok {
			return r, f, nil
		}
	}
	names := []string{}
	owners := []*types.Record{}
	fields := []*types.FieldSpec{}
	for _, r := range records {
		for i := range r.Kind.Fields {
			names = append(names, r.Kind.Fields[i].Name)
			owners = append(owners, r)
			fields = append(fields, &r.Kind.Fields[i])
		}
	}
	i, err := utils.Fuzzy_match(names, name, "shop field")
	if err != nil {
		return nil, nil, err
	}
	return owners[i], fields[i], nil
}

func print_shop(w io.Writer, shop *rom.Shop) error {
	fmt.Fprintln(w, shop.Label)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range shop.Records() {
		fmt.Fprintf(tw, "%v\n", r.Kind.Title)
		print_fields(tw, r)
	}
	if shop.Items == nil {
		fmt.Fprintln(tw, "(trainer only, no inventory)")
	}
	return tw.Flush()
}

func shop_cmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Shops and trainers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List every shop and trainer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			labels, err := s.Shops()
			if err != nil {
				return err
			}
			for i, l := range labels {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %v\n", i+1, l)
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <shop>",
		Short: "Display what a shop sells and teaches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			i, err := select_shop(s, args[0])
			if err != nil {
				return err
			}
			shop, err := s.LoadShop(i)
			if err != nil {
				return err
			}
			return print_shop(cmd.OutOrStdout(), shop)
		},
	}

	set := &cobra.Command{
		Use:   "set <shop> [field=value]...",
		Short: "Change what a shop sells and teaches",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := split_assignments(args[1:])
			if err != nil {
				return err
			}
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			i, err := select_shop(s, args[0])
			if err != nil {
				return err
			}
			shop, err := s.LoadShop(i)
			if err != nil {
				return err
			}
			for _, a := range assignments {
				r, f, err := shop_field(shop, a[0])
				if err != nil {
					return err
				}
				v, err := codec.Validate_and_clamp(f, a[1], s)
				if err != nil {
					return err
				}
				r.Values[f.Name] = v
			}
			saved, err := s.SaveShop(i, shop)
			if err != nil {
				return err
			}
			return print_shop(cmd.OutOrStdout(), saved)
		},
	}

	cmd.AddCommand(list, get, set)
	return cmd
}

func backup_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the ROM to \"<name> (backup).z64\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			target, err := s.Backup()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "backed up to", target)
			return nil
		},
	}
}

func check_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the ROM and the record tables against each other",
		Long: `Check the ROM and the record tables against each other.

Every record and shop is read and decoded, and every lookup table is built.
A ROM of the wrong game or version usually fails here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			n, err := check_all(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: ok, %v records and %v shops\n", s.Path, n, len(tables.Shops))
			return nil
		},
	}
}

func check_all(s *rom.Session) (int, error) {
	names := []string{"items", "spells", "loot", "weapon_items", "armor_items", "shield_items"}
	for _, st := range tables.Statics {
		names = append(names, st.Name)
	}
	for _, name := range names {
		t, err := s.Table(name)
		if err != nil {
			return 0, err
		}
		if err := t.Validate(); err != nil {
			return 0, err
		}
	}

	n := 0
	for _, kind := range append(append([]*types.RecordKind{}, tables.Kinds...), tables.Regions...) {
		if err := kind.Validate(); err != nil {
			return 0, err
		}
	}
	for _, kind := range tables.Kinds {
		for _, addr := range kind.Addresses {
			if _, err := s.Load(kind, addr); err != nil {
				return 0, err
			}
			n++
		}
	}
	for i := range tables.Shops {
		if _, err := s.LoadShop(i); err != nil {
			return 0, fmt.Errorf("%v: %w", tables.Shops[i].Label, err)
		}
	}
	return n, nil
}

func watch_cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [kind]",
		Short: "Report when something else writes to the ROM",
		Long: `Report when something else writes to the ROM, until interrupted.

With a kind, the list of that kind is printed again after every change.
Nothing is merged: whoever writes a record last wins.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd)
			if err != nil {
				return err
			}
			var kind *types.RecordKind
			if len(args) == 1 {
				if kind, err = find_kind(args[0]); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch_rom(ctx, cmd.OutOrStdout(), s, kind)
		},
	}
}

func watch_rom(ctx context.Context, w io.Writer, s *rom.Session, kind *types.RecordKind) error {
	changes := make(chan watch.Change, 1)
	watcher := watch.New_watcher(s.Path, s.Logger)
	if err := watcher.Start_watching(changes); err != nil {
		return err
	}
	defer watcher.Stop_watching()

	fmt.Fprintln(w, "watching", s.Path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-changes:
			fmt.Fprintf(w, "%v changed at %v\n", c.Path, c.When.Format("15:04:05"))
			if kind != nil {
				if err := print_index(w, s, kind); err != nil {
					return err
				}
			}
		}
	}
}
