package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/measure/dynamic"
	"github.com/arloliu/measure/unit"
)

func newListCommand(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list [quantity]",
		Short: "List the accepted unit tokens, grouped by quantity",
		Example: `  unitconv list
  unitconv list temperature`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(c.Flags())
			if err != nil {
				return err
			}

			log := newLogger(stderr, cfg.Verbose)
			defer func() { _ = log.Sync() }()

			dims := unit.Dimensions()
			if len(args) == 1 {
				d, err := unit.ParseDimension(args[0])
				if err != nil {
					return err
				}
				dims = []unit.Dimension{d}
			}

			r, err := dynamic.Default()
			if err != nil {
				return err
			}
			log.Debug("listing units", zap.Int("units", r.Len()), zap.Int("quantities", len(dims)))

			return writeUnits(stdout, r, dims)
		},
	}
}

// writeUnits prints one block per dimension: a "Quantity:" line followed by
// one indented line per unit, with its symbol and aliases.
func writeUnits(w io.Writer, r *dynamic.Registry, dims []unit.Dimension) error {
	aliases := make(map[string][]string)
	for _, tok := range r.Tokens()[r.Len():] {
		q, err := r.Lookup(tok)
		if err != nil {
			return err
		}
		name := q.Unit().Descriptor().Name
		aliases[name] = append(aliases[name], tok)
	}

	var b strings.Builder
	for i, d := range dims {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", d)

		for _, q := range r.UnitsOf(d) {
			desc := q.Unit().Descriptor()
			fmt.Fprintf(&b, "  %s (%s)", desc.Name, desc.Symbol)
			if names := aliases[desc.Name]; len(names) > 0 {
				fmt.Fprintf(&b, " aliases: %s", strings.Join(names, ", "))
			}
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
