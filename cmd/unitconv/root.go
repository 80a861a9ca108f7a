package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/measure/dynamic"
)

const rootExample = `  # feet to meters
  unitconv 12 foot meter

  # negative amounts, four decimals by default
  unitconv -40 celsius fahrenheit

  # JSON output with two decimals
  UNITCONV_PRECISION=2 unitconv 1 mile kilometer --json`

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unitconv <amount> <from> <to>",
		Short: "Convert an amount between two units of the same quantity",
		Long: `Convert an amount between two units of the same quantity.

Unit tokens are unit names or aliases, matched case-insensitively and
ignoring '-', '_' and spaces: "SquareMeter", "square-meter" and "square_meter"
name the same unit. Run "unitconv list" for every accepted token.`,
		Example:       rootExample,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, v, err := loadConfig(c.Flags())
			if err != nil {
				return err
			}

			log := newLogger(stderr, cfg.Verbose)
			defer func() { _ = log.Sync() }()
			if file := v.ConfigFileUsed(); file != "" {
				log.Debug("loaded config", zap.String("file", file))
			}

			r, err := dynamic.Default()
			if err != nil {
				return err
			}

			conv, err := convert(r, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			log.Debug("converted",
				zap.Float64("amount", conv.Amount),
				zap.String("from", conv.From.Unit().Descriptor().Name),
				zap.String("to", conv.To.Unit().Descriptor().Name),
				zap.Float64("result", conv.Result),
				zap.Int("precision", cfg.Precision),
			)

			if cfg.JSON {
				return conv.writeJSON(stdout, cfg.Precision)
			}

			return conv.writeText(stdout, cfg.Precision)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.PersistentFlags())
	cmd.AddCommand(newListCommand(stdout, stderr))

	return cmd
}

// conversion is one resolved and computed conversion request.
type conversion struct {
	Amount float64
	From   dynamic.Quantity
	To     dynamic.Quantity
	Result float64
}

func convert(r *dynamic.Registry, amountArg, fromTok, toTok string) (conversion, error) {
	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil {
		return conversion{}, fmt.Errorf("invalid amount %q: not a number", amountArg)
	}

	from, err := r.Lookup(fromTok)
	if err != nil {
		return conversion{}, err
	}
	to, err := r.Lookup(toTok)
	if err != nil {
		return conversion{}, err
	}

	result, err := dynamic.Convert(amount, from, to)
	if err != nil {
		return conversion{}, err
	}

	return conversion{Amount: amount, From: from.WithValue(amount), To: to.WithValue(result), Result: result}, nil
}

// writeText prints "<amount> <From> is <result> <To>".
func (c conversion) writeText(w io.Writer, precision int) error {
	_, err := fmt.Fprintf(w, "%s %s is %s %s\n",
		strconv.FormatFloat(c.Amount, 'f', -1, 64),
		c.From.Unit().Descriptor().Name,
		strconv.FormatFloat(c.Result, 'f', precision, 64),
		c.To.Unit().Descriptor().Name,
	)

	return err
}

// writeJSON prints {"from":<quantity>,"to":<quantity>} with the result
// rounded to precision decimals.
func (c conversion) writeJSON(w io.Writer, precision int) error {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(c.Result, 'f', precision, 64), 64)
	if err != nil {
		return err
	}

	from, err := dynamic.Marshal(c.From)
	if err != nil {
		return err
	}
	to, err := dynamic.Marshal(c.To.WithValue(rounded))
	if err != nil {
		return err
	}

	out, err := json.Marshal(struct {
		From json.RawMessage `json:"from"`
		To   json.RawMessage `json:"to"`
	}{From: from, To: to})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))

	return err
}
