package dynamic

import (
	"fmt"

	"github.com/arloliu/measure/errs"
)

// Convert expresses amount, read in the unit of from, in the unit of to.
//
// Only the units of from and to matter; their stored magnitudes are ignored.
// Converting a unit to itself returns amount unchanged.
//
// Returns:
//   - float64: the magnitude in the unit of to
//   - error: errs.ErrQuantityMismatch when from and to measure different
//     quantities
func Convert(amount float64, from, to Quantity) (float64, error) {
	if from == nil || to == nil {
		return 0, fmt.Errorf("%w: nil quantity", errs.ErrUnknownUnit)
	}

	if from.Dimension() != to.Dimension() {
		return 0, mismatch(from, to)
	}

	fu, tu := from.Unit(), to.Unit()
	if fu.Descriptor() == tu.Descriptor() {
		return amount, nil
	}

	return tu.FromBase(fu.WithValue(amount).ToBase()).Value(), nil
}

// ConvertTo returns q expressed in the unit of target.
func ConvertTo(q, target Quantity) (Quantity, error) {
	v, err := Convert(q.Value(), q, target)
	if err != nil {
		return nil, err
	}

	return target.WithValue(v), nil
}

// ConvertTokens converts amount between two unit tokens of the default
// registry.
func ConvertTokens(amount float64, from, to string) (float64, error) {
	f, err := Lookup(from)
	if err != nil {
		return 0, err
	}

	t, err := Lookup(to)
	if err != nil {
		return 0, err
	}

	return Convert(amount, f, t)
}

func mismatch(from, to Quantity) error {
	return fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)", errs.ErrQuantityMismatch,
		from.Unit().Descriptor().Name, from.Dimension(), to.Unit().Descriptor().Name, to.Dimension())
}
