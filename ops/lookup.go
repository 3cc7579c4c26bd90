// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatrix/elementwise"
)

var operators = map[string]elementwise.Operator{
	NameOr:          OrOperator,
	NameXor:         XorOperator,
	NameAnd:         AndOperator,
	NameAdd:         AddOperator,
	NameSubtract:    SubtractOperator,
	NameDotMultiply: DotMultiplyOperator,
	NameMod:         ModOperator,
	NameLeftShift:   LeftShiftOperator,
	NameEqual:       EqualOperator,
	NameUnequal:     UnequalOperator,
	NameLarger:      LargerOperator,
	NameSmaller:     SmallerOperator,
	NameLargerEq:    LargerEqOperator,
	NameSmallerEq:   SmallerEqOperator,
}

// Lookup returns the operator registered under name.
func Lookup(name string) (elementwise.Operator, error) {
	op, ok := operators[name]
	if !ok {
		return elementwise.Operator{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownOperator)
	}

	return op, nil
}

// Names returns the names of all operators in ascending order.
func Names() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
