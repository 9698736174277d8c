package memory

import (
	"fmt"
	"strings"
)

// Strategy selects the free chunk used by Allocate.
type Strategy uint8

const (
	FirstFit Strategy = iota
	BestFit
	WorstFit
)

var strategyNames = []string{
	FirstFit: "first fit",
	BestFit:  "best fit",
	WorstFit: "worst fit",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q, expecting one of %s",
		ErrInvalidAllocationMethod,
		name,
		strings.Join(StrategyNames(), ", "),
	)
}

func StrategyNames() []string {
	ret := make([]string, len(strategyNames))
	copy(ret, strategyNames)
	return ret
}
