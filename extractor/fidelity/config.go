package fidelity

import (
	"regexp"

	"github.com/spf13/viper"
)

// Fallback policies for actions that match no classification rule.
const (
	PolicyLenient = "lenient"
	PolicyStrict  = "strict"
)

// Column resolution strategies.
const (
	StrategyHeader     = "header"
	StrategyPositional = "positional"
)

const defaultAccountFilePattern = `.*Account_(\w+).*\.csv`

type config struct {
	FallbackPolicy     string
	ColumnStrategy     string
	AccountFilePattern *regexp.Regexp
}

func loadConfig() config {
	policy := viper.GetString("statement.FIDELITY.fallback_policy")
	if policy == "" {
		policy = PolicyLenient
	}

	strategy := viper.GetString("statement.FIDELITY.column_strategy")
	if strategy == "" {
		strategy = StrategyHeader
	}

	pattern := viper.GetString("statement.FIDELITY.account_file_pattern")
	if pattern == "" {
		pattern = defaultAccountFilePattern
	}

	return config{
		FallbackPolicy:     policy,
		ColumnStrategy:     strategy,
		AccountFilePattern: regexp.MustCompile(pattern),
	}
}
