package fidelity

import (
	"regexp"

	"github.com/spf13/viper"
)

// Match reports whether a file name looks like a Fidelity history export.
func Match(fileName string) (bool, error) {
	pattern, err := regexp.Compile(viper.GetString("statement.FIDELITY.file_regex_pattern"))
	if err != nil {
		return false, err
	}

	return pattern.MatchString(fileName), nil
}
