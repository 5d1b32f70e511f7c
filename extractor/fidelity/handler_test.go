package fidelity

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	viper.SetConfigName(".fidcsv") // name of config file (without extension)
	viper.SetConfigType("yaml")    // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("../..")   // adjust the path as needed to locate the config file
	err := viper.ReadInConfig()    // Find and read the config file
	assert.NoError(t, err)

	tests := []struct {
		fileName string
		expected bool
	}{
		{"History_for_Account_X72648819.csv", true},
		{"Accounts_History.csv", true},
		{"statement_20231228.pdf", false},
		{"EXPORT.CSV", true},
		{"notes.txt", false},
	}

	for _, test := range tests {
		result, err := Match(test.fileName)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, result, test.fileName)
	}
}
