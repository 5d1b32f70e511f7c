package extractor

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aqlanhadi/fidcsv/extractor/common"
	"github.com/aqlanhadi/fidcsv/extractor/fidelity"
)

// ExecuteAgainstPath extracts one file or every matching file in a
// directory and prints the result as JSON on stdout.
func ExecuteAgainstPath(path string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		result := []common.Statement{}

		log.Println("📂 Scanning ", path)
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Fatal(err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			matched, err := fidelity.Match(e.Name())
			if err != nil || !matched {
				continue
			}

			statement := processFile(filepath.Join(path, e.Name()))
			if len(statement.Transactions) > 0 {
				result = append(result, statement)
			}
		}

		asJSON, _ := json.Marshal(result)
		fmt.Println(string(asJSON))
		return
	}

	log.Println("📄 Scanning ", path)
	result := processFile(path)

	if len(result.Transactions) < 1 {
		emptyJSON, _ := json.Marshal(struct{}{})
		fmt.Println(string(emptyJSON))
		return
	}

	asJSON, _ := json.Marshal(result)
	fmt.Println(string(asJSON))
}

func processFile(filePath string) common.Statement {
	file, err := os.Open(filePath)
	if err != nil {
		log.Printf("Warning: could not open %s: %v", filePath, err)
		return common.Statement{}
	}
	defer file.Close()

	return ProcessReader(file, filePath)
}

// ProcessReader extracts a statement from an already opened CSV source.
func ProcessReader(reader io.Reader, filename string) common.Statement {
	log.Println("\t📄 Extracting FIDELITY transactions from ", filename)
	statement, err := fidelity.Extract(reader, filename)
	if err != nil {
		log.Printf("Warning: extraction aborted for %s: %v", filename, err)
		return common.Statement{}
	}
	return statement
}

// CreateFinalOutput shapes the extraction result for serialization.
func CreateFinalOutput(result common.Statement, transactionOnly bool, statementOnly bool) interface{} {
	if transactionOnly {
		return result.Transactions
	}
	if statementOnly {
		trimmed := result
		trimmed.Transactions = nil
		return trimmed
	}
	return result
}
