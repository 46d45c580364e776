// Command aliascheck reports calls that pass a slice together with a
// pointer to one of its elements.
//
//	go vet -vettool=$(which aliascheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/VictorDenisov/scaledown/internal/aliascheck"
)

func main() { singlechecker.Main(aliascheck.Analyzer) }
