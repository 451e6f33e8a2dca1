// Command matcalc loads matrices from YAML files and applies matrix operators.
//
//	matcalc add a.yaml b.yaml
//	matcalc mul a.yaml b.yaml --width 10
//	matcalc shift a.yaml --by 1.5 --yaml
//	matcalc equal a.yaml b.yaml --eps 1e-6
//
// A file argument of "-" reads the matrix from stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
