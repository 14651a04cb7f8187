// Command gocc is the connected-components benchmark CLI: it builds a CSR
// graph from a Matrix Market or MATLAB binary file and benchmarks
// sequential BFS against three label-propagation kernels.
package main

import "github.com/katalvlaran/gocc/cmd/gocc/cmd"

func main() {
	cmd.Execute()
}
