// Command cgraph builds a fixed-size bit-packed graph from flags, environment
// or a TOML file, optionally complements it, and prints its adjacency rows
// and a short summary.
//
//	cgraph -n 6 -t cycle -c
//	cgraph -n 4 -e "0-1,2-3" -q
//	CGRAPH_TOPOLOGY=random CGRAPH_PROBABILITY=0.3 cgraph -n 16
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
