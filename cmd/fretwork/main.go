// Command fretwork generates playable chord voicings for fretted
// instruments: it enumerates every constraint-satisfying placement of a
// chord formula, fingers it, and prints the ranked result.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
