// Package ui holds the console output helpers for the addrfix command.
// All rendering lives here; the repair engine itself never prints.
package ui

import (
	"fmt"

	"github.com/walletlab/addrfix/pkg/repair"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// PrintBanner shows the tool header.
func PrintBanner(version string) {
	fmt.Printf("%s%saddrfix%s %s• wallet address checker & repair • v%s%s\n\n",
		ColorCyan, ColorBold, ColorReset, ColorDim, version, ColorReset)
}

// PrintVerdict displays the validation result for one address.
func PrintVerdict(chain repair.Chain, address string, v repair.Verdict) {
	switch {
	case v.Valid && v.Degraded:
		fmt.Printf("  %s~ shape ok%s  %s %s(%s, checksum not verified)%s\n",
			ColorYellow+ColorBold, ColorReset, address, ColorDim, chain, ColorReset)
	case v.Valid:
		fmt.Printf("  %s✓ valid%s    %s %s(%s)%s\n",
			ColorGreen+ColorBold, ColorReset, address, ColorDim, chain, ColorReset)
	default:
		fmt.Printf("  %s✗ invalid%s  %s %s(%s: %s)%s\n",
			ColorRed+ColorBold, ColorReset, address, ColorDim, chain, v.Reason, ColorReset)
	}
}

// PrintSuggestions displays ranked repair candidates for an invalid
// address, or a note when nothing could be repaired.
func PrintSuggestions(input string, candidates []string) {
	if len(candidates) == 0 {
		fmt.Printf("    %sno repair candidates found — address too damaged%s\n", ColorDim, ColorReset)
		return
	}
	fmt.Printf("    %sdid you mean:%s\n", ColorYellow, ColorReset)
	for i, c := range candidates {
		fmt.Printf("    %s[%d]%s %s %s(distance %d)%s\n",
			ColorCyan, i+1, ColorReset, c, ColorDim, repair.EditDistance(input, c), ColorReset)
	}
}

// PrintGenerated displays a freshly generated sample address.
func PrintGenerated(chain repair.Chain, address string) {
	fmt.Printf("  %s%s%s %s(%s)%s\n", ColorBold, address, ColorReset, ColorDim, chain, ColorReset)
}

// PrintError displays an error message.
func PrintError(err error) {
	fmt.Printf("  %s✗ %v%s\n", ColorRed, err, ColorReset)
}
