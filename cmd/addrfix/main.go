package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/walletlab/addrfix/internal/ui"
	"github.com/walletlab/addrfix/pkg/repair"
	"github.com/walletlab/addrfix/pkg/repair/ethereum"
	"github.com/walletlab/addrfix/pkg/repair/tron"
)

const (
	version      = "0.1"
	suggestLimit = 30
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 && args[0] == "gen" {
		runGen(args[1:])
		return
	}

	ui.PrintBanner(version)

	if len(args) == 0 {
		// No arguments: read addresses line by line from stdin.
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				checkOne(line)
			}
		}
		return
	}

	for _, addr := range args {
		checkOne(addr)
	}
}

// checkOne validates a single address and, when it is invalid, prints
// ranked repair suggestions.
func checkOne(address string) {
	chain, ok := repair.DetectChain(address)
	if !ok {
		fmt.Printf("  %s? unknown%s  %s %s(no 'T' or '0x' prefix)%s\n",
			ui.ColorYellow+ui.ColorBold, ui.ColorReset, address, ui.ColorDim, ui.ColorReset)
		return
	}

	verdict := repair.Validate(chain, address)
	ui.PrintVerdict(chain, address, verdict)
	if !verdict.Valid {
		ui.PrintSuggestions(address, repair.Suggest(chain, address, suggestLimit))
	}
}

// runGen emits freshly generated sample addresses: `addrfix gen [tron|eth] [count]`.
func runGen(args []string) {
	chain := repair.Tron
	count := 1

	for _, arg := range args {
		switch arg {
		case "tron":
			chain = repair.Tron
		case "eth", "ethereum":
			chain = repair.Ethereum
		default:
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				fmt.Printf("usage: addrfix gen [tron|eth] [count]\n")
				os.Exit(1)
			}
			count = n
		}
	}

	for i := 0; i < count; i++ {
		var (
			addr string
			err  error
		)
		if chain == repair.Tron {
			addr, err = tron.NewAddress()
		} else {
			addr, err = ethereum.NewAddress()
		}
		if err != nil {
			ui.PrintError(err)
			os.Exit(1)
		}
		ui.PrintGenerated(chain, addr)
	}
}
