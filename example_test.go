package palinscan_test

import (
	"context"
	"fmt"

	palinscan "github.com/bft-labs/palinscan"
)

// P(3) is 6643: 100010001 in base 3 and 1100111110011 in base 2.
func ExampleP() {
	pn, err := palinscan.P(context.Background(), 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(pn)
	// Output: 6643
}

func ExampleRun() {
	cfg := palinscan.DefaultConfig()
	cfg.Target = 1_000_000 // stop early instead of running to one quadrillion
	cfg.Quiet = true
	if err := palinscan.Run(context.Background(), cfg); err != nil {
		panic(err)
	}
	// Output:
}
