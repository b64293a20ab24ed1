// SPDX-License-Identifier: MIT

// Command sparsegen prints deterministic sparse-matrix test fixtures.
//
//	sparsegen addsubtimes -p 4 -q 5 -z 0.3,0.6 -s 7
//	sparsegen matmul3d -b 3 --table
//	sparsegen batch -f fixtures.yaml
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cobra.CheckErr(NewCmd().ExecuteContext(ctx))
}
