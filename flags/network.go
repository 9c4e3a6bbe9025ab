package flags

import (
	cli "gopkg.in/urfave/cli.v1"
)

// NetworkFlags covers deployment selection and epoch replay options.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network deployment to run against (main|test|devnet|dev)",
			Value: "dev",
		},
		cli.Uint64Flag{
			Name:  "epoch.target",
			Usage: "Epoch to synchronize the state up to after genesis",
		},
		cli.BoolFlag{
			Name:  "epoch.replay",
			Usage: "Step through every epoch up to epoch.target instead of jumping via restore semantics",
		},
		cli.IntFlag{
			Name:  "genesis.validators",
			Usage: "Number of generated validators for development genesis",
			Value: 3,
		},
	}
}
