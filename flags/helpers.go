package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the base CLI application shared by solstice commands.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "solstice"
	app.Usage = "Solstice ledger node"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	return app
}
