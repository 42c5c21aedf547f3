package lint

import (
	"strings"

	cli "github.com/urfave/cli/v3"

	"fncase/common"
)

// Flags returns command line flags "check" command understands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "expectation", Aliases: []string{"e"},
			Usage: "expected function name `CASE`, overrides configuration (" + strings.Join(common.ExpectationNames(), ", ") + ")"},
		&cli.StringSliceFlag{Name: "ignore-function", Aliases: []string{"i"},
			Usage: "do not check function `NAME`, \"/regex/\" or \"/regex/i\" are accepted, may be repeated"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: common.OutputFmtText.String(),
			Usage: "results `FORMAT` (" + strings.Join(common.OutputFmtNames(), ", ") + ")"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write results to `FILE` instead of STDOUT"},
		&cli.StringFlag{Name: "force-zip-cp",
			Usage: "Force `ENCODING` for ALL non UTF-8 file names in processed archives (see IANA.org for character set names)"},
	}
}
