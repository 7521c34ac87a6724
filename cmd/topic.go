package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Go2Engle/EtsyTrackr/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `etr topic [<topic>...]

  Shows documentation for the given topics, or the topic index.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	var b strings.Builder
	for _, name := range names {
		content, err := docs.Topic(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
