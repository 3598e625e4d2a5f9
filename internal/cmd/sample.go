package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/sample"
	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
	"github.com/Annamarie223sd/WhatsAppTest/internal/timeline"
)

var (
	sampleOutput string
	sampleRandom int
)

var sampleCmd = &cobra.Command{
	Use:   "sample [script.json]",
	Short: "Generate a demo conversation or append random messages",
	Long: `Generates the built-in five-message demo conversation. With --output
the conversation is written as a chat script for later editing and
rendering; without it the rendered transcript goes to stdout.

With --random N and a script argument, N random canned messages are
appended to that script instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Write the conversation as a chat script instead of rendering it")
	sampleCmd.Flags().IntVarP(&sampleRandom, "random", "n", 0, "Append this many random messages to the given script")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	r, err := newRenderer(format)
	if err != nil {
		return err
	}
	svc := newService(r)

	if sampleRandom > 0 {
		if len(args) != 1 {
			return fmt.Errorf("--random needs a script file to append to")
		}
		msgs := make([]domain.Message, 0, sampleRandom)
		for i := 0; i < sampleRandom; i++ {
			msgs = append(msgs, sample.RandomMessage(time.Now()))
		}
		if err := svc.AppendMessages(args[0], msgs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Appended %d random message(s) to %s\n", sampleRandom, args[0])
		return nil
	}

	chat := sample.Conversation(time.Now())

	if sampleOutput != "" {
		if err := svc.WriteScript(sampleOutput, svc.DefaultContact, chat); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sample script written to %s\n", sampleOutput)
		return nil
	}

	items := timeline.Compose(chat.Messages, time.Now())
	return r.Render(os.Stdout, svc.DefaultContact, items)
}
