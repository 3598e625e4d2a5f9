package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/exporter"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/renderer"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/script"
	"github.com/Annamarie223sd/WhatsAppTest/internal/app"
	"github.com/Annamarie223sd/WhatsAppTest/internal/domain"
)

var (
	fromStr string
	toStr   string
	output  string
	format  string
	width   int
)

var rootCmd = &cobra.Command{
	Use:   "wamock <script.json>",
	Short: "Render mock WhatsApp chat transcripts",
	Long: `wamock composes a synthetic chat transcript from a chat script
(a JSON file describing the contact and the messages) and renders it
as plain text, markdown or styled terminal output. No real messages
are sent anywhere; everything is generated locally.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&fromStr, "from", "", `Start time filter (format: "YYYY-MM-DD" or "YYYY-MM-DD HH:MM")`)
	rootCmd.Flags().StringVar(&toStr, "to", "", `End time filter (format: "YYYY-MM-DD" or "YYYY-MM-DD HH:MM")`)
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", `Output format: "text", "markdown" or "ansi"`)
	rootCmd.PersistentFlags().IntVar(&width, "width", renderer.DefaultWidth, "Layout width for the ansi format")
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Clean(filepath.Join(configHome, app.ApplicationName))
}

func initConfig() {
	dir := configDir()

	if _, err := os.Stat(dir); os.IsNotExist(err) { //nolint:gosec // path is constructed from XDG_CONFIG_HOME or user home dir
		err = os.MkdirAll(dir, 0750) //nolint:gosec // see above
		cobra.CheckErr(err)
	}

	viper.AddConfigPath(dir)
	viper.SetConfigType("json")
	viper.SetConfigName("config")

	viper.SetDefault("contact.name", "联系人名称")
	viper.SetDefault("format", "text")

	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	viper.AutomaticEnv()

	// Silently ignore missing config file
	_ = viper.ReadInConfig()
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// newRenderer picks the renderer for the requested format, falling back to
// the configured default.
func newRenderer(format string) (app.Renderer, error) {
	if format == "" {
		format = viper.GetString("format")
	}
	switch format {
	case "", "text":
		return &renderer.TextRenderer{}, nil
	case "markdown":
		return &renderer.TextRenderer{Markdown: true}, nil
	case "ansi":
		return &renderer.ANSIRenderer{Width: width}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected text, markdown or ansi)", format)
	}
}

func newService(r app.Renderer) *app.ChatService {
	log := newLogger()
	svc := app.NewChatService(script.NewParser(log), r, exporter.JSONExporter{}, log)
	svc.DefaultContact = domain.Contact{
		Name:         viper.GetString("contact.name"),
		Avatar:       viper.GetString("contact.avatar"),
		Status:       viper.GetString("contact.status"),
		CustomStatus: viper.GetString("contact.custom_status"),
	}
	svc.MyAvatar = viper.GetString("my_avatar")
	return svc
}

func runRoot(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	from, err := parseTime(fromStr)
	if err != nil {
		return fmt.Errorf("parsing --from: %w", err)
	}

	to, err := parseTime(toStr)
	if err != nil {
		return fmt.Errorf("parsing --to: %w", err)
	}

	// If --to is date-only, set to end of day
	if to != nil && !strings.Contains(toStr, " ") {
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		to = &endOfDay
	}

	r, err := newRenderer(format)
	if err != nil {
		return err
	}
	svc := newService(r)

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return svc.Process(scriptPath, from, to, w)
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02",
	}

	for _, f := range formats {
		t, err := time.ParseInLocation(f, s, time.Local)
		if err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unknown time format: %q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}
