// Command agrilink runs the AgriLink terminal client: a farmer-buyer
// marketplace with persisted sessions and theme preference.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"agrilink/internal/config"
	"agrilink/internal/logging"
	"agrilink/internal/store"
)

var (
	flagConfig  string
	flagDB      string
	flagVerbose bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "agrilink",
	Short: "AgriLink terminal client",
	Long:  "AgriLink connects farmers and buyers for direct crop trading.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if flagDB != "" {
			cfg.Database = flagDB
		}

		logOpts := logging.Options{
			Enabled: cfg.Logging.Enabled,
			File:    cfg.LogFile(),
			Level:   cfg.Logging.Level,
		}
		if flagVerbose {
			logOpts.Enabled = true
			logOpts.Level = "debug"
		}
		if err := logging.Initialize(logOpts); err != nil {
			// Logging trouble never blocks the app; it just stays silent.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()
		defer logging.Sync()

		program := tea.NewProgram(newAppModel(cfg, st), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("app exited with error: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agrilink v%s\n", config.AppVersion)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted session and theme preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		fmt.Printf("database: %s\n", st.Path())

		sess, err := st.LoadSession()
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("session:  none")
		} else {
			fmt.Printf("session:  %s <%s> (%s)\n", sess.Name, sess.Email, sess.Role.Label())
		}

		dark, err := st.LoadTheme()
		if err != nil {
			return err
		}
		switch {
		case dark == nil:
			fmt.Println("theme:    not set (ambient)")
		case *dark:
			fmt.Println("theme:    dark")
		default:
			fmt.Println("theme:    light")
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the persisted session and theme preference",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()

		if err := st.ClearSession(); err != nil {
			return err
		}
		if err := st.ClearTheme(); err != nil {
			return err
		}
		fmt.Println("session and theme cleared")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.agrilink/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (default <data_dir>/agrilink.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd, statusCmd, resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
