package cmd

import (
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var expenseFilePath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track personal expenses in a CSV ledger",
	Long: `Expense is a personal expense tracker backed by a flat CSV file.

Run without a subcommand for an interactive session with Add, View,
Track, and Save modes. Subcommands provide one-shot equivalents.`,
	Run: func(_ *cobra.Command, _ []string) {
		runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(resolveExpenseFile)
	rootCmd.PersistentFlags().StringVarP(&expenseFilePath, "file", "f", "", "Expense file. Defaults to $EXPENSE_FILE, then the config file, then expenses.csv.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/expense/config.toml).")
}

// resolveExpenseFile settles the ledger path: flag, then environment
// (a .env file is honored), then config file, then the working directory.
func resolveExpenseFile() {
	godotenv.Load()

	if expenseFilePath == "" {
		expenseFilePath = os.Getenv("EXPENSE_FILE")
	}
	if expenseFilePath == "" {
		if cfg, err := loadConfig(); err == nil {
			expenseFilePath = cfg.File
		}
	}
	if expenseFilePath == "" {
		expenseFilePath = "expenses.csv"
	}
}
