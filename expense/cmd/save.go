package cmd

import (
	"fmt"
	"log"

	"github.com/howeyc/expense"
	"github.com/spf13/cobra"
)

const defaultExportName = "my_expenses.csv"

var compressSnapshot bool

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save [output-file]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Export the ledger to a CSV file of your choosing",
	Run: func(_ *cobra.Command, args []string) {
		outName := defaultExportName
		if len(args) > 0 {
			outName = args[0]
		}

		ledger, err := loadLedger()
		if err != nil {
			log.Fatalln(err)
		}
		if ledger.Size() == 0 {
			fmt.Println("No valid expenses to export yet.")
			return
		}

		if err := expense.ExportFile(outName, ledger.Records()); err != nil {
			log.Fatalln("Error saving expenses:", err)
		}
		fmt.Printf("Exported %d expenses to %s\n", ledger.Size(), outName)

		if compressSnapshot {
			snapName, err := expense.WriteSnapshot(outName, ledger.Records())
			if err != nil {
				log.Fatalln("Error writing snapshot:", err)
			}
			fmt.Println("Wrote compressed snapshot", snapName)
		}
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().BoolVar(&compressSnapshot, "compress", false, "Also write a brotli-compressed snapshot alongside the export.")
}
