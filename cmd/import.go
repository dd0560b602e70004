package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/polski/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import concepts from an .xlsx or .csv file",
	Long: `Imports concepts, concept groups and course mappings from a spreadsheet.
Column layout comes from the "import" section of the config file. Concepts
are matched by name, so re-importing a file does not create duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		startRow, _ := cmd.Flags().GetInt("start-row")

		cfg := appCfg.Import
		if sheet != "" {
			cfg.Sheet = sheet
		}
		if startRow > 0 {
			cfg.StartRow = startRow
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		im := importer.New(st.ConceptRepo(), st.GroupRepo(), st.CourseRepo(), appLog)
		res, err := im.ImportFile(cmd.Context(), args[0], cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Rows processed:   %d\n", res.Processed)
		fmt.Printf("Concepts created: %d\n", res.Created)
		fmt.Printf("Already present:  %d\n", res.Existing)
		fmt.Printf("Groups updated:   %d\n", res.Groups)
		fmt.Printf("Course links:     %d\n", res.CourseLinks)
		if len(res.Errors) > 0 {
			fmt.Printf("\n%d rows skipped:\n", len(res.Errors))
			for _, e := range res.Errors {
				fmt.Println("  " + e)
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	importCmd.Flags().Int("start-row", 0, "First data row, 1-based (default from config)")
}
