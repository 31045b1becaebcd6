package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/payroll-management/internal/importer"
	"github.com/spf13/cobra"
)

var (
	importUpdateExisting bool
	importCreateMissing  bool
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import employees from a CSV or JSON export",
	Long: `Merge an external employee batch into the store. Records are matched
by exact full name; the two policy flags decide whether matches are
updated and misses created.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		svc, err := buildServices(cfg)
		if err != nil {
			log.Fatalf("failed to init services: %v", err)
		}

		result, err := svc.importer.ImportFile(args[0], importer.Options{
			UpdateExisting: importUpdateExisting,
			CreateMissing:  importCreateMissing,
		})
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}

		fmt.Printf("Import finished: %d created, %d updated\n", result.CreatedCount, result.UpdatedCount)
	},
}

func init() {
	importCmd.Flags().BoolVar(&importUpdateExisting, "update-existing", true, "overwrite matched records with imported fields")
	importCmd.Flags().BoolVar(&importCreateMissing, "create-missing", true, "create records for unmatched names")
}
