package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON",
		Long:  "Export the stored catalog as a JSON document that import accepts. Falls back to the built-in catalog when the database is empty.",
		Run:   runExport,
	}

	catalogCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	doc, err := s.ExportDocument(cmd.Context())
	if errors.Is(err, store.ErrEmptyCatalog) {
		doc = catalog.Default().Document()
	} else if err != nil {
		exitErr("export", err)
	}

	printJSON(doc)
}
