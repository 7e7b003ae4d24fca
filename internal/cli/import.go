package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored catalog from JSON",
		Long:  "Replace the stored catalog with a JSON document (file or stdin) in the format produced by export. Use --builtin to seed the built-in Rio Nido catalog.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	cmd.Flags().Bool("builtin", false, "Import the built-in catalog")

	catalogCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	builtin, _ := cmd.Flags().GetBool("builtin")

	var doc catalog.Document
	if builtin {
		doc = catalog.Default().Document()
	} else {
		var (
			data []byte
			err  error
		)
		if len(args) > 0 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			exitErr("read input", err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			exitErr("parse json", err)
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.ImportDocument(cmd.Context(), doc)
	if err != nil {
		exitErr("import", err)
	}
	logger.Info("catalog imported", "db", getDBPath(), "businesses", imported)

	fmt.Printf(`{"ok":true,"imported":%d,"signatures":%d}`+"\n", imported, len(doc.Signatures))
}
