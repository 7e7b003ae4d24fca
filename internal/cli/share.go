package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/export"
)

func init() {
	cmd := &cobra.Command{
		Use:   "share [link]",
		Short: "Decode a share link",
		Long:  "Decode the itinerary summary carried by a share link or its bare token.",
		Args:  cobra.ExactArgs(1),
		Run:   runShare,
	}

	cmd.Flags().String("qr", "", "Also write the link as a PNG QR code to this path")

	RootCmd.AddCommand(cmd)
}

func runShare(cmd *cobra.Command, args []string) {
	qrPath, _ := cmd.Flags().GetString("qr")
	link := strings.TrimSpace(args[0])

	p, err := export.DecodeShare(link)
	if err != nil {
		exitErr("decode share", err)
	}

	if qrPath != "" {
		png, err := export.ShareQR(link, 256)
		if err != nil {
			exitErr("share qr", err)
		}
		if err := os.WriteFile(qrPath, png, 0o644); err != nil {
			exitErr("write qr", err)
		}
	}

	if formatFlag == "text" {
		created := time.UnixMilli(p.Timestamp).Format(time.RFC1123)
		fmt.Printf("%s: %d days, %s, interests %v (shared %s)\n", p.Guest, p.Days, p.Style, p.Interests, created)
		return
	}
	printJSON(p)
}
