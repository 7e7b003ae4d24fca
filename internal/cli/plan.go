package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/export"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an itinerary",
		Long:  "Generate a multi-day itinerary from guest preferences. Optionally write a PDF and one calendar file per day.",
		Run:   runPlan,
	}

	addPrefFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the itinerary to this file instead of stdout")
	cmd.Flags().String("pdf", "", "Write a PDF of the itinerary to this path")
	cmd.Flags().String("ics-dir", "", "Write one .ics calendar file per day into this directory")

	RootCmd.AddCommand(cmd)
}

type planOutput struct {
	planner.SessionSnapshot
	ShareLink string `json:"share_link"`
}

func runPlan(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	pdfPath, _ := cmd.Flags().GetString("pdf")
	icsDir, _ := cmd.Flags().GetString("ics-dir")

	sess := generate(cmd)
	snap := sess.Snapshot()

	link, err := export.ShareLink(cfg.ShareBase, snap.Preferences, snap.Itinerary, snap.Created)
	if err != nil {
		exitErr("share link", err)
	}

	if pdfPath != "" {
		qr, err := export.ShareQR(link, 256)
		if err != nil {
			exitErr("share qr", err)
		}
		var buf bytes.Buffer
		if err := export.PDF(&buf, snap.Itinerary, snap.Preferences, qr); err != nil {
			exitErr("pdf", err)
		}
		if err := os.WriteFile(pdfPath, buf.Bytes(), 0o644); err != nil {
			exitErr("write pdf", err)
		}
		logger.Info("wrote pdf", "path", pdfPath)
	}

	if icsDir != "" {
		if err := os.MkdirAll(icsDir, 0o755); err != nil {
			exitErr("create ics dir", err)
		}
		for _, d := range snap.Itinerary.Days {
			var buf bytes.Buffer
			if err := export.ICS(&buf, d, export.ICSOptions{Stamp: snap.Created}); err != nil {
				exitErr("calendar", err)
			}
			path := filepath.Join(icsDir, export.CalendarFilename(d.Day))
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				exitErr("write calendar", err)
			}
			logger.Info("wrote calendar", "path", path)
		}
	}

	var buf bytes.Buffer
	if formatFlag == "text" {
		if err := export.Text(&buf, snap.Itinerary, snap.Preferences); err != nil {
			exitErr("format", err)
		}
		fmt.Fprintf(&buf, "\nShare: %s\n", link)
	} else {
		b, _ := json.MarshalIndent(planOutput{SessionSnapshot: snap, ShareLink: link}, "", "  ")
		buf.Write(b)
		buf.WriteByte('\n')
	}

	if output == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		exitErr("write output", err)
	}
	fmt.Printf(`{"ok":true,"path":%q}`+"\n", output)
}
