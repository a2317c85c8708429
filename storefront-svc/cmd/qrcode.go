package cmd

import (
	"log"
	"os"

	"menulink/storefront-svc/internal/service"

	"github.com/spf13/cobra"
)

var qrcodeOutput string

var qrcodeCmd = &cobra.Command{
	Use:   "qrcode <username>",
	Short: "Write the storefront QR code as a PNG file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		username := args[0]

		png, err := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}.Generate(username)
		if err != nil {
			log.Fatal("Failed to generate QR code:", err)
		}

		out := qrcodeOutput
		if out == "" {
			out = username + "-qrcode.png"
		}
		if err := os.WriteFile(out, png, 0644); err != nil {
			log.Fatal("Failed to write QR code:", err)
		}
		log.Printf("[storefront-svc] wrote %s", out)
	},
}

func init() {
	qrcodeCmd.Flags().StringVarP(&qrcodeOutput, "output", "o", "", "output file (default <username>-qrcode.png)")
}
