package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"farmdesk/entities"
	"farmdesk/pkg/client"
	"farmdesk/pkg/dialog"
)

func createSupervisorCmd(a *app, c collection[entities.Supervisor]) *cobra.Command {
	var (
		data      string
		photoPath string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a supervisor from JSON, optionally uploading a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			seed := c.seed()
			if err := decodeInput(cmd, data, &seed); err != nil {
				return err
			}
			ctl := c.controller(a)
			up := client.NewUploader(a.api, a.cfg.S3.Bucket, a.cfg.S3.Region)
			d := dialog.NewSupervisor(ctl, up)
			d.OpenCreate(seed)

			if photoPath != "" {
				f, err := os.Open(photoPath)
				if err != nil {
					return fmt.Errorf("open photo: %w", err)
				}
				defer f.Close()
				if err := d.AttachPhoto(filepath.Base(photoPath), photoContentType(photoPath), f); err != nil {
					return err
				}
			}

			out, err := d.Confirm(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created supervisor %d\n", out.ID)
			if out.PhotoURL != "" {
				fmt.Fprintf(a.out, "photo: %s\n", out.PhotoURL)
			}
			c.render(a, ctl.Items())
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON record, @file or - for stdin")
	cmd.Flags().StringVar(&photoPath, "photo", "", "Photo file to upload into photo_url")
	return cmd
}

func photoContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
