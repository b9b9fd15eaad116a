package cli

import (
	"github.com/spf13/cobra"
)

func newGeocodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geocode",
		Short: "Address geocoding commands",
	}

	cmd.AddCommand(newGeocodeSearchCmd())
	cmd.AddCommand(newGeocodeReverseCmd())

	return cmd
}

func newGeocodeSearchCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Resolve an address to coordinates",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"address": address}
			var result GeocodeResult

			if err := client.Post("/api/geocode", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Address to geocode (required)")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newGeocodeReverseCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Resolve coordinates to an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]float64{"latitude": lat, "longitude": lon}
			var result GeocodeResult

			if err := client.Post("/api/geocode/reverse", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (required)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude (required)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
