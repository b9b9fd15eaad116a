package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Listing management commands",
	}

	cmd.AddCommand(newListingListCmd())
	cmd.AddCommand(newListingGetCmd())
	cmd.AddCommand(newListingCreateCmd())
	cmd.AddCommand(newListingUpdateCmd())
	cmd.AddCommand(newListingDeleteCmd())

	return cmd
}

func newListingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Listing

			if err := client.Get("/api/listings", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newListingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Listing

			if err := client.Get("/api/listings/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// listingFlags holds the shared create/update flag set
type listingFlags struct {
	title       string
	description string
	kind        string
	status      string
	address     string
	price       float64
	rent        float64
	condoFee    float64
	propertyTax float64
	rooms       int
	bathrooms   int
	area        float64
	amenities   []string
	images      []string
	belowMarket bool
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "Listing description")
	cmd.Flags().StringVar(&f.kind, "kind", "", "Kind: house, apartment, land, commercial")
	cmd.Flags().StringVar(&f.status, "status", "", "Status: available, unavailable, sold, rented")
	cmd.Flags().StringVar(&f.address, "address", "", "Street address")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Sale price")
	cmd.Flags().Float64Var(&f.rent, "rent", 0, "Monthly rent")
	cmd.Flags().Float64Var(&f.condoFee, "condo-fee", 0, "Monthly condo fee")
	cmd.Flags().Float64Var(&f.propertyTax, "property-tax", 0, "Yearly property tax")
	cmd.Flags().IntVar(&f.rooms, "rooms", 0, "Number of rooms")
	cmd.Flags().IntVar(&f.bathrooms, "bathrooms", 0, "Number of bathrooms")
	cmd.Flags().Float64Var(&f.area, "area", 0, "Area in square meters")
	cmd.Flags().StringSliceVar(&f.amenities, "amenities", nil, "Comma-separated amenities")
	cmd.Flags().StringSliceVar(&f.images, "images", nil, "Comma-separated image URLs")
	cmd.Flags().BoolVar(&f.belowMarket, "below-market", false, "Mark as below market price")
}

func (f *listingFlags) body() map[string]any {
	return map[string]any{
		"title":        f.title,
		"description":  f.description,
		"kind":         f.kind,
		"status":       f.status,
		"address":      f.address,
		"price":        f.price,
		"rent":         f.rent,
		"condo_fee":    f.condoFee,
		"property_tax": f.propertyTax,
		"rooms":        f.rooms,
		"bathrooms":    f.bathrooms,
		"area":         f.area,
		"amenities":    f.amenities,
		"images":       f.images,
		"below_market": f.belowMarket,
	}
}

func newListingCreateCmd() *cobra.Command {
	flags := &listingFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing (broker or admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.title == "" || flags.address == "" {
				return fmt.Errorf("--title and --address are required")
			}

			var result Listing

			if err := client.Post("/api/listings", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newListingUpdateCmd() *cobra.Command {
	flags := &listingFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a listing (broker or admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.title == "" || flags.address == "" {
				return fmt.Errorf("--title and --address are required")
			}

			var result Listing

			if err := client.Put("/api/listings/"+args[0], flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newListingDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing (broker or admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/listings/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("listing deleted")
			return nil
		},
	}
}
