package main

import (
	"fmt"

	"astro-observer/internal/client/guard"
	"astro-observer/internal/client/render"

	"astro-observer/internal/client/api"

	"github.com/spf13/cobra"
)

func newSpaceEngineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space-engine",
		Short: "Explore your observations in a 3D starfield",
	}

	var dataType string
	view := &cobra.Command{
		Use:   "view",
		Short: "Fly through a starfield seeded with your saved objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			views, err := a.api.SpaceData(ctx, dataType)
			if err != nil {
				return err
			}

			field := render.NewStarfield(220, 42)
			for _, v := range views {
				if v.Ra == nil || v.Dec == nil {
					continue
				}
				name := v.DataType
				if v.CelestialObject != nil {
					name = *v.CelestialObject
				}
				distance := 0.0
				if v.Distance != nil {
					distance = *v.Distance
				}
				field.AddObject(name, *v.Ra, *v.Dec, distance)
			}

			return render.NewViewer(field).Run()
		},
	}
	view.Flags().StringVar(&dataType, "type", "", "only seed objects of this type: galaxy, constellation, positioning")

	var (
		saveType string
		object   string
		ra       float64
		dec      float64
		distance float64
	)
	save := &cobra.Command{
		Use:   "save-view",
		Short: "Bookmark a celestial object for the starfield",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			req := &api.SaveViewRequest{DataType: saveType}
			if object != "" {
				req.CelestialObject = &object
			}
			if cmd.Flags().Changed("ra") {
				req.Ra = &ra
			}
			if cmd.Flags().Changed("dec") {
				req.Dec = &dec
			}
			if cmd.Flags().Changed("distance") {
				req.Distance = &distance
			}

			view, err := a.api.SaveView(ctx, req)
			if err != nil {
				return err
			}
			successText.Printf("Saved view %s\n", view.Id)
			return nil
		},
	}
	save.Flags().StringVar(&saveType, "type", "positioning", "source type: galaxy, constellation, positioning")
	save.Flags().StringVar(&object, "object", "", "object name")
	save.Flags().Float64Var(&ra, "ra", 0, "right ascension in degrees")
	save.Flags().Float64Var(&dec, "dec", 0, "declination in degrees")
	save.Flags().Float64Var(&distance, "distance", 0, "distance in light years")

	data := &cobra.Command{
		Use:   "data",
		Short: "List your saved views",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			views, err := a.api.SpaceData(ctx, dataType)
			if err != nil {
				return err
			}
			for _, v := range views {
				name := "-"
				if v.CelestialObject != nil {
					name = *v.CelestialObject
				}
				coords := "no coordinates"
				if v.Ra != nil && v.Dec != nil {
					coords = fmt.Sprintf("RA %.4f° Dec %.4f°", *v.Ra, *v.Dec)
				}
				fmt.Printf("%s  [%s] %-24s %s\n",
					v.CreatedAt.Format("2006-01-02 15:04"), v.DataType, name, coords)
			}
			return nil
		},
	}
	data.Flags().StringVar(&dataType, "type", "", "filter by source type")

	cmd.AddCommand(view, save, data)
	return cmd
}
