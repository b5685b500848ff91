package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"astro-observer/internal/client/guard"

	"github.com/spf13/cobra"
)

func newGalaxyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Galaxy morphology classification",
	}

	classify := &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify a galaxy image into its Galaxy10 morphology class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			infoText.Println("Uploading and classifying...")
			result, err := a.api.ClassifyGalaxy(ctx, args[0])
			if err != nil {
				return err
			}

			successText.Printf("Class %d: %s (%.1f%% confidence)\n",
				result.PredictedClass, result.ClassName, result.Confidence*100)

			type pred struct {
				name string
				p    float64
			}
			preds := make([]pred, 0, len(result.AllPredictions))
			for name, p := range result.AllPredictions {
				preds = append(preds, pred{name, p})
			}
			sort.Slice(preds, func(i, j int) bool { return preds[i].p > preds[j].p })
			for _, p := range preds {
				fmt.Printf("  %6.2f%%  %s\n", p.p*100, p.name)
			}
			return nil
		},
	}

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent classification results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			items, err := a.api.GalaxyHistory(ctx, limit)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Printf("%s  class %d %-32s %.1f%%\n",
					item.CreatedAt.Format("2006-01-02 15:04"),
					item.PredictedClass, item.ClassName, item.Confidence*100)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 0, "number of records (default 20)")

	cmd.AddCommand(classify, history)
	return cmd
}

func newConstellationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constellation",
		Short: "Constellation recognition in sky photos",
	}

	recognize := &cobra.Command{
		Use:   "recognize <image>",
		Short: "Detect constellations in a sky photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			infoText.Println("Uploading and detecting...")
			result, err := a.api.RecognizeConstellation(ctx, args[0])
			if err != nil {
				return err
			}

			if result.Count == 0 {
				infoText.Println("No constellations detected.")
				return nil
			}
			successText.Printf("%d constellation(s) detected, average confidence %.1f%%\n",
				result.Count, result.Confidence*100)
			for _, d := range result.DetectedConstellations {
				fmt.Printf("  %-20s %.1f%%  box (%.0f, %.0f) %gx%g\n",
					d.Class, d.Confidence*100, d.X, d.Y, d.Width, d.Height)
			}
			return nil
		},
	}

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent recognition results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			items, err := a.api.ConstellationHistory(ctx, limit)
			if err != nil {
				return err
			}
			for _, item := range items {
				names := make([]string, 0, len(item.DetectedConstellations))
				for _, d := range item.DetectedConstellations {
					names = append(names, d.Class)
				}
				fmt.Printf("%s  %d found  %v\n",
					item.CreatedAt.Format("2006-01-02 15:04"), len(names), names)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 0, "number of records (default 20)")

	cmd.AddCommand(recognize, history)
	return cmd
}

func newPositioningCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positioning",
		Short: "Plate-solve images into celestial coordinates",
	}

	solve := &cobra.Command{
		Use:   "solve <image>",
		Short: "Solve an image into RA/Dec and field geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			// Solving is slow; allow the request the solver's full wait window.
			ctx, cancel := context.WithTimeout(context.Background(), 6*time.Minute)
			defer cancel()

			infoText.Println("Uploading and solving (this can take a few minutes)...")
			result, err := a.api.SolvePositioning(ctx, args[0])
			if err != nil {
				return err
			}

			if !result.Solved {
				errorText.Println("The field could not be solved.")
				return nil
			}
			successText.Println("Solved!")
			printKeyValue("RA", fmt.Sprintf("%.4f°", *result.Ra))
			printKeyValue("Dec", fmt.Sprintf("%.4f°", *result.Dec))
			printKeyValue("Field", fmt.Sprintf("%.2f° x %.2f°", *result.FieldWidth, *result.FieldHeight))
			printKeyValue("Orientation", fmt.Sprintf("%.2f°", *result.Orientation))
			if result.SolveTime != nil {
				printKeyValue("Solve time", fmt.Sprintf("%.1fs", *result.SolveTime))
			}
			return nil
		},
	}

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent solve attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			items, err := a.api.PositioningHistory(ctx, limit)
			if err != nil {
				return err
			}
			for _, item := range items {
				when := item.CreatedAt.Format("2006-01-02 15:04")
				if item.Solved && item.Ra != nil && item.Dec != nil {
					fmt.Printf("%s  solved  RA %.4f°  Dec %.4f°\n", when, *item.Ra, *item.Dec)
				} else {
					fmt.Printf("%s  unsolved\n", when)
				}
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 0, "number of records (default 20)")

	cmd.AddCommand(solve, history)
	return cmd
}
