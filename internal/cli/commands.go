package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"Vesselcalc/internal/calc/batch"
	"Vesselcalc/internal/calc/report"
	"Vesselcalc/internal/calc/sizing"
	"Vesselcalc/internal/calc/vessel"

	"github.com/spf13/cobra"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the supported vessel kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tLABEL\tLENGTH\tHEAD DISTANCE")
			for _, o := range vessel.Catalog() {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", o.Kind, o.Label, o.RequiresLength, o.RequiresHeadDistance)
			}
			return tw.Flush()
		},
	}
}

func newCalcCmd() *cobra.Command {
	var (
		vf     vesselFlags
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "calc",
		Short: "Print the datasheet of a vessel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := vf.input(cmd)
			if err != nil {
				return err
			}
			res, err := vessel.Calculate(in)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("calculated", "kind", in.Kind, "volume", res.TotalVolume)
			if res.Notes != "" {
				logger.Warn(res.Notes)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			v, err := vessel.Build(in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), v.String())
			if res.SurgeTime > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %.4f\n", "Surge time:", res.SurgeTime)
			}
			return nil
		},
	}
	vf.register(c)
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of the datasheet")
	return c
}

func newTableCmd() *cobra.Command {
	var (
		vf   vesselFlags
		n    int
		xlsx string
	)
	c := &cobra.Command{
		Use:   "table",
		Short: "Print or export the capacity table of a vessel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 || n > vessel.MaxTablePoints {
				return fmt.Errorf("points must be between 1 and %d", vessel.MaxTablePoints)
			}
			in, err := vf.input(cmd)
			if err != nil {
				return err
			}
			v, err := vessel.Build(in)
			if err != nil {
				return err
			}
			if xlsx != "" {
				f, err := batch.TableWorkbook(v, n)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := f.SaveAs(xlsx); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Info("wrote workbook", "path", xlsx, "rows", n+1)
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "H, m\tH, %\tV, m³\tV, %\tA, m²\tA, %\t")
			for _, row := range v.Table(n) {
				fmt.Fprintf(tw, "%.4f\t%.1f\t%.4f\t%.1f\t%.4f\t%.1f\t\n",
					row.Height, row.HeightFraction*100, row.Volume, row.VolumeFraction*100, row.WettedArea, row.AreaFraction*100)
			}
			return tw.Flush()
		},
	}
	vf.register(c)
	c.Flags().IntVarP(&n, "points", "n", vessel.DefaultTablePoints, "number of height steps")
	c.Flags().StringVar(&xlsx, "xlsx", "", "write the table to this workbook instead of stdout")
	return c
}

func newProfileCmd() *cobra.Command {
	var vf vesselFlags
	c := &cobra.Command{
		Use:   "profile",
		Short: "Print the torispherical head outline as x,y pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := vf.input(cmd)
			if err != nil {
				return err
			}
			res, err := vessel.Profile(in)
			if err != nil {
				return err
			}
			if len(res.Points) == 0 {
				loggerFromContext(cmd.Context()).Warn("no head profile for this kind", "kind", in.Kind)
				return nil
			}
			for _, p := range res.Points {
				fmt.Fprintf(cmd.OutOrStdout(), "%.6f,%.6f\n", p.X, p.Y)
			}
			return nil
		},
	}
	vf.register(c)
	return c
}

func newReportCmd() *cobra.Command {
	var (
		vf     vesselFlags
		in     report.Input
		output string
	)
	c := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF datasheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := vf.input(cmd)
			if err != nil {
				return err
			}
			in.Vessel = v
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := report.Write(f, in, time.Now()); err != nil {
				f.Close()
				os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote report", "path", output)
			return nil
		},
	}
	vf.register(c)
	c.Flags().StringVarP(&output, "output", "o", "vessel.pdf", "PDF file to write")
	c.Flags().StringVar(&in.Project, "project", "", "project name")
	c.Flags().StringVar(&in.Author, "author", "", "author")
	c.Flags().StringVar(&in.Title, "title", "", "document title")
	c.Flags().IntVarP(&in.Points, "points", "n", vessel.DefaultTablePoints, "capacity table steps")
	return c
}

func newSizeCmd() *cobra.Command {
	var (
		in   sizing.AutoInput
		kind string
	)
	c := &cobra.Command{
		Use:   "size",
		Short: "Find the diameter and length that hold a volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Kind = vessel.Kind(kind)
			res, err := sizing.Auto(in)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("sized", "iterations", res.Iterations)
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	c.Flags().StringVarP(&kind, "kind", "k", "", "vessel kind")
	c.Flags().Float64Var(&in.Volume, "volume", 0, "required total volume, m³")
	c.Flags().Float64Var(&in.Ratio, "ratio", sizing.DefaultRatio, "length to diameter ratio")
	c.Flags().Float64Var(&in.ConeRatio, "cone-ratio", sizing.DefaultConeRatio, "conical head depth to diameter ratio")
	_ = c.MarkFlagRequired("kind")
	_ = c.MarkFlagRequired("volume")
	return c
}
