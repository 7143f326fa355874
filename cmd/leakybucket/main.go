package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ja7ad/leakybucket/pkg/bucket"
	"github.com/ja7ad/leakybucket/pkg/types"
)

var pretty bool

type opts struct {
	steps int // 0 = run to the end of the forcing series

	csvPath  string
	jsonPath string
}

type row struct {
	Step        int       `json:"step"`
	Time        time.Time `json:"time"`
	Precip      float64   `json:"pr_kg_m2_s"`
	StorageM    float64   `json:"storage_m"`
	DischargeMD float64   `json:"discharge_m_d"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "leakybucket CONFIG",
		Short: "Lumped leaky-bucket hydrological simulation",
		Long: `The leakybucket tool runs a single-storage water balance over a
precipitation series. The config file names the forcing dataset and the model
parameters; each step the model leaks a fixed fraction of its storage as
discharge, reported in m/d.

Examples:
  leakybucket config.yml
  leakybucket --csv out.csv --json out.json --steps 365 config.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args[0])
		},
	}

	root.Flags().BoolVar(&pretty, "pretty", true, "format output as a table instead of CSV-like lines")
	root.Flags().IntVarP(&o.steps, "steps", "s", 0, "number of steps to run (0 = full forcing series)")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-step rows to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-step rows to JSON file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts, configPath string) error {
	model := bucket.New()
	if err := model.Initialize(configPath); err != nil {
		return err
	}

	end := model.EndStep()
	if o.steps > 0 && o.steps < end {
		end = o.steps
	}
	stepDays := model.StepSeconds() / 86400

	runID := uuid.New()
	fmt.Printf(_console, model.GetComponentName(), runID, configPath, model.EndStep(), stepDays)

	var tw *tabwriter.Writer
	if pretty {
		tw = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		printTableHeader(tw)
	} else {
		fmt.Println("# step, time, pr(kg m-2 s-1), storage(m), discharge(m d-1)")
	}

	csvW, csvF, err := openCsv(o.csvPath)
	if err != nil {
		return err
	}
	jsonF, err := openJSON(o.jsonPath)
	if err != nil {
		return err
	}

	// Ctrl-C handling: long multi-year runs should still flush their outputs.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	frc := model.Forcing()
	buf := make([]float64, 1)
	var peakQ float64
	var totalQ types.Depth // discharge volume as depth over the run
	writeN := 0

	for model.CurrentStep() < end {
		if ctx.Err() != nil {
			slog.Info("interrupted", "step", model.CurrentStep())
			break
		}

		i := model.CurrentStep()
		if err := model.Update(); err != nil {
			return err
		}

		r := row{
			Step:   model.CurrentStep(),
			Time:   frc.Times[i],
			Precip: frc.Values[i],
		}
		if _, err := model.GetValue("storage", buf); err != nil {
			return err
		}
		r.StorageM = buf[0]
		if _, err := model.GetValue("discharge", buf); err != nil {
			return err
		}
		r.DischargeMD = buf[0]

		if r.DischargeMD > peakQ {
			peakQ = r.DischargeMD
		}
		totalQ += types.Rate(r.DischargeMD).Over(model.StepSeconds())

		if pretty {
			printTableRow(tw, r)
		} else {
			fmt.Printf("%d, %s, %.6g, %.6f, %.6f\n", r.Step, r.Time.Format(time.RFC3339), r.Precip, r.StorageM, r.DischargeMD)
		}
		if csvW != nil {
			_ = csvW.Write([]string{
				fmt.Sprintf("%d", r.Step),
				r.Time.Format(time.RFC3339),
				fmt.Sprintf("%g", r.Precip),
				fmt.Sprintf("%g", r.StorageM),
				fmt.Sprintf("%g", r.DischargeMD),
			})
			csvW.Flush()
		}
		if jsonF != nil {
			b, _ := json.MarshalIndent(r, "  ", "  ")
			if writeN > 0 {
				_, _ = jsonF.WriteString(",\n")
			}
			_, _ = jsonF.Write(b)
			writeN++
		}
	}

	if csvW != nil {
		csvW.Flush()
	}
	if csvF != nil {
		_ = csvF.Close()
	}
	if jsonF != nil {
		_, _ = jsonF.WriteString("\n]\n")
		_ = jsonF.Close()
	}

	if _, err := model.GetValue("storage", buf); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("run %s done (%d of %d steps):\n", runID, model.CurrentStep(), model.EndStep())
	fmt.Printf("- final storage:    %s\n", types.Depth(buf[0]))
	fmt.Printf("- peak discharge:   %s\n", types.Rate(peakQ))
	fmt.Printf("- total discharge:  %s\n", totalQ)
	fmt.Println()

	return nil
}

func openCsv(path string) (*csv.Writer, *os.File, error) {
	if path == "" {
		return nil, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"step", "time", "pr_kg_m2_s", "storage_m", "discharge_m_d"})
	w.Flush()
	return w, f, nil
}

func openJSON(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	_, _ = f.WriteString("[\n")
	return f, nil
}

func printTableHeader(tw *tabwriter.Writer) {
	fmt.Fprintln(tw, "STEP\tTIME\tpr (kg m-2 s-1)\tstorage (m)\tdischarge (m d-1)")
	fmt.Fprintln(tw, "----\t----\t---------------\t-----------\t-----------------")
	tw.Flush()
}

func printTableRow(tw *tabwriter.Writer, r row) {
	fmt.Fprintf(tw, "%d\t%s\t%.6g\t%.6f\t%.6f\n",
		r.Step, r.Time.Format("2006-01-02 15:04"), r.Precip, r.StorageM, r.DischargeMD)
	tw.Flush()
}

const _console = `Leakybucket - Lumped Water Balance Simulation

       Component: %s
       Run:       %s
       Config:    %s
       Steps:     %d
       Step size: %.3g d

`
