package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobeyondidentity/ringlink/internal/sim"
	"github.com/gobeyondidentity/ringlink/pkg/clierror"
)

var (
	cycles    int
	seed      int64
	drainAll  bool
	traceFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation",
	Long: `Run a scripted simulation of the host/chip link.

Defaults mirror the hardware bring-up script: 4KB rings, 50 cycles, two
packets injected at cycle 0, a periodic host send every 10 cycles, and a
coin-flip RX generator on the device. A YAML config (--config) overrides
any of it; the flags below override the config in turn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sim.DefaultConfig()
		if configPath != "" {
			var err error
			cfg, err = sim.LoadConfig(configPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return clierror.ConfigNotFound(configPath)
				}
				return clierror.ConfigInvalid(configPath, err)
			}
		}
		if cmd.Flags().Changed("cycles") {
			cfg.Cycles = cycles
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cmd.Flags().Changed("drain-all") {
			cfg.DrainAll = drainAll
		}

		var rec *sim.Recorder
		if traceFile != "" {
			var err error
			rec, err = sim.NewRecorder(traceFile)
			if err != nil {
				return clierror.TraceIO(traceFile, err)
			}
		}

		var out io.Writer
		if !quiet {
			out = os.Stdout
		}
		tracer := sim.NewTracer(out, noColor, rec)

		s, err := sim.New(cfg, sim.WithTracer(tracer))
		if err != nil {
			return err
		}
		stats, err := s.Run()
		if err != nil {
			return err
		}
		if rec != nil {
			if err := rec.Close(); err != nil {
				return clierror.TraceIO(traceFile, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "cycles:            %d\n", stats.Cycles)
		fmt.Fprintf(cmd.OutOrStdout(), "host sent:         %d (%d rejected)\n", stats.HostSent, stats.HostSendRejected)
		fmt.Fprintf(cmd.OutOrStdout(), "device drained:    %d\n", stats.DeviceDrained)
		fmt.Fprintf(cmd.OutOrStdout(), "device generated:  %d (%d skipped)\n", stats.DeviceGenerated, stats.DeviceGenSkipped)
		fmt.Fprintf(cmd.OutOrStdout(), "host received:     %d frames, %d bytes\n", stats.HostReceived, stats.HostBytesReceived)
		fmt.Fprintf(cmd.OutOrStdout(), "interrupts:        rx_ready=%d tx_space=%d error=%d\n",
			stats.InterruptsRxReady, stats.InterruptsTxSpace, stats.InterruptsError)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&cycles, "cycles", 50, "Number of simulation cycles")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "Traffic generator seed")
	runCmd.Flags().BoolVar(&drainAll, "drain-all", false, "Device drains TX exhaustively instead of one frame per cycle")
	runCmd.Flags().StringVar(&traceFile, "trace-file", "", "Record a CBOR event trace to this file")
	rootCmd.AddCommand(runCmd)
}
