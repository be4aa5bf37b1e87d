package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/trace"
)

// ReplayCmd replays recorded gesture traces against a fresh swipe controller
type ReplayCmd struct {
	Paths []string `arg:"" help:"Trace files (YAML)" type:"existingfile"`
	Quiet bool     `help:"Only print mismatches" short:"q"`
}

// Run executes the replay command
func (r *ReplayCmd) Run(cli *CLI) error {
	return r.replay(os.Stdout)
}

func (r *ReplayCmd) replay(out io.Writer) error {
	var failed int
	for _, path := range r.Paths {
		ok, err := r.replayFile(out, path)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d traces did not match their expectations", failed, len(r.Paths))
	}
	return nil
}

func (r *ReplayCmd) replayFile(out io.Writer, path string) (bool, error) {
	f, err := trace.Load(path)
	if err != nil {
		return false, err
	}

	result, err := trace.Replay(f)
	if err != nil {
		return false, fmt.Errorf("failed to replay %s: %w", path, err)
	}

	if !r.Quiet {
		fmt.Fprintf(out, "# %s (%s)\n", f.Name, path)
		for _, line := range result.Log {
			fmt.Fprintln(out, line)
		}
		for _, call := range result.Calls {
			fmt.Fprintf(out, "callback %s at %s\n", call.Direction, call.At)
		}
		fmt.Fprintf(out, "phase %s\n", result.Phase)
	}

	diff := f.Verify(result)
	if diff == "" {
		logging.Logger.Debug("Trace matched", "path", path)
		return true, nil
	}

	logging.Logger.Warn("Trace mismatch", "path", path)
	fmt.Fprintf(out, "MISMATCH %s (-want +got):\n%s\n", path, diff)
	return false, nil
}
