package capability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

const pathToken = "{path}"

// CommandAudio records and plays audio by running external programs, e.g.
// "ffmpeg -y -f pulse -i default {path}" and "ffplay -nodisp -autoexit {path}".
// The {path} token is replaced by the file path, or the path is appended
// when the token is absent. Empty commands report ErrUnsupported.
type CommandAudio struct {
	recordArgs []string
	playArgs   []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

func NewCommandAudio(recordCommand, playCommand string) *CommandAudio {
	return &CommandAudio{
		recordArgs: strings.Fields(recordCommand),
		playArgs:   strings.Fields(playCommand),
	}
}

func expand(args []string, path string) []string {
	out := make([]string, 0, len(args)+1)
	replaced := false
	for _, a := range args {
		if strings.Contains(a, pathToken) {
			a = strings.ReplaceAll(a, pathToken, path)
			replaced = true
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, path)
	}
	return out
}

func (a *CommandAudio) Start(ctx context.Context, path string) error {
	if len(a.recordArgs) == 0 {
		return ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil {
		return errors.New("recording already in progress")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}

	args := expand(a.recordArgs, path)
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start recorder: %w", err)
	}
	a.cmd = cmd

	return nil
}

func (a *CommandAudio) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd == nil {
		return ErrNotRecording
	}
	cmd := a.cmd
	a.cmd = nil

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		_ = cmd.Process.Kill()
	}
	// the recorder exits because we signalled it
	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("stop recorder: %w", err)
	}

	return nil
}

func (a *CommandAudio) Recording() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cmd != nil
}

func (a *CommandAudio) Play(ctx context.Context, path string) error {
	if len(a.playArgs) == 0 {
		return ErrUnsupported
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("play %s: %w", path, err)
	}

	args := expand(a.playArgs, path)
	if err := exec.CommandContext(ctx, args[0], args[1:]...).Run(); err != nil {
		return fmt.Errorf("play %s: %w", path, err)
	}
	return nil
}
