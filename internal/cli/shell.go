package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/internal/checksum"
	"github.com/vvka-141/vshell/internal/config"
	"github.com/vvka-141/vshell/internal/files/filesystem"
	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/internal/script"
	"github.com/vvka-141/vshell/internal/shell"
	"github.com/vvka-141/vshell/internal/tui"
	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// sessionIO carries the streams of one shell session.
type sessionIO struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
}

func runShell(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	flags := config.SessionConfig{
		Username:      shellFlags.username,
		Hostname:      shellFlags.hostname,
		VFSPath:       shellFlags.vfsPath,
		StartupScript: shellFlags.script,
	}
	cfg, err := config.Resolve(flags, shellFlags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	sio := sessionIO{
		in:          cmd.InOrStdin(),
		out:         cmd.OutOrStdout(),
		errOut:      cmd.ErrOrStderr(),
		interactive: !shellFlags.plain && tui.IsInteractive(),
	}
	return runSession(cfg, sio, verbose)
}

// runSession opens the archive, replays the startup script and then serves
// input until exit or end of input.
func runSession(cfg config.SessionConfig, sio sessionIO, verbose bool) error {
	logger := logging.NewConsoleLogger(sio.errOut, verbose).With("session", uuid.NewString())

	archive, err := filesystem.OpenZip(cfg.VFSPath)
	if err != nil {
		return fmt.Errorf("%w: %v", vshell.ErrArchiveOpen, err)
	}
	defer archive.Close()

	logFingerprint(logger, checksum.New(), archive)

	index := vfs.NewIndex(archive)
	logger.Verbose("indexed %d entries from %s", index.Len(), archive.Path())

	var (
		display vshell.Display
		buffer  *tui.BufferDisplay
	)
	if sio.interactive {
		buffer = &tui.BufferDisplay{}
		display = buffer
	} else {
		display = tui.NewWriterDisplay(sio.out)
	}

	interp := shell.NewInterpreter(
		shell.Identity{Username: cfg.Username, Hostname: cfg.Hostname},
		shell.NewSession(index, nil),
		display,
		shell.WithLogger(logger),
	)

	res := replayStartupScript(interp, display, cfg.StartupScript, logger)
	if buffer != nil && buffer.Len() > 0 {
		fmt.Fprintln(sio.out, buffer.Flush())
	}
	if res.Exit {
		logger.Verbose("startup script ended the session")
		return nil
	}

	if sio.interactive {
		return tui.RunREPL(interp, buffer, sio.in, sio.out)
	}
	return tui.RunLines(sio.in, interp)
}

// replayStartupScript runs the script at path through interp. A missing
// script is reported on the display and the session continues.
func replayStartupScript(interp *shell.Interpreter, display vshell.Display, path string, logger vshell.Logger) shell.Result {
	lines, err := script.Load(filesystem.NewOSFileSystem(), path)
	if err != nil {
		var missing *script.MissingResourceError
		if errors.As(err, &missing) {
			display.Append(missing.Error())
		} else {
			logger.Error("startup script: %v", err)
		}
		return shell.Result{}
	}
	if len(lines) == 0 {
		return shell.Result{}
	}

	logger.Verbose("replaying %d startup lines from %s", len(lines), path)
	return interp.Replay(lines)
}

// logFingerprint logs the listing and content checksums of archive.
// Fingerprint failures are logged and never end the session.
func logFingerprint(logger vshell.Logger, calc checksum.Calculator, archive *filesystem.ZipFileSystem) {
	logger.Verbose("archive listing fingerprint: %s", calc.CalculateNames(archive.Names()))

	f, err := os.Open(archive.Path())
	if err != nil {
		logger.Verbose("archive fingerprint unavailable: %v", err)
		return
	}
	defer f.Close()

	sum, err := calc.CalculateReader(f)
	if err != nil {
		logger.Verbose("archive fingerprint unavailable: %v", err)
		return
	}
	logger.Verbose("mounted %s (sha256 %s)", archive.Path(), sum)
}
