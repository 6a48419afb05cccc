package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/On-Jun9/ShutterStamp/internal/config"
	"github.com/On-Jun9/ShutterStamp/internal/pipeline"
	"github.com/On-Jun9/ShutterStamp/internal/transfer"
	"github.com/On-Jun9/ShutterStamp/pkg/types"
	"github.com/spf13/cobra"
)

var (
	appVersion     = "0.1.0"
	cfgFile        string
	input          string
	output         string
	jpgOnly        bool
	debug          bool
	dryRun         bool
	maxDimension   int
	jpegQuality    int
	captureTime    bool
	matchMode      string
	imageExt       []string
	videoExt       []string
	conflictPolicy string
	verifyCopies   bool
	hashVerify     bool
	logFile        string
	logJSON        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shutterstamp -i INPUT -o OUTPUT [-j]",
	Short: "Rename and resize photos into timestamped files ready for upload",
	Long: `ShutterStamp copies images and videos from an input directory into an
output directory under names built from the current time (YYYYMONDDTHHMMSS),
so a photo-sharing site lists them in the order they were processed.
Images are resized on the way; videos are copied as-is.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runProcess,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file path")
	flags.StringVarP(&input, "input", "i", "", "input source directory")
	flags.StringVarP(&output, "output", "o", "", "output destination directory")
	flags.BoolVarP(&jpgOnly, "jpg", "j", false, "process only .jpg/.JPG files")
	flags.BoolVarP(&debug, "debug", "d", false, "print debug messages")
	flags.BoolVar(&dryRun, "dry-run", false, "simulate without writing")
	flags.IntVar(&maxDimension, "max-dimension", 0, "longest edge of resized images in pixels (0=no resize)")
	flags.IntVar(&jpegQuality, "quality", 0, "JPEG quality of resized images (1-100)")
	flags.BoolVar(&captureTime, "capture-time", false, "name images by EXIF capture time when present")
	flags.StringVar(&matchMode, "match", "", "extension matching: substring, suffix")
	flags.StringSliceVar(&imageExt, "image-ext", nil, "image extensions")
	flags.StringSliceVar(&videoExt, "video-ext", nil, "video extensions")
	flags.StringVar(&conflictPolicy, "conflict", "", "existing name policy: overwrite, skip, rename")
	flags.BoolVar(&verifyCopies, "verify", false, "check copied file sizes")
	flags.BoolVar(&hashVerify, "hash-verify", false, "check copied file hashes")
	flags.StringVar(&logFile, "log-file", "", "log file path")
	flags.BoolVar(&logJSON, "log-json", false, "write JSON log lines")
}

func runProcess(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := pipeline.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Close()

	_, err = p.Run()
	if errors.Is(err, pipeline.ErrNoFiles) {
		return &noFilesError{dest: cfg.Dest}
	}
	return err
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if input != "" {
		cfg.Source = input
	}
	if output != "" {
		cfg.Dest = output
	}
	if changed("jpg") {
		cfg.JPGOnly = jpgOnly
	}
	if changed("debug") {
		cfg.Debug = debug
	}
	if changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if changed("max-dimension") {
		cfg.MaxDimension = maxDimension
	}
	if changed("quality") {
		cfg.JPEGQuality = jpegQuality
	}
	if changed("capture-time") {
		cfg.CaptureTime = captureTime
	}
	if matchMode != "" {
		cfg.MatchMode = types.MatchMode(matchMode)
	}
	if len(imageExt) > 0 {
		cfg.ImageExtensions = imageExt
	}
	if len(videoExt) > 0 {
		cfg.VideoExtensions = videoExt
	}
	if conflictPolicy != "" {
		cfg.ConflictPolicy = types.ConflictPolicy(conflictPolicy)
	}
	if changed("verify") {
		cfg.Verify = verifyCopies
	}
	if changed("hash-verify") {
		cfg.HashVerify = hashVerify
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if changed("log-json") {
		cfg.LogJSON = logJSON
	}
}

type noFilesError struct {
	dest string
}

func (e *noFilesError) Error() string {
	return pipeline.ErrNoFiles.Error()
}

func (e *noFilesError) Unwrap() error {
	return pipeline.ErrNoFiles
}

// report prints err the way each failure class is surfaced to the user.
func report(w io.Writer, err error) {
	var validationErr *config.ValidationError
	var videoErr *transfer.VideoCopyError
	var noFiles *noFilesError

	switch {
	case errors.As(err, &validationErr) && validationErr.Field == "source":
		fmt.Fprintln(w, "Error:   processing input files has failed")
		fmt.Fprintf(w, "Warning: %s\n\n", validationErr.Message)
	case errors.As(err, &validationErr) && validationErr.Field == "dest":
		fmt.Fprintf(w, "Error: %s\n\n", capitalize(validationErr.Message))
	case errors.As(err, &noFiles):
		fmt.Fprintln(w, "Error:   processing files has failed")
		fmt.Fprintf(w, "Warning: <%s> is (%t)\n\n", noFiles.dest, isDir(noFiles.dest))
	case errors.As(err, &videoErr):
		fmt.Fprintln(w, "Error: unable to move video file")
		fmt.Fprint(w, videoErr.Diagnostics())
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
