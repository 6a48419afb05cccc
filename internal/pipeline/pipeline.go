package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/On-Jun9/ShutterStamp/internal/classify"
	"github.com/On-Jun9/ShutterStamp/internal/config"
	"github.com/On-Jun9/ShutterStamp/internal/copier"
	"github.com/On-Jun9/ShutterStamp/internal/log"
	"github.com/On-Jun9/ShutterStamp/internal/metadata"
	"github.com/On-Jun9/ShutterStamp/internal/pathsplit"
	"github.com/On-Jun9/ShutterStamp/internal/policy"
	"github.com/On-Jun9/ShutterStamp/internal/resize"
	"github.com/On-Jun9/ShutterStamp/internal/scanner"
	"github.com/On-Jun9/ShutterStamp/internal/stamp"
	"github.com/On-Jun9/ShutterStamp/internal/transfer"
	"github.com/On-Jun9/ShutterStamp/internal/verify"
	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

// ErrNoFiles is returned when there is nothing to process.
var ErrNoFiles = errors.New("no files to process")

// Namer generates destination filenames.
type Namer interface {
	Build(ext string) string
	BuildAt(t time.Time, ext string) string
}

// Transferer moves one classified file into the destination.
type Transferer interface {
	Image(srcDir, destDir, srcName, destName string) (types.TransferResult, int64)
	Video(srcDir, destDir, srcName, destName string) (types.TransferResult, int64, error)
}

type captureTimer interface {
	Extract(path string) types.MediaMetadata
}

type Pipeline struct {
	cfg        *config.Config
	scanner    *scanner.Scanner
	classifier *classify.Classifier
	namer      Namer
	meta       captureTimer
	conflict   *policy.ConflictResolver
	transfer   Transferer
	logger     *log.Logger
}

// New wires a pipeline from cfg. Console output goes to console; cfg must
// already be validated.
func New(cfg *config.Config, console io.Writer) (*Pipeline, error) {
	logger, err := log.New(console, cfg.LogFile, cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var verifier transfer.Verifier
	if v := verify.New(cfg.Verify, cfg.HashVerify); v.Enabled() && !cfg.DryRun {
		verifier = v
	}

	p := &Pipeline{
		cfg:        cfg,
		scanner:    scanner.ForJPGOnly(cfg.JPGOnly),
		classifier: classify.New(cfg.ImageExtensions, cfg.VideoExtensions, cfg.MatchMode),
		namer:      stamp.New(),
		conflict:   policy.NewConflictResolver(cfg.ConflictPolicy),
		transfer: transfer.New(
			resize.New(cfg.MaxDimension, cfg.JPEGQuality, cfg.DryRun),
			copier.New(cfg.DryRun),
			verifier,
			logger,
		),
		logger: logger,
	}
	if cfg.CaptureTime {
		p.meta = metadata.NewEXIFExtractor()
	}

	return p, nil
}

// Run lists the source directory and processes every file found.
func (p *Pipeline) Run() (*types.RunSummary, error) {
	p.logger.Debugf("source: <%s>", p.cfg.Source)

	files, err := p.scanner.Scan(p.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to list source: %w", err)
	}
	p.logger.Debugf("files %v", files)

	summary, err := p.Process(files)
	if err != nil {
		return summary, err
	}

	p.logger.Debugf("destination: (%d) <%s>", len(files), p.cfg.Dest)
	p.logger.Summary(*summary)
	return summary, nil
}

// Process handles files in lexicographic order, one at a time.
//
// A missing or unrecognized file is warned about and skipped. An empty
// filename stops the batch. A video copy failure ends the batch and is
// returned as a *transfer.VideoCopyError together with the partial summary.
func (p *Pipeline) Process(files []string) (*types.RunSummary, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	summary := &types.RunSummary{
		TotalFiles: len(files),
		StartTime:  time.Now(),
	}
	defer func() {
		summary.EndTime = time.Now()
		summary.Duration = summary.EndTime.Sub(summary.StartTime)
	}()

	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	p.logger.Debug("processing")

	for _, path := range sorted {
		sp, ok := pathsplit.Split(path)
		p.logger.Debugf("source <%s> <%s>", sp.SafeDir, sp.Name)
		if !ok || sp.Name == "" {
			summary.Stopped = true
			break
		}

		if info, err := os.Stat(path); err != nil || info.IsDir() {
			p.logger.Warn("the source file is not found <" + sp.Name + ">")
			summary.Missing++
			continue
		}

		kind, ext := p.classifier.Classify(sp.Name)
		if kind == types.MediaKindUnknown {
			p.logger.Warn("file not processed <" + sp.Name + ">")
			summary.Unrecognized++
			continue
		}

		p.logger.Mark(kind)

		destName, skip := p.destName(path, kind, ext)
		if skip {
			summary.Skipped++
			p.logger.LogResult(types.TransferResult{
				Source:   path,
				DestPath: filepath.Join(p.cfg.Dest, destName),
				Kind:     kind,
				Action:   types.TransferActionSkipped,
			})
			continue
		}

		switch kind {
		case types.MediaKindImage:
			result, n := p.transfer.Image(sp.Dir, p.cfg.Dest, sp.Name, destName)
			summary.Images++
			summary.BytesCopied += n
			switch result.Action {
			case types.TransferActionResized:
				summary.Resized++
			case types.TransferActionCopied:
				summary.Fallback++
			default:
				summary.Failed++
			}
			p.logger.LogResult(result)

		case types.MediaKindVideo:
			result, n, err := p.transfer.Video(sp.Dir, p.cfg.Dest, sp.Name, destName)
			p.logger.LogResult(result)
			if err != nil {
				summary.Failed++
				p.logger.EndMarks()
				return summary, err
			}
			summary.Videos++
			summary.BytesCopied += n
		}
	}

	p.logger.EndMarks()
	return summary, nil
}

// destName generates the destination filename for path and applies the
// conflict policy. It reports true when the file should be skipped.
func (p *Pipeline) destName(path string, kind types.MediaKind, ext string) (string, bool) {
	var name string
	if p.meta != nil && kind == types.MediaKindImage {
		if md := p.meta.Extract(path); md.CaptureTime != nil {
			name = p.namer.BuildAt(*md.CaptureTime, ext)
		} else {
			p.logger.Debugf("no capture time for <%s>: %s", path, md.Error)
		}
	}
	if name == "" {
		name = p.namer.Build(ext)
	}
	p.logger.Debugf("fn <%s>", name)

	res := p.conflict.Resolve(filepath.Join(p.cfg.Dest, name))
	if res.Renamed {
		p.logger.Debugf("renamed <%s> to <%s>", name, filepath.Base(res.DestPath))
	}
	return filepath.Base(res.DestPath), res.Skip
}

func (p *Pipeline) Close() error {
	return p.logger.Close()
}
