package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/dxf-writer"
)

// 通过 -ldflags "-X main.version=M.N" 设置
var version = "dev"

const logPermission = 0664

func main() {
	app := cli.NewApp()
	app.Name = "dxfgen"
	app.Usage = "按 Lua 描述文件生成 DXF 图纸"
	app.ArgsUsage = "DRAWING.lua"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: " write the drawing to `FILE` (default: ask with a save dialog)",
		},
		cli.StringFlag{
			Name:  "report, r",
			Usage: " write a CSV layout report to `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "attr, a",
			Usage: " add a report column with the value of attribute `TAG` (repeatable)",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: " append logs to `FILE` instead of the console",
		},
		cli.BoolFlag{
			Name:  "check, c",
			Usage: " verify handles of the generated drawing before saving",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " debug logging",
		},
		cli.BoolFlag{
			Name:  "pause, p",
			Usage: " wait for a key before exit (drag-and-drop use)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "错误:", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}

	if path := c.String("log"); path != "" {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logPermission)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		log := zerolog.New(zerolog.SyncWriter(file)).Level(level).With().Timestamp().Logger()
		return log, file, nil
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil, nil
}

func run(c *cli.Context) error {
	if c.Bool("pause") {
		defer xos.PauseExit()
	}

	if c.NArg() < 1 {
		return cli.ShowAppHelp(c)
	}

	log, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	source := c.Args().First()
	drawing, err := ParseDrawingFile(source)
	if err != nil {
		return err
	}

	doc, err := Build(drawing, log)
	if err != nil {
		return err
	}

	if c.Bool("check") {
		report, err := check(doc)
		if err != nil {
			return err
		}
		log.Info().
			Str("handseed", report.HandleSeed.String()).
			Float64("width", report.PaperExtents.Width()).
			Float64("height", report.PaperExtents.Height()).
			Msg("handles verified")
	}

	output, dialog, err := outputPath(c.String("output"), drawing.Output, source)
	if err != nil {
		return err
	}
	if output == "" {
		log.Info().Msg("save canceled")
		return nil
	}

	if err = doc.Save(output); err != nil {
		if dialog {
			_ = zenity.Error(err.Error(), zenity.Title("dxfgen"), zenity.ErrorIcon)
		}
		return err
	}
	log.Info().Str("file", output).Int("layouts", len(doc.Layouts())).Msg("drawing saved")

	if report := c.String("report"); report != "" {
		if err = writeReport(report, doc, c.StringSlice("attr")...); err != nil {
			return err
		}
		log.Info().Str("file", report).Msg("report written")
	}

	return nil
}

// outputPath 依次使用命令行参数、描述文件中的 output，最后弹出保存对话框。
// 取消对话框时返回空路径。
func outputPath(flag, configured, source string) (path string, dialog bool, err error) {
	if flag != "" {
		return flag, false, nil
	}
	if configured != "" {
		if !filepath.IsAbs(configured) {
			configured = filepath.Join(filepath.Dir(source), configured)
		}
		return configured, false, nil
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".dxf"
	path, err = zenity.SelectFileSave(
		zenity.Title("保存 DXF"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilter{Name: "DXF 图纸", Patterns: []string{"*.dxf"}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", true, nil
	}
	if err != nil {
		return "", true, fmt.Errorf("save dialog: %w", err)
	}

	if filepath.Ext(path) == "" {
		path += ".dxf"
	}
	return path, true, nil
}

// check 重新扫描输出文本，确认句柄唯一且 $HANDSEED 大于所有句柄
func check(doc *dxf.Document) (*dxf.Report, error) {
	report, err := dxf.Inspect(strings.NewReader(doc.String()))
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	if len(report.Duplicates) > 0 {
		return nil, fmt.Errorf("check: duplicate handles %v", report.Duplicates)
	}
	if !report.Valid() {
		return nil, fmt.Errorf("check: $HANDSEED %s not above max handle %s", report.HandleSeed, report.MaxHandle)
	}
	return report, nil
}
