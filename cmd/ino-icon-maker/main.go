package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	iconmaker "github.com/narek589/ino-icon-maker-sub001"
	"github.com/narek589/ino-icon-maker-sub001/layer"
	"github.com/narek589/ino-icon-maker-sub001/utils"
)

const helpBanner = `
┬┌┐┌┌─┐  ┬┌─┐┌─┐┌┐┌  ┌┬┐┌─┐┬┌─┌─┐┬─┐
││││││ │  ││  │ ││││  │││├─┤├┴┐├┤ ├┬┘
┴┘└┘└─┘  ┴└─┘└─┘┘└┘  ┴ ┴┴ ┴┴ ┴└─┘┴└─

App icon generator for iOS and Android.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source       = flag.String("in", "", "Source image (png, jpg, gif, bmp, webp or svg), or - for stdin")
	destination  = flag.String("out", "icons", "Destination directory")
	platforms    = flag.String("platform", "all", "Target platform: ios, android or all")
	force        = flag.Bool("force", false, "Overwrite an existing output directory")
	archive      = flag.Bool("zip", false, "Package the generated assets into a zip archive")
	foreground   = flag.String("fg", "", "Adaptive foreground layer: image path or #RRGGBB color")
	background   = flag.String("bg", "", "Adaptive background layer: image path or #RRGGBB color")
	monochrome   = flag.String("mono", "", "Adaptive monochrome layer: image path or #RRGGBB color")
	scale        = flag.Float64("scale", 0, "Global size table scale factor")
	fgScaleIOS   = flag.Float64("fg-scale-ios", 1.0, "iOS foreground content scale")
	fgScaleDroid = flag.Float64("fg-scale-android", 1.0, "Android foreground content scale")
	sizesFile    = flag.String("sizes", "", "YAML file with size customizations")
	list         = flag.Bool("list", false, "Print the resolved size tables and exit")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	keys, err := parsePlatforms(*platforms)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	if *list {
		if err := printSizeTables(keys); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		return
	}

	opts, err := buildOptions()
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	deps := iconmaker.DefaultDeps()
	now := time.Now()

	// Capture CTRL-C and restore the cursor visibility back.
	spinner := utils.NewSpinner(statusText("is generating the icons..."), time.Millisecond*200, true)
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	for _, key := range keys {
		gen, err := iconmaker.NewGenerator(key, deps)
		if err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

		spinner.StopMsg = statusText(fmt.Sprintf("finished the %s icons ✔", key))
		spinner.Start()
		res, err := iconmaker.Generate(gen, deps, opts)
		spinner.Stop()

		printStatus(res, err)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// buildOptions assembles the generation options from the flags: the
// source (possibly drained from stdin), the adaptive layers and the
// size customization.
func buildOptions() (*iconmaker.Options, error) {
	input := *source
	if input == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("`-` should be used with a pipe for stdin")
		}
		tmp, err := drainStdin()
		if err != nil {
			return nil, err
		}
		input = tmp
	}

	padding := layer.DefaultPadding()
	padding.IOSScale = *fgScaleIOS
	padding.AndroidScale = *fgScaleDroid

	opts := &iconmaker.Options{
		Input:         input,
		OutputDir:     *destination,
		Force:         *force,
		CreateArchive: *archive,
		Padding:       padding,
	}

	if *foreground != "" || *background != "" || *monochrome != "" {
		opts.Adaptive = &iconmaker.AdaptiveLayers{
			Foreground: layer.Parse(*foreground),
			Background: layer.Parse(*background),
			Monochrome: layer.Parse(*monochrome),
		}
	} else if input == "" {
		return nil, fmt.Errorf("please provide a source image with -in, or adaptive layers with -fg/-bg")
	}

	custom, err := loadCustomization()
	if err != nil {
		return nil, err
	}
	opts.Customization = custom
	return opts, nil
}

// loadCustomization resolves the size customization from the -sizes
// file and the -scale override, printing any range warnings.
func loadCustomization() (*iconmaker.SizeCustomization, error) {
	var custom *iconmaker.SizeCustomization
	if *sizesFile != "" {
		var err error
		if custom, err = iconmaker.LoadSizeCustomization(*sizesFile); err != nil {
			return nil, err
		}
	}
	if *scale != 0 {
		if custom == nil {
			custom = &iconmaker.SizeCustomization{}
		}
		custom.Scale = scale
	}
	if custom == nil {
		return nil, nil
	}
	warnings, err := iconmaker.ValidateCustomization(custom)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, utils.DecorateText("warning: "+w, utils.WarningMessage))
	}
	return custom, nil
}

// printSizeTables prints the size tables each requested platform would
// generate, with any size customization already applied.
func printSizeTables(keys []iconmaker.PlatformKind) error {
	custom, err := loadCustomization()
	if err != nil {
		return err
	}
	for _, key := range keys {
		gen, err := iconmaker.NewGenerator(key, iconmaker.Deps{})
		if err != nil {
			return err
		}
		cfg, err := iconmaker.ApplySizeCustomization(gen.Config(), custom)
		if err != nil {
			return err
		}
		fmt.Println(cfg.SizeSummary())
	}
	return nil
}

// drainStdin copies the piped source image into a temporary file so it
// can be decoded by path.
func drainStdin() (string, error) {
	tmp, err := os.CreateTemp("", "ino-icon-*")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, os.Stdin); err != nil {
		return "", fmt.Errorf("unable to read the source image from stdin: %v", err)
	}
	return tmp.Name(), nil
}

func parsePlatforms(s string) ([]iconmaker.PlatformKind, error) {
	if s == "all" {
		return iconmaker.Platforms(), nil
	}
	var keys []iconmaker.PlatformKind
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(part) {
		case "ios":
			keys = append(keys, iconmaker.IOS)
		case "android":
			keys = append(keys, iconmaker.Android)
		default:
			return nil, fmt.Errorf("unsupported platform %q", part)
		}
	}
	return keys, nil
}

func statusText(msg string) string {
	return fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ INO ICON MAKER", utils.StatusMessage),
		utils.DecorateText(msg, utils.DefaultMessage))
}

// printStatus displays the relevant information about one platform's
// generation result.
func printStatus(res *iconmaker.GenerationResult, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError generating the icons: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%s: %d files in %s\n",
		utils.DecorateText(res.Platform, utils.SuccessMessage),
		len(res.Files), res.OutputDir)
	if res.ZipPath != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n",
			utils.DecorateText("archive", utils.SuccessMessage), res.ZipPath)
	}
}
