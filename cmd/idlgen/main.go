package main

import (
	"os"
	"strings"

	"github.com/Alia5/idlgen/internal/config"
	"github.com/Alia5/idlgen/internal/configpaths"
	"github.com/Alia5/idlgen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("idlgen"),
		kong.Description("Render resolved IDL definition trees into source files"),
		kong.UsageOnError(),
		// Flags and env override configuration values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var artifacts log.ArtifactLogger
	if cli.Log.Artifacts != "" {
		f, err := os.OpenFile(cli.Log.Artifacts, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open artifact dump file", "file", cli.Log.Artifacts, "error", err)
			artifacts = log.NewArtifact(nil)
		} else {
			artifacts = log.NewArtifact(f)
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		artifacts = log.NewArtifact(os.Stdout)
	} else {
		artifacts = log.NewArtifact(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(artifacts, (*log.ArtifactLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("IDLGEN_CONFIG")
}
