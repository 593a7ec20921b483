package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/mcdatagen/mcdatagen"
	"github.com/mcdatagen/mcdatagen/internal/manifest"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "assets.yaml", "path to the asset manifest")
		outDir       = flag.String("out", "src/main/resources", "directory the assets/ tree is written under")
		verify       = flag.Bool("verify", false, "check that files on disk match instead of writing them")
		zipPath      = flag.String("zip", "", "also pack the generated tree into this zip archive")
		schemas      = flag.Bool("schemas", false, "also write JSON schemas for the generated files")
		verbose      = flag.Bool("v", false, "log every generated file")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(context.Background(), *manifestPath, *outDir, *verify, *zipPath, *schemas); err != nil {
		log.WithError(err).Fatal("mcdatagen failed")
	}
}

func run(ctx context.Context, manifestPath, outDir string, verify bool, zipPath string, schemas bool) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	gfs, err := manifest.Generate(m)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if schemas {
		fl, err := mcdatagen.Schemas()
		if err != nil {
			return fmt.Errorf("schemas: %w", err)
		}
		for i := range fl {
			if err := gfs.Add("schemas", &fl[i]); err != nil {
				return err
			}
		}
	}

	for _, f := range gfs.AsFiles() {
		log.WithField("file", f.RelativePath).Debug("generated")
	}

	if verify {
		if err := gfs.Verify(ctx, outDir); err != nil {
			return err
		}
		log.WithFields(log.Fields{"count": gfs.Len(), "out": outDir}).Info("assets up to date")
		return nil
	}

	if err := gfs.Write(ctx, outDir); err != nil {
		return err
	}
	log.WithFields(log.Fields{"count": gfs.Len(), "out": outDir}).Info("wrote assets")

	if zipPath != "" {
		if err := os.MkdirAll(filepath.Dir(zipPath), 0o755); err != nil {
			return err
		}
		zf, err := os.Create(zipPath)
		if err != nil {
			return err
		}
		if err := gfs.WriteZip(zf, ""); err != nil {
			zf.Close()
			return fmt.Errorf("%s: %w", zipPath, err)
		}
		if err := zf.Close(); err != nil {
			return err
		}
		log.WithField("out", zipPath).Info("wrote resource pack archive")
	}
	return nil
}
