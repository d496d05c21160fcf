package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/voyagen/tvm3u/internal/config"
	"github.com/voyagen/tvm3u/internal/converter"
	"github.com/voyagen/tvm3u/internal/playlist"
)

// Summary describes a finished conversion.
type Summary struct {
	Input  string
	Output string
	Result converter.Result
	// Stats is nil only when the written playlist could not be read back.
	Stats *playlist.Stats
}

// Generate converts cfg's input JSON into the configured playlist and reads
// the result back for reporting. A missing input is reported together with
// the contents of its directory.
func Generate(cfg *config.Config, log zerolog.Logger) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	in, out := cfg.InputPath(), cfg.OutputPath()

	if _, err := os.Stat(in); errors.Is(err, fs.ErrNotExist) {
		logMissingInput(log, in)
		return nil, fmt.Errorf("%s: %w", in, converter.ErrMissingInputFile)
	}

	res, err := converter.New(log).ConvertFile(in, out)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Input: in, Output: out, Result: res}
	st, err := playlist.Inspect(out)
	switch {
	case st == nil:
		log.Warn().Err(err).Str("path", out).Msg("playlist not readable after write")
		return sum, nil
	case err != nil:
		log.Warn().Err(err).Str("path", out).Msg("playlist entries could not be counted")
	case st.Entries != res.Valid:
		log.Warn().Int("entries", st.Entries).Int("valid", res.Valid).Msg("playlist entry count differs from converted channels")
	}
	sum.Stats = st
	return sum, nil
}

func logMissingInput(log zerolog.Logger, path string) {
	log.Error().Str("path", path).Msg("input file does not exist")

	cwd, err := os.Getwd()
	if err != nil {
		log.Error().Err(err).Msg("working directory unavailable")
		return
	}
	log.Info().Str("dir", cwd).Msg("current working directory")

	entries, err := os.ReadDir(cwd)
	if err != nil {
		log.Error().Err(err).Msg("cannot list working directory")
		return
	}
	for _, e := range entries {
		log.Info().Msgf("  - %s", e.Name())
	}
}
