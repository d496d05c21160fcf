// Package converter turns a JSON channel listing into an M3U playlist.
package converter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/voyagen/tvm3u/internal/models"
	"github.com/voyagen/tvm3u/internal/playlist"
)

// Result reports how many of the channel records found were emitted.
type Result struct {
	Valid int
	Total int
}

func (r Result) String() string {
	return fmt.Sprintf("%d/%d", r.Valid, r.Total)
}

// Converter normalizes channel records and writes them as a playlist.
// It holds no state between calls.
type Converter struct {
	log zerolog.Logger
}

// New returns a Converter that logs to log.
func New(log zerolog.Logger) *Converter {
	return &Converter{log: log}
}

// Build decodes data and returns the channels that would be emitted, in
// input order. Records that are not objects, or whose URL lacks an accepted
// scheme, are skipped but still counted in Result.Total.
func (c *Converter) Build(data []byte) ([]models.Channel, Result, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, Result{}, err
	}
	records, err := doc.Channels()
	if err != nil {
		return nil, Result{}, err
	}

	res := Result{Total: len(records)}
	channels := make([]models.Channel, 0, len(records))
	for i, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			c.log.Debug().Int("index", i).Msgf("skipping record of type %T", raw)
			continue
		}
		ch := Normalize(rec)
		if !ch.Valid() {
			c.log.Debug().Int("index", i).Str("name", ch.Name).Str("url", ch.URL).Msg("skipping channel without a stream URL")
			continue
		}
		channels = append(channels, ch)
	}
	res.Valid = len(channels)
	return channels, res, nil
}

// Convert reads a JSON channel document from r and writes the playlist to w.
// Nothing is written to w unless channel data was found.
func (c *Converter) Convert(r io.Reader, w io.Writer) (res Result, err error) {
	defer recoverInto(&err)

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, wrap(ErrUnexpected, err)
	}
	channels, res, err := c.Build(data)
	if err != nil {
		return res, err
	}
	if err := playlist.Encode(w, channels); err != nil {
		return res, wrap(ErrUnexpected, err)
	}
	c.log.Info().Int("valid", res.Valid).Int("total", res.Total).Msgf("processed %s channels", res)
	return res, nil
}

// ConvertFile converts the JSON file at in into a playlist at out,
// truncating out. The output is only created once channel data has been
// found in the input.
func (c *Converter) ConvertFile(in, out string) (res Result, err error) {
	defer recoverInto(&err)

	data, err := os.ReadFile(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, wrap(ErrMissingInputFile, err)
		}
		return Result{}, wrap(ErrUnexpected, err)
	}
	channels, res, err := c.Build(data)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer
	if err := playlist.Encode(&buf, channels); err != nil {
		return res, wrap(ErrUnexpected, err)
	}
	if err := writeFile(out, buf.Bytes()); err != nil {
		return res, wrap(ErrUnexpected, err)
	}
	c.log.Info().Int("valid", res.Valid).Int("total", res.Total).Msgf("processed %s channels", res)
	return res, nil
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = wrap(ErrUnexpected, fmt.Errorf("panic: %v", r))
	}
}
