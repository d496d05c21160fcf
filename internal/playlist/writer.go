// Package playlist reads and writes extended M3U playlists.
package playlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/voyagen/tvm3u/internal/models"
)

// Header is the first line of every extended M3U playlist.
const Header = "#EXTM3U"

// Encode writes the playlist header followed by one EXTINF/URL pair per
// channel. Lines end with "\n".
func Encode(w io.Writer, channels []models.Channel) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, ch := range channels {
		if _, err := bw.WriteString(EXTINF(ch) + "\n" + ch.URL + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EXTINF renders the metadata line for ch. tvg-logo is only present when the
// channel has a logo.
func EXTINF(ch models.Channel) string {
	var b strings.Builder
	b.WriteString("#EXTINF:-1")
	if ch.Logo != "" {
		b.WriteString(` tvg-logo="`)
		b.WriteString(ch.Logo)
		b.WriteString(`"`)
	}
	b.WriteString(` group-title="`)
	b.WriteString(ch.Group)
	b.WriteString(`",`)
	b.WriteString(ch.Name)
	return b.String()
}
