package playlist

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/voyagen/tvm3u/internal/models"
)

var (
	reTvgLogo = regexp.MustCompile(`tvg-logo="([^"]*)"`)
	reGroup   = regexp.MustCompile(`group-title="([^"]*)"`)
)

// Parse reads an M3U playlist from r and returns its entries in order.
// An EXTINF line not followed by a URL is dropped.
func Parse(r io.Reader) ([]models.Channel, error) {
	var entries []models.Channel
	// EXTINF lines carrying inline data: logos have no useful length bound,
	// so lines are read whole rather than through a capped Scanner.
	br := bufio.NewReaderSize(r, 64*1024)

	var extinfLine string
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(strings.ToUpper(line), "#EXTINF"):
			extinfLine = line
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
		default:
			if extinfLine != "" {
				entries = append(entries, models.Channel{
					Name:  nameFromEXTINF(extinfLine),
					URL:   trimmed,
					Group: matchFirst(reGroup, extinfLine),
					Logo:  matchFirst(reTvgLogo, extinfLine),
				})
				extinfLine = ""
			}
		}
		if err != nil {
			break
		}
	}
	return entries, nil
}

func matchFirst(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// nameFromEXTINF returns the display name: the text after the first comma
// that follows the last quoted attribute.
func nameFromEXTINF(extinf string) string {
	rest := extinf
	if i := strings.LastIndex(rest, `"`); i >= 0 {
		rest = rest[i+1:]
	}
	i := strings.Index(rest, ",")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(rest[i+1:])
}
