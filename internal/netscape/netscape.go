// Package netscape reads and writes Netscape HTTP cookie files, the
// seven-field tab-separated text format curl uses for its cookie jars.
package netscape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/artpar/crumb/internal/cookies"
)

// ErrDecode reports a cookie-file line with fewer fields than the
// format requires. Decoding stops at the first bad line and nothing is
// committed to the target jar.
var ErrDecode = errors.New("malformed cookie file line")

// header is written once at the top of a freshly created cookie file.
const header = "# Netscape HTTP Cookie File\n" +
	"# https://curl.se/docs/http-cookies.html\n" +
	"# This file was generated by crumb! Edit at your own risk.\n\n"

// Encode writes one newline-terminated line per record with the fields
// domain, flag, path, secure, expiry epoch seconds, name and value.
// The flag field says whether the domain was explicitly set, not
// anything about subdomain matching. A record without a domain takes
// the jar's default domain, but its flag stays FALSE. A session cookie
// encodes its expiry as 0.
func Encode(w io.Writer, jar *cookies.Jar) error {
	bw := bufio.NewWriter(w)
	for _, c := range jar.All() {
		domain := c.Domain
		if domain == "" {
			domain = jar.DefaultDomain()
		}
		flag := "FALSE"
		if c.Domain != "" {
			flag = "TRUE"
		}
		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}
		var epoch int64
		if !c.Expires.IsZero() {
			epoch = c.Expires.Unix()
		}
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, flag, c.Path, secure, epoch, c.Name, c.Value)
		if err != nil {
			return fmt.Errorf("failed to write cookie line: %w", err)
		}
	}
	return bw.Flush()
}

// Decode parses cookie-file lines into records. Blank lines and lines
// starting with # are skipped. Fields are split on tabs with runs of
// tabs collapsing into one separator; a line with fewer than seven
// fields, or a non-numeric expiry, fails the whole decode. The flag
// field is read but carries no information on the way in, and an expiry
// of 0 decodes as a session cookie.
func Decode(r io.Reader) ([]cookies.Cookie, error) {
	var records []cookies.Cookie

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
		if len(fields) < 7 {
			return nil, fmt.Errorf("%w: %q", ErrDecode, line)
		}

		epoch, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad expiry in %q", ErrDecode, line)
		}

		c := cookies.Cookie{
			Domain: fields[0],
			Path:   fields[2],
			Secure: fields[3] == "TRUE",
			Name:   fields[5],
			Value:  fields[6],
		}
		if epoch != 0 {
			c.Expires = time.Unix(epoch, 0)
		}
		records = append(records, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookie file: %w", err)
	}
	return records, nil
}

// Append writes the jar's records to the end of the file at path,
// creating it when missing. An empty file receives the comment header
// first; a file that already holds data is appended to as-is. Existing
// records are not deduplicated against the new ones; load-then-merge is
// the caller's job.
func Append(fsys afero.Fs, path string, jar *cookies.Jar) error {
	f, err := fsys.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open cookie file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat cookie file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek cookie file: %w", err)
	}
	if info.Size() == 0 {
		if _, err := io.WriteString(f, header); err != nil {
			return fmt.Errorf("failed to write cookie file header: %w", err)
		}
	}
	return Encode(f, jar)
}

// Write replaces the file at path with the comment header followed by
// the jar's records.
func Write(fsys afero.Fs, path string, jar *cookies.Jar) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open cookie file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, header); err != nil {
		return fmt.Errorf("failed to write cookie file header: %w", err)
	}
	return Encode(f, jar)
}

// Load reads the file at path and appends its records to the jar
// without deduplication. The jar is untouched when decoding fails.
func Load(fsys afero.Fs, path string, jar *cookies.Jar) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open cookie file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return err
	}
	for _, c := range records {
		jar.Add(c)
	}
	return nil
}
