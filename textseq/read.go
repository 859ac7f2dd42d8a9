// Package textseq reads text files into base sequences for the seqview
// view types: a file's lines or characters become sequences that range,
// product, and reversal views can wrap without copying them again.
//
// Files are read through the go-fs file abstraction and decoded with
// automatic character-set detection, so CSV exports, logs, and word
// lists in legacy encodings can serve directly as view bases.
package textseq

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
	fs "github.com/ungerik/go-fs"

	seqview "github.com/domonda/go-seqview"
)

// EncodingDetectionConfig specifies which character encodings to try
// when decoding a file, and test strings whose successful decoding
// identifies the right one.
type EncodingDetectionConfig struct {
	Encodings     []string `json:"encodings"`
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultEncodingDetectionConfig returns an EncodingDetectionConfig
// with sensible defaults for Western European text files.
//
// The test characters (umlauts and common symbols) distinguish
// encodings that are identical for pure ASCII content.
func NewDefaultEncodingDetectionConfig() *EncodingDetectionConfig {
	return &EncodingDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
		},
	}
}

// ReadLines reads and decodes the file and returns its lines as a
// sequence, without the line terminators. A trailing newline does not
// produce a final empty line. An empty file yields an empty sequence.
//
// Pass a nil config to use NewDefaultEncodingDetectionConfig.
func ReadLines(ctx context.Context, file fs.FileReader, config *EncodingDetectionConfig) (seqview.ValuesSeq, error) {
	text, err := readDecoded(ctx, file, config)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)
	seq := make(seqview.ValuesSeq, len(lines))
	for i, line := range lines {
		seq[i] = line
	}
	return seq, nil
}

// ReadChars reads and decodes the file and returns its text decomposed
// into a sequence of single-character strings, suitable as a per-character
// factor of a ProductView.
//
// Pass a nil config to use NewDefaultEncodingDetectionConfig.
func ReadChars(ctx context.Context, file fs.FileReader, config *EncodingDetectionConfig) (*seqview.StringSeq, error) {
	text, err := readDecoded(ctx, file, config)
	if err != nil {
		return nil, err
	}
	return seqview.NewStringSeq(text), nil
}

// readDecoded reads the raw file bytes and decodes them to UTF-8 using
// automatic encoding detection.
func readDecoded(ctx context.Context, file fs.FileReader, config *EncodingDetectionConfig) (string, error) {
	if config == nil {
		config = NewDefaultEncodingDetectionConfig()
	}

	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return "", err
	}

	var encodings []charset.Encoding
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return "", err
		}
		encodings = append(encodings, enc)
	}
	data, encodingName, err := charset.AutoDecode(data, encodings, config.EncodingTests)
	if err != nil {
		return "", err
	}
	if encodingName == "" {
		// Data was already UTF-8, only a BOM may be left to strip.
		data = charset.TrimBOM(data, charset.BOMUTF8)
	}
	data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	return string(data), nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
