package pkg

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
)

// Arena files carry the raw binary image; files with this suffix (or
// written with the compress option) wrap the same image in a zstd
// frame.
const compressedSuffix = ".zst"

// WriteArenaFile writes the serialized arena, zstd framed when
// compress is set or the path says so.
func WriteArenaFile(path string, arena *svdag.Arena, compress bool) error {
	image := arena.Serialize()

	if compress || strings.HasSuffix(path, compressedSuffix) {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return errors.Wrap(err, "zstd writer")
		}
		if _, err := enc.Write(image); err != nil {
			enc.Close()
			return errors.Wrapf(err, "compress %s", path)
		}
		if err := enc.Close(); err != nil {
			return errors.Wrapf(err, "compress %s", path)
		}
		image = buf.Bytes()
	}

	if err := os.WriteFile(path, image, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// ReadArenaFile loads an arena image, transparently unwrapping a zstd
// frame when present.
func ReadArenaFile(path string) (*svdag.Arena, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	if isZstdFramed(raw) {
		dec, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "zstd reader for %s", path)
		}
		defer dec.Close()
		if raw, err = io.ReadAll(dec); err != nil {
			return nil, errors.Wrapf(err, "decompress %s", path)
		}
	}

	arena, err := svdag.Deserialize(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "deserialize %s", path)
	}
	return arena, nil
}

// zstd frame magic per RFC 8878
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func isZstdFramed(data []byte) bool {
	return len(data) >= len(zstdMagic) && bytes.Equal(data[:len(zstdMagic)], zstdMagic)
}
