package services

import (
	"hash/crc32"
	"io"
	"strconv"
)

const checksumChunkSize = 1024

// Checksum folds the stream into a CRC32 (IEEE) accumulator in fixed-size
// chunks and returns the digest as lowercase hex without zero padding.
func Checksum(r io.Reader) (string, error) {
	h := crc32.NewIEEE()
	buf := make([]byte, checksumChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return strconv.FormatUint(uint64(h.Sum32()), 16), nil
}
