package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnreadableVideo is returned when a video's duration cannot be
// determined. Unprobeable uploads are rejected outright.
var ErrUnreadableVideo = errors.New("unable to process the selected video")

// ProbeMP4DurationMillis reads the movie header of an MP4/ISO-BMFF stream
// and returns its duration in milliseconds. It walks the top-level boxes to
// moov, then scans moov's children for mvhd.
func ProbeMP4DurationMillis(r io.ReadSeeker) (int64, error) {
	moovSize, err := seekToBox(r, "moov", -1)
	if err != nil {
		return 0, ErrUnreadableVideo
	}
	if _, err := seekToBox(r, "mvhd", moovSize); err != nil {
		return 0, ErrUnreadableVideo
	}
	millis, err := readMvhdDuration(r)
	if err != nil {
		return 0, ErrUnreadableVideo
	}
	return millis, nil
}

// seekToBox advances r to the payload of the first box with the given type,
// returning the payload size. limit bounds the scan in bytes, -1 for
// unbounded.
func seekToBox(r io.ReadSeeker, boxType string, limit int64) (int64, error) {
	var scanned int64
	header := make([]byte, 8)
	for limit < 0 || scanned < limit {
		if _, err := io.ReadFull(r, header); err != nil {
			return 0, err
		}
		size := int64(binary.BigEndian.Uint32(header[:4]))
		headerLen := int64(8)
		if size == 1 {
			// 64-bit largesize follows the type.
			large := make([]byte, 8)
			if _, err := io.ReadFull(r, large); err != nil {
				return 0, err
			}
			size = int64(binary.BigEndian.Uint64(large))
			headerLen = 16
		}
		if size < headerLen {
			return 0, fmt.Errorf("malformed box size %d", size)
		}
		if string(header[4:8]) == boxType {
			return size - headerLen, nil
		}
		if _, err := r.Seek(size-headerLen, io.SeekCurrent); err != nil {
			return 0, err
		}
		scanned += size
	}
	return 0, fmt.Errorf("box %q not found", boxType)
}

// readMvhdDuration decodes the timescale and duration from an mvhd payload.
func readMvhdDuration(r io.Reader) (int64, error) {
	versionFlags := make([]byte, 4)
	if _, err := io.ReadFull(r, versionFlags); err != nil {
		return 0, err
	}

	var timescale uint32
	var duration uint64
	switch versionFlags[0] {
	case 0:
		// creation(4) + modification(4), then timescale(4) + duration(4).
		buf := make([]byte, 16)
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}
		timescale = binary.BigEndian.Uint32(buf[8:12])
		duration = uint64(binary.BigEndian.Uint32(buf[12:16]))
	case 1:
		// creation(8) + modification(8), then timescale(4) + duration(8).
		buf := make([]byte, 28)
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}
		timescale = binary.BigEndian.Uint32(buf[16:20])
		duration = binary.BigEndian.Uint64(buf[20:28])
	default:
		return 0, fmt.Errorf("unsupported mvhd version %d", versionFlags[0])
	}

	if timescale == 0 {
		return 0, errors.New("mvhd timescale is zero")
	}
	return int64(duration * 1000 / uint64(timescale)), nil
}
