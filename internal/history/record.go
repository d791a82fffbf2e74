// Package history persists encoded market documents as framed, checksummed
// records in append-only segment files. The payload bytes are whatever the
// codec produced; history never inspects them.
package history

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"main/pkg/exception"
)

const (
	recordVersion      uint16 = 1
	recordHeaderSize          = 32
	recordChecksumSize        = 4
)

var (
	recordMagic = [4]byte{'H', 'S', 'T', '1'}
	crcTable    = crc32.MakeTable(crc32.Castagnoli)
)

// RecordKind identifies the codec document stored in a record payload.
type RecordKind uint16

const (
	RecordUnknown RecordKind = iota
	RecordTickBatch
	RecordBar
	RecordInstrument
)

// RecordHeader is the metadata framing one stored document.
type RecordHeader struct {
	Kind    RecordKind
	Version uint16
	Flags   uint16
	Seq     uint64
	Ts      int64
}

func encodeRecordHeader(dst []byte, header RecordHeader, payloadLen int) {
	_ = dst[recordHeaderSize-1]
	copy(dst[0:4], recordMagic[:])
	binary.LittleEndian.PutUint16(dst[4:6], recordVersion)
	binary.LittleEndian.PutUint16(dst[6:8], uint16(recordHeaderSize))
	binary.LittleEndian.PutUint16(dst[8:10], uint16(header.Kind))
	binary.LittleEndian.PutUint16(dst[10:12], header.Flags)
	binary.LittleEndian.PutUint32(dst[12:16], uint32(payloadLen))
	binary.LittleEndian.PutUint64(dst[16:24], header.Seq)
	binary.LittleEndian.PutUint64(dst[24:32], uint64(header.Ts))
}

func decodeRecordHeader(src []byte) (RecordHeader, uint32, error) {
	if len(src) < recordHeaderSize {
		return RecordHeader{}, 0, exception.ErrHistoryInvalidHeader
	}
	if !bytes.Equal(src[0:4], recordMagic[:]) {
		return RecordHeader{}, 0, exception.ErrHistoryInvalidMagic
	}
	if ver := binary.LittleEndian.Uint16(src[4:6]); ver != recordVersion {
		return RecordHeader{}, 0, exception.ErrHistoryUnsupportedVer
	}
	if size := binary.LittleEndian.Uint16(src[6:8]); size != recordHeaderSize {
		return RecordHeader{}, 0, exception.ErrHistoryInvalidHeader
	}

	header := RecordHeader{
		Kind:    RecordKind(binary.LittleEndian.Uint16(src[8:10])),
		Version: recordVersion,
		Flags:   binary.LittleEndian.Uint16(src[10:12]),
		Seq:     binary.LittleEndian.Uint64(src[16:24]),
		Ts:      int64(binary.LittleEndian.Uint64(src[24:32])),
	}
	payloadLen := binary.LittleEndian.Uint32(src[12:16])
	return header, payloadLen, nil
}

func checksum(header []byte, payload []byte) uint32 {
	crc := crc32.Update(0, crcTable, header)
	return crc32.Update(crc, crcTable, payload)
}
