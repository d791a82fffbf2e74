package history

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/pkg/exception"
)

func writeRecords(t *testing.T, cfg Config, payloads [][]byte) {
	t.Helper()
	w, err := NewWriter(cfg)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	for i, payload := range payloads {
		require.NoError(t, w.TryAppend(RecordHeader{
			Kind: RecordTickBatch,
			Seq:  uint64(i + 1),
			Ts:   int64(1000 * (i + 1)),
		}, payload))
	}
	require.NoError(t, w.Close())
}

func TestWriterPlaybackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.FilePrefix = "test"

	var payloads [][]byte
	for i := 0; i < 5; i++ {
		payloads = append(payloads, []byte(fmt.Sprintf("payload-%d", i)))
	}
	writeRecords(t, cfg, payloads)

	pb, err := NewPlayback(PlaybackConfig{Dir: dir, FilePrefix: "test"})
	require.NoError(t, err)

	var (
		seqs   []uint64
		bodies []string
	)
	err = pb.Run(context.Background(), func(header RecordHeader, payload []byte) error {
		seqs = append(seqs, header.Seq)
		bodies = append(bodies, string(payload))
		assert.Equal(t, RecordTickBatch, header.Kind)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, bodies, 5)
	for i := range payloads {
		assert.Equal(t, uint64(i+1), seqs[i])
		assert.Equal(t, string(payloads[i]), bodies[i])
	}
}

func TestWriterSegmentRotation(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.FilePrefix = "rot"
	cfg.SegmentMaxBytes = 50 // every record is larger, one record per segment

	writeRecords(t, cfg, [][]byte{
		[]byte("first-payload"),
		[]byte("second-payload"),
		[]byte("third-payload"),
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestWriterAppendBackpressure(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.FilePrefix = "bp"
	cfg.QueueSize = 1 // every burst overruns the queue

	w, err := NewWriter(cfg)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, w.Start(ctx))

	const total = 200
	for i := 0; i < total; i++ {
		require.NoError(t, w.Append(ctx, RecordHeader{
			Kind: RecordTickBatch,
			Seq:  uint64(i + 1),
			Ts:   int64(i + 1),
		}, []byte(fmt.Sprintf("payload-%d", i))))
	}
	require.NoError(t, w.Close())

	pb, err := NewPlayback(PlaybackConfig{Dir: dir, FilePrefix: "bp"})
	require.NoError(t, err)

	var count int
	require.NoError(t, pb.Run(ctx, func(header RecordHeader, payload []byte) error {
		count++
		assert.Equal(t, uint64(count), header.Seq)
		return nil
	}))
	assert.Equal(t, total, count)
}

func TestReaderChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.FilePrefix = "bad"

	writeRecords(t, cfg, [][]byte{[]byte("sensitive-bytes")})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	path := filepath.Join(dir, entries[0].Name())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[recordHeaderSize] ^= 0xff // corrupt the first payload byte
	require.NoError(t, os.WriteFile(path, data, 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	_, _, err = NewReader(file, ReaderOptions{}).Next()
	assert.ErrorIs(t, err, exception.ErrHistoryChecksumMismatch)

	// With checksum validation disabled the record still reads.
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, payload, err := NewReader(file, ReaderOptions{DisableChecksum: true}).Next()
	require.NoError(t, err)
	assert.Len(t, payload, len("sensitive-bytes"))
}

func TestReaderRejectsBadFrames(t *testing.T) {
	t.Run("invalid magic", func(t *testing.T) {
		buf := make([]byte, recordHeaderSize)
		copy(buf, "NOPE")
		_, _, err := decodeRecordHeader(buf)
		assert.ErrorIs(t, err, exception.ErrHistoryInvalidMagic)
	})

	t.Run("short header", func(t *testing.T) {
		_, _, err := decodeRecordHeader(make([]byte, 4))
		assert.ErrorIs(t, err, exception.ErrHistoryInvalidHeader)
	})
}

func TestWriterLifecycle(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(DefaultConfig(dir))
	require.NoError(t, err)

	err = w.TryAppend(RecordHeader{Kind: RecordBar}, []byte("x"))
	assert.ErrorIs(t, err, exception.ErrHistoryNotStarted)

	require.NoError(t, w.Start(context.Background()))
	assert.ErrorIs(t, w.Start(context.Background()), exception.ErrHistoryAlreadyStarted)

	require.NoError(t, w.Close())
	err = w.TryAppend(RecordHeader{Kind: RecordBar}, []byte("x"))
	assert.ErrorIs(t, err, exception.ErrHistoryClosed)
}
