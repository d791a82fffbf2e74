package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	pyroscope "github.com/grafana/pyroscope-go"

	"main/internal/codec"
	"main/internal/history"
)

func main() {
	dir := flag.String("dir", "testdata/history", "history directory")
	prefix := flag.String("prefix", "", "history file prefix (default: hist)")
	speed := flag.Float64("speed", 0, "Playback speed (1=real-time, 0=no pacing)")
	noChecksum := flag.Bool("no-checksum", false, "Disable checksum validation")
	maxPayload := flag.Int("max-payload", 0, "Max payload size in bytes (0=unlimited)")
	decode := flag.Bool("decode", false, "Decode known payload kinds")
	profile := flag.String("profile", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	if *profile != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "history/replay",
			ServerAddress:   *profile,
			Tags: map[string]string{
				"env": "local",
			},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	cfg := history.PlaybackConfig{
		Dir:             *dir,
		FilePrefix:      *prefix,
		Speed:           *speed,
		DisableChecksum: *noChecksum,
		MaxPayloadSize:  *maxPayload,
	}
	pb, err := history.NewPlayback(cfg)
	if err != nil {
		log.Fatalf("playback init failed: %v", err)
	}

	ctx := context.Background()
	var index int
	err = pb.Run(ctx, func(header history.RecordHeader, payload []byte) error {
		index++
		fmt.Printf("%06d seq=%d kind=%s ts=%d len=%d\n", index, header.Seq, recordKindName(header.Kind), header.Ts, len(payload))
		if *decode {
			printDecoded(header.Kind, payload)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("playback run failed: %v", err)
	}
}

func recordKindName(k history.RecordKind) string {
	switch k {
	case history.RecordTickBatch:
		return "TickBatch"
	case history.RecordBar:
		return "Bar"
	case history.RecordInstrument:
		return "Instrument"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

func printDecoded(k history.RecordKind, payload []byte) {
	switch k {
	case history.RecordTickBatch:
		ticks, err := codec.DecodeTicks(payload)
		if err != nil {
			fmt.Printf("  decode TickBatch failed: %v\n", err)
			return
		}
		if len(ticks) == 0 {
			return
		}
		fmt.Printf("  batch symbol=%s count=%d first=%s last=%s\n",
			ticks[0].Symbol, len(ticks), ticks[0], ticks[len(ticks)-1])
	case history.RecordBar:
		bar, err := codec.DecodeBar(payload)
		if err != nil {
			fmt.Printf("  decode Bar failed: %v\n", err)
			return
		}
		fmt.Printf("  bar %s\n", bar)
	case history.RecordInstrument:
		inst, err := codec.DecodeInstrument(payload)
		if err != nil {
			fmt.Printf("  decode Instrument failed: %v\n", err)
			return
		}
		fmt.Printf("  instrument id=%s symbol=%s currency=%s type=%s tick_size=%s\n",
			inst.ID, inst.Symbol, inst.QuoteCurrency, inst.SecurityType, inst.TickSize)
	default:
		return
	}
}
