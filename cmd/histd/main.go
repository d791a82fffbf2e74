package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/history"
	"main/internal/identifier"
	"main/internal/model"
	"main/internal/ops"
	"main/internal/store"
	"main/pkg/conn"
)

const batchSize = 1000

func main() {
	if err := run(); err != nil {
		logs.Errorf("histd: %+v", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.json", "JSON config path")
	ticksPath := flag.String("ticks", "", "CSV tick file (bid,ask,timestamp per line)")
	symbolFlag := flag.String("symbol", "", "symbol for the tick file, e.g. AUDUSD.OANDA")
	pgDSN := flag.String("pg-dsn", "", "postgres DSN for instrument persistence (empty=skip)")
	flag.Parse()

	loaded, err := ops.Load(*configPath)
	if err != nil {
		return err
	}
	logs.Infof("session trader=%s strategy=%s broker=%s instruments=%d",
		loaded.Trader, loaded.Strategy, loaded.Broker, loaded.Catalog.Len())

	ctx := context.Background()
	writer, err := history.NewWriter(loaded.History)
	if err != nil {
		return err
	}
	if err := writer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logs.Errorf("close history writer: %+v", err)
		}
	}()

	var seq uint64
	for _, inst := range loaded.Catalog.List() {
		payload, err := codec.EncodeInstrument(inst)
		if err != nil {
			return err
		}
		seq++
		if err := writer.Append(ctx, history.RecordHeader{
			Kind: history.RecordInstrument,
			Seq:  seq,
			Ts:   inst.Timestamp.UnixNano(),
		}, payload); err != nil {
			return err
		}
	}
	logs.Infof("wrote %d instrument records", seq)

	if *ticksPath != "" {
		if *symbolFlag == "" {
			return errors.New("missing symbol; use -symbol with -ticks")
		}
		symbol, err := identifier.ParseSymbol(*symbolFlag)
		if err != nil {
			return err
		}
		count, err := ingestTicks(ctx, writer, &seq, symbol, *ticksPath)
		if err != nil {
			return err
		}
		logs.Infof("wrote %d ticks for %s", count, symbol)
	}

	if *pgDSN != "" {
		if err := persistInstruments(ctx, *pgDSN, loaded); err != nil {
			return err
		}
	}

	return nil
}

// ingestTicks decodes one tick per line and appends them to history in
// batches of batchSize, preserving file order. Appends block for queue space
// so a slow disk throttles the read instead of failing the ingest.
func ingestTicks(ctx context.Context, writer *history.Writer, seq *uint64, symbol identifier.Symbol, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var (
		count int
		batch = make([]model.Tick, 0, batchSize)
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		payload, err := codec.EncodeTicks(batch)
		if err != nil {
			return err
		}
		*seq++
		if err := writer.Append(ctx, history.RecordHeader{
			Kind: history.RecordTickBatch,
			Seq:  *seq,
			Ts:   batch[len(batch)-1].Time.UnixNano(),
		}, payload); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tick, err := codec.DecodeTick(symbol, []byte(line))
		if err != nil {
			return count, err
		}
		batch = append(batch, tick)
		count++
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, flush()
}

func persistInstruments(ctx context.Context, dsn string, loaded ops.Loaded) error {
	client, err := conn.New(conn.Option{ConnString: dsn})
	if err != nil {
		return err
	}
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return err
	}

	repo, err := store.NewInstruments(client)
	if err != nil {
		return err
	}
	for _, inst := range loaded.Catalog.List() {
		if err := repo.Save(ctx, inst); err != nil {
			return err
		}
	}
	logs.Infof("persisted %d instruments", loaded.Catalog.Len())
	return nil
}
