// Package store persists instrument reference data. Rows hold the codec's
// keyed binary payload, so the database never needs schema changes when the
// instrument gains no new wire keys.
package store

import (
	"context"
	"time"

	"github.com/yanun0323/errors"
	"gorm.io/gorm/clause"

	"main/internal/codec"
	"main/internal/identifier"
	"main/internal/model"
	"main/pkg/conn"
)

type instrumentRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Symbol    string    `gorm:"column:symbol;index"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (instrumentRow) TableName() string {
	return "instruments"
}

// Instruments is the instrument repository.
type Instruments struct {
	client *conn.Client
}

// NewInstruments migrates the instruments table and returns the repository.
func NewInstruments(client *conn.Client) (*Instruments, error) {
	if client == nil || client.DB() == nil {
		return nil, errors.Errorf("nil postgres client")
	}
	if err := client.DB().AutoMigrate(&instrumentRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate instruments table")
	}
	return &Instruments{client: client}, nil
}

// Save upserts the instrument, replacing any stored record wholesale.
func (s *Instruments) Save(ctx context.Context, inst model.Instrument) error {
	payload, err := codec.EncodeInstrument(inst)
	if err != nil {
		return errors.Wrap(err, "encode instrument").With("id", inst.ID.String())
	}

	row := instrumentRow{
		ID:        inst.ID.String(),
		Symbol:    inst.Symbol.String(),
		Payload:   payload,
		UpdatedAt: inst.Timestamp.UTC(),
	}
	if err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&row).Error; err != nil {
		return errors.Wrap(err, "upsert instrument row").With("id", inst.ID.String())
	}
	return nil
}

// Load reads and decodes one instrument by ID.
func (s *Instruments) Load(ctx context.Context, id identifier.InstrumentID) (model.Instrument, error) {
	var row instrumentRow
	if err := s.client.DB().WithContext(ctx).
		First(&row, "id = ?", id.String()).Error; err != nil {
		return model.Instrument{}, errors.Wrap(err, "load instrument row").With("id", id.String())
	}

	inst, err := codec.DecodeInstrument(row.Payload)
	if err != nil {
		return model.Instrument{}, errors.Wrap(err, "decode instrument").With("id", id.String())
	}
	return inst, nil
}

// LoadAll reads and decodes every stored instrument.
func (s *Instruments) LoadAll(ctx context.Context) ([]model.Instrument, error) {
	var rows []instrumentRow
	if err := s.client.DB().WithContext(ctx).
		Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load instrument rows")
	}

	instruments := make([]model.Instrument, len(rows))
	for i, row := range rows {
		inst, err := codec.DecodeInstrument(row.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "decode instrument").With("id", row.ID)
		}
		instruments[i] = inst
	}
	return instruments, nil
}

// Delete removes one instrument by ID.
func (s *Instruments) Delete(ctx context.Context, id identifier.InstrumentID) error {
	if err := s.client.DB().WithContext(ctx).
		Delete(&instrumentRow{}, "id = ?", id.String()).Error; err != nil {
		return errors.Wrap(err, "delete instrument row").With("id", id.String())
	}
	return nil
}
