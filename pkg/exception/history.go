package exception

import "errors"

var (
	ErrHistoryInvalidMagic     = errors.New("history: invalid record magic")
	ErrHistoryUnsupportedVer   = errors.New("history: unsupported record version")
	ErrHistoryInvalidHeader    = errors.New("history: invalid record header size")
	ErrHistoryChecksumMismatch = errors.New("history: record checksum mismatch")
	ErrHistoryPayloadTooLarge  = errors.New("history: payload too large")
	ErrHistoryQueueFull        = errors.New("history: writer queue full")
	ErrHistoryClosed           = errors.New("history: writer closed")
	ErrHistoryNotStarted       = errors.New("history: writer not started")
	ErrHistoryAlreadyStarted   = errors.New("history: writer already started")
)

var (
	ErrCatalogDuplicateID     = errors.New("catalog: instrument id already exists")
	ErrCatalogDuplicateSymbol = errors.New("catalog: symbol already mapped to another instrument")
	ErrCatalogNotFound        = errors.New("catalog: instrument id not found")
)
