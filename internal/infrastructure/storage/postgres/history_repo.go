package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"stockbook/internal/core/id"
	"stockbook/internal/domain/sales"
)

// CompressionAlgo specifies the compression algorithm used for the
// stored sale snapshot.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// HistoryRepo implements sales.HistoryStore. Each status change is
// stored together with a JSON snapshot of the sale at that moment,
// zstd-compressed when large.
type HistoryRepo struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewHistoryRepo creates a new status history repository.
func NewHistoryRepo(txManager *TxManager) (*HistoryRepo, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &HistoryRepo{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

var _ sales.HistoryStore = (*HistoryRepo)(nil)

// Record appends a status change with a snapshot of the sale.
func (r *HistoryRepo) Record(ctx context.Context, change sales.StatusChange, snapshot *sales.Sale) error {
	if id.IsNil(change.ID) {
		change.ID = id.New()
	}
	if change.ChangedAt.IsZero() {
		change.ChangedAt = time.Now().UTC()
	}

	var snapshotJSON, snapshotCompressed []byte
	algo := CompressionNone
	if snapshot != nil {
		raw, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		snapshotJSON = raw
		if len(raw) > r.compressThreshold {
			snapshotCompressed = r.encoder.EncodeAll(raw, nil)
			snapshotJSON = nil
			algo = CompressionZstd
		}
	}

	sql := `
		INSERT INTO sale_status_history (
			id, sale_id, from_status, to_status,
			snapshot, snapshot_compressed, compression_algo, changed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	querier := r.txManager.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		change.ID, change.SaleID, change.From, change.To,
		snapshotJSON, snapshotCompressed, algo, change.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("insert status change: %w", err)
	}

	return nil
}

// ListBySale returns all status changes for a sale, oldest first.
func (r *HistoryRepo) ListBySale(ctx context.Context, saleID id.ID) ([]sales.StatusChange, error) {
	sql := `
		SELECT id, sale_id, from_status, to_status, changed_at
		FROM sale_status_history
		WHERE sale_id = $1
		ORDER BY changed_at ASC
	`

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, saleID)
	if err != nil {
		return nil, fmt.Errorf("query status history: %w", err)
	}
	defer rows.Close()

	var changes []sales.StatusChange
	for rows.Next() {
		var c sales.StatusChange
		if err := rows.Scan(&c.ID, &c.SaleID, &c.From, &c.To, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan status change: %w", err)
		}
		changes = append(changes, c)
	}

	return changes, rows.Err()
}

// Snapshot returns the stored sale snapshot for one status change,
// decompressed when needed. Nil when no snapshot was recorded.
func (r *HistoryRepo) Snapshot(ctx context.Context, changeID id.ID) (*sales.Sale, error) {
	sql := `
		SELECT snapshot, snapshot_compressed, compression_algo
		FROM sale_status_history
		WHERE id = $1
	`

	var raw, compressed []byte
	var algo CompressionAlgo
	row := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, changeID)
	if err := row.Scan(&raw, &compressed, &algo); err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	if algo == CompressionZstd && len(compressed) > 0 {
		decompressed, err := r.decoder.DecodeAll(compressed, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress snapshot: %w", err)
		}
		raw = decompressed
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var sale sales.Sale
	if err := json.Unmarshal(raw, &sale); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &sale, nil
}
