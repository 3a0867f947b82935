package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/skip2/go-qrcode"

	"restman/internal/domain"
)

var (
	ErrTableNotFound      = errors.New("table not found")
	ErrInvalidTableStatus = errors.New("unknown table status")
	ErrInvalidWindow      = errors.New("end time must be after start time")
)

// TableService serves the occupancy board, the availability query for
// bookings and the per-table QR codes that seed a table session.
type TableService struct {
	repository TableRepository
	menuURL    string
}

// NewTableService takes the public base URL encoded into table QR codes,
// e.g. "https://restman.example.com".
func NewTableService(repository TableRepository, menuURL string) *TableService {
	return &TableService{repository: repository, menuURL: menuURL}
}

func (s *TableService) ListStatuses(ctx context.Context) ([]domain.Table, error) {
	return s.repository.List()
}

// UpdateStatus writes the new status and returns the stored row. Callers
// render the returned record, not their tentative update; on error they
// must refetch the full board via ListStatuses instead of trusting local
// state.
func (s *TableService) UpdateStatus(ctx context.Context, tableID int, status domain.TableStatus) (*domain.Table, error) {
	if !domain.ValidTableStatus(status) {
		return nil, ErrInvalidTableStatus
	}

	table, err := s.repository.UpdateStatus(tableID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}
	return table, nil
}

// Available lists tables with enough capacity whose booking windows do
// not overlap the queried window.
func (s *TableService) Available(ctx context.Context, start, end time.Time, guests int) ([]domain.Table, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	if guests < 1 {
		return nil, ErrInvalidPartySize
	}
	return s.repository.Available(start, end, guests)
}

// QRCode returns the table's QR PNG, generating and caching it on first
// request. The payload is the menu URL with the table preselected, which
// is what binds a browsing session to the table.
func (s *TableService) QRCode(ctx context.Context, tableID int) ([]byte, error) {
	if _, err := s.repository.Get(tableID); err != nil {
		return nil, ErrTableNotFound
	}

	png, err := s.repository.QRCode(tableID)
	if err == nil && len(png) > 0 {
		return png, nil
	}

	payload := fmt.Sprintf("%s/menu?table=%d", s.menuURL, tableID)
	png, err = qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	if err := s.repository.SaveQRCode(tableID, png); err != nil {
		log.Printf("[restman] failed to cache QR code for table %d: %v", tableID, err)
	}
	return png, nil
}
