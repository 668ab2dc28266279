package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type (
	TableService interface {
		ListTables(ctx context.Context) ([]domain.TableResponse, error)
		Occupy(ctx context.Context, tableID string) error
		Vacate(ctx context.Context, tableID string) error
		TableQR(ctx context.Context, tableID string) ([]byte, error)
	}

	tableService struct {
		tableRepository TableRepository
	}
)

func NewTableService(tableRepository TableRepository) TableService {
	return &tableService{tableRepository: tableRepository}
}

func (s *tableService) ListTables(ctx context.Context) ([]domain.TableResponse, error) {
	rows, err := s.tableRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TableResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, domain.TableResponse{
			ID:                row.ID,
			TableNumber:       row.TableNumber,
			Status:            row.Status,
			TotalItemsOrdered: row.TotalItemsOrdered,
		})
	}
	return response, nil
}

// Occupy transitions Vacant -> Occupied. A table that is already Occupied
// stays untouched and the caller gets a conflict, so two racing QR scans
// cannot both claim the seat.
func (s *tableService) Occupy(ctx context.Context, tableID string) error {
	if _, err := uuid.Parse(tableID); err != nil {
		return domain.ErrParseUUID
	}

	rows, err := s.tableRepository.OccupyVacant(ctx, tableID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// the guard did not fire: either the id is unknown or another
		// scan already holds the table
		if _, err := s.tableRepository.GetByID(ctx, tableID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTableNotFound
			}
			return err
		}
		return domain.ErrTableOccupied
	}
	return nil
}

func (s *tableService) Vacate(ctx context.Context, tableID string) error {
	if _, err := uuid.Parse(tableID); err != nil {
		return domain.ErrParseUUID
	}
	return s.tableRepository.SetVacant(ctx, tableID)
}

// TableQR renders the scan-to-order link for a table as a PNG.
func (s *tableService) TableQR(ctx context.Context, tableID string) ([]byte, error) {
	table, err := s.tableRepository.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTableNotFound
		}
		return nil, err
	}

	appURL := utils.GetConfig("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}
	link := fmt.Sprintf("%s/scan?table=%d", appURL, table.TableNumber)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
