package menu

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		List(ctx context.Context) ([]domain.MenuItemResponse, error)
		Get(ctx context.Context, id string) (domain.MenuItemResponse, error)
		UpsertByName(ctx context.Context, req domain.UpsertMenuItemRequest) (domain.MenuItemResponse, bool, error)
		Delete(ctx context.Context, id string) error
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

func readImage(file *multipart.FileHeader) ([]byte, error) {
	if file == nil {
		return nil, nil
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toResponse(item *entities.MenuItem) domain.MenuItemResponse {
	res := domain.MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       domain.FormatPrice(item.Price),
		CreatedAt:   item.CreatedAt,
	}
	if len(item.Image) > 0 {
		res.Image = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(item.Image)
	}
	return res
}

func (s *menuService) List(ctx context.Context) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, nil
}

func (s *menuService) Get(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toResponse(item), nil
}

// UpsertByName matches on the unique business key: an existing item is
// updated in place (same id), a new one is inserted with a creation audit
// log entry. The second return reports whether a row was created.
func (s *menuService) UpsertByName(ctx context.Context, req domain.UpsertMenuItemRequest) (domain.MenuItemResponse, bool, error) {
	if req.Price <= 0 {
		return domain.MenuItemResponse{}, false, domain.ErrInvalidPrice
	}

	imageBytes, err := readImage(req.Image)
	if err != nil {
		return domain.MenuItemResponse{}, false, err
	}

	existing, err := s.menuRepository.GetByName(ctx, req.Name)
	if err == nil {
		existing.Description = req.Description
		existing.Category = req.Category
		existing.Price = req.Price
		if imageBytes != nil {
			existing.Image = imageBytes
		}
		if err := s.menuRepository.Update(ctx, existing); err != nil {
			return domain.MenuItemResponse{}, false, err
		}
		return toResponse(existing), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MenuItemResponse{}, false, err
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Image:       imageBytes,
	}
	if err := s.menuRepository.Create(ctx, item); err != nil {
		return domain.MenuItemResponse{}, false, err
	}

	if err := s.menuRepository.AppendLog(ctx, &entities.MenuItemLog{
		ID:         uuid.New(),
		MenuItemID: item.ID,
		Action:     "added",
	}); err != nil {
		return domain.MenuItemResponse{}, false, err
	}

	return toResponse(item), true, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.menuRepository.Delete(ctx, id)
}
