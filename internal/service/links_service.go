package service

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"

	"astrodash/internal/models"
)

type LinksService interface {
	GetLinks() ([]models.LinkItem, error)
}

type linksService struct {
	path string
}

func NewLinksService(path string) LinksService {
	return &linksService{path: path}
}

// GetLinks читает YAML со ссылками при каждом вызове, чтобы файл можно было
// править без рестарта. Кривые записи пропускаем с warning'ом, а не валимся.
func (s *linksService) GetLinks() ([]models.LinkItem, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Links file not found at %s; returning empty list", s.path)
			return []models.LinkItem{}, nil
		}
		return nil, fmt.Errorf("failed to read links file: %w", err)
	}

	var rows []interface{}
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse links file: %w", err)
	}

	items := make([]models.LinkItem, 0, len(rows))
	for _, row := range rows {
		item, err := linkFromRow(row)
		if err != nil {
			log.Printf("Invalid link row %v: %v", row, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func linkFromRow(row interface{}) (models.LinkItem, error) {
	fields, ok := row.(map[string]interface{})
	if !ok {
		return models.LinkItem{}, fmt.Errorf("row is not a mapping")
	}

	name, _ := fields["name"].(string)
	url, _ := fields["url"].(string)
	if name == "" || url == "" {
		return models.LinkItem{}, fmt.Errorf("name and url are required")
	}

	group, _ := fields["group"].(string)
	icon, _ := fields["icon"].(string)

	return models.LinkItem{Name: name, URL: url, Group: group, Icon: icon}, nil
}
