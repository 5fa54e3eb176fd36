package service

import (
	"fmt"

	"studyorg/internal/items/data"
	"studyorg/internal/logs"
)

// ItemService defines the operations on the three category sequences.
type ItemService interface {
	List(category data.Category) []data.Item
	Get(id string) (*data.Item, error)
	Add(category data.Category, name string, raw data.RawInput) (*data.Item, error)
	Append(item data.Item) *data.Item
	Modify(id string, newName string, raw data.RawInput) (*data.Item, error)
	Delete(id string) error
	Average() data.Average
	Count(category data.Category) int
	Seed(seed data.Seed) []error
}

type itemServiceImpl struct {
	sequences map[data.Category][]data.Item
}

// NewItemService creates an empty in-memory store.
func NewItemService() ItemService {
	return &itemServiceImpl{
		sequences: map[data.Category][]data.Item{
			data.CategoryAssignment: {},
			data.CategoryExam:       {},
			data.CategoryGrade:      {},
		},
	}
}

// NewSeededItemService creates a store holding seed. Invalid entries are logged and skipped.
func NewSeededItemService(seed data.Seed) ItemService {
	svc := NewItemService()
	svc.Seed(seed)
	return svc
}

func (s *itemServiceImpl) List(category data.Category) []data.Item {
	out := make([]data.Item, len(s.sequences[category]))
	copy(out, s.sequences[category])
	return out
}

func (s *itemServiceImpl) Count(category data.Category) int {
	return len(s.sequences[category])
}

func (s *itemServiceImpl) Get(id string) (*data.Item, error) {
	for _, c := range data.Categories {
		if i := data.IndexOf(s.sequences[c], id); i >= 0 {
			it := s.sequences[c][i]
			return &it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", data.ErrNotFound, id)
}

func (s *itemServiceImpl) Add(category data.Category, name string, raw data.RawInput) (*data.Item, error) {
	name, err := data.ValidateName(name)
	if err != nil {
		return nil, err
	}
	detail, err := data.ParseDetail(category, raw.Trimmed())
	if err != nil {
		return nil, err
	}

	item := data.NewItem(category, name, detail)
	s.sequences[category] = append(s.sequences[category], item)

	log := logs.Component("store")
	log.Debug().Str("id", item.ID).Str("category", category.String()).Str("name", name).Msg("item added")
	return &item, nil
}

// Append adds an already validated item to the end of its category sequence.
func (s *itemServiceImpl) Append(item data.Item) *data.Item {
	s.sequences[item.Category] = append(s.sequences[item.Category], item)

	log := logs.Component("store")
	log.Debug().Str("id", item.ID).Str("category", item.Category.String()).Str("name", item.Name).Msg("item appended")
	return &item
}

func (s *itemServiceImpl) Modify(id string, newName string, raw data.RawInput) (*data.Item, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updated := *current
	raw = raw.Trimmed()
	if raw.Touched(current.Category) {
		detail, err := data.ParseDetail(current.Category, raw)
		if err != nil {
			return nil, err
		}
		updated.Detail = detail
	}
	if name, err := data.ValidateName(newName); err == nil {
		updated.Name = name
	}

	seq, ok := data.UpdateItem(s.sequences[current.Category], updated)
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrNotFound, id)
	}
	s.sequences[current.Category] = seq

	log := logs.Component("store")
	log.Debug().Str("id", id).Str("name", updated.Name).Str("details", updated.Details()).Msg("item modified")
	return &updated, nil
}

func (s *itemServiceImpl) Delete(id string) error {
	for _, c := range data.Categories {
		if seq, ok := data.DeleteItem(s.sequences[c], id); ok {
			s.sequences[c] = seq
			log := logs.Component("store")
			log.Debug().Str("id", id).Str("category", c.String()).Msg("item deleted")
			return nil
		}
	}
	return fmt.Errorf("%w: %s", data.ErrNotFound, id)
}

func (s *itemServiceImpl) Average() data.Average {
	return data.AverageItems(s.sequences[data.CategoryGrade])
}

func (s *itemServiceImpl) Seed(seed data.Seed) []error {
	log := logs.Component("store")
	if seed.IsEmpty() {
		log.Debug().Msg("empty seed")
		return nil
	}

	var errs []error
	for _, c := range data.Categories {
		for _, e := range seed.Entries(c) {
			item, err := data.BuildItem(c, e)
			if err != nil {
				log.Warn().Err(err).Str("category", c.String()).Str("name", e.Name).Msg("skipping seed entry")
				errs = append(errs, fmt.Errorf("%s %q: %w", c, e.Name, err))
				continue
			}
			s.Append(item)
		}
	}
	return errs
}
