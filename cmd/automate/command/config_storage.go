package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/farmhand/go-automate/internal/item"
	"github.com/farmhand/go-automate/internal/machine"
	"github.com/farmhand/go-automate/internal/storage"
	"github.com/farmhand/go-automate/internal/world"
)

type StorageConfig struct {
	Items    AssetConfig[*item.Definition] `json:"items"`
	Machines AssetConfig[*machine.Kind]    `json:"machines"`
	Recipes  AssetConfig[*machine.Recipe]  `json:"recipes"`
	Layouts  AssetConfig[*world.Layout]    `json:"layouts"`
}

// Library bundles the definition stores the engine reads from.
type Library struct {
	Items   storage.Storer[*item.Definition]
	Kinds   storage.Storer[*machine.Kind]
	Recipes *machine.RecipeIndex
}

func (c *StorageConfig) BuildLibrary() (*Library, error) {
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	kinds, err := c.Machines.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating machine kind store: %w", err)
	}
	recipes, err := c.Recipes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating recipe store: %w", err)
	}

	return &Library{
		Items:   items,
		Kinds:   kinds,
		Recipes: machine.NewRecipeIndex(recipes),
	}, nil
}

// BuildWorld loads every location layout and instantiates the world.
func (c *StorageConfig) BuildWorld() (*world.World, error) {
	layouts, err := c.Layouts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating layout store: %w", err)
	}

	w := world.NewWorld()
	for id, layout := range layouts.GetAll() {
		loc, err := layout.Build(id)
		if err != nil {
			return nil, err
		}
		w.AddLocation(loc)
	}

	return w, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("items"))
	el.Add(c.Machines.Validate("machines"))
	el.Add(c.Recipes.Validate("recipes"))
	el.Add(c.Layouts.Validate("layouts"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
