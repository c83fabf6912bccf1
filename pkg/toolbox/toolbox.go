// Package toolbox serves the toolbox menus of the db consoles. Menus are declared in YAML files
// named after the db type they belong to.
package toolbox

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/xfwduke/blueking-dbm/internal/errdef"
	"github.com/xfwduke/blueking-dbm/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed menus/*.yaml
var menusFS embed.FS

// Catalog holds the validated menus of every db type.
type Catalog struct {
	menus map[string][]model.Menu
}

// Load parses the menus shipped with the binary.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(menusFS, "menus")
	if err != nil {
		return nil, err
	}
	return Parse(sub)
}

// Parse reads every *.yaml file at the root of fsys. The file name without extension is the db
// type.
func Parse(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("error listing menu files: %v", err)
	}

	catalog := &Catalog{menus: make(map[string][]model.Menu, len(files))}
	for _, file := range files {
		dbType := strings.TrimSuffix(path.Base(file), ".yaml")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading menus of %q: %v", dbType, err)
		}

		var menus []model.Menu
		if err := yaml.Unmarshal(data, &menus); err != nil {
			return nil, fmt.Errorf("error parsing menus of %q: %v", dbType, err)
		}

		if err := validate(menus); err != nil {
			return nil, fmt.Errorf("invalid menus of %q: %w", dbType, err)
		}

		catalog.menus[dbType] = menus
	}

	return catalog, nil
}

func validate(menus []model.Menu) error {
	var errs []error
	ids := make(map[string]struct{})
	unique := func(id string) {
		if id == "" {
			errs = append(errs, errors.New("missing id"))
			return
		}
		if _, ok := ids[id]; ok {
			errs = append(errs, fmt.Errorf("duplicate id %q", id))
		}
		ids[id] = struct{}{}
	}

	for _, menu := range menus {
		unique(menu.ID)
		if menu.Name == "" {
			errs = append(errs, fmt.Errorf("menu %q has no name", menu.ID))
		}

		for _, child := range menu.Children {
			unique(child.ID)
			if child.Name == "" {
				errs = append(errs, fmt.Errorf("entry %q has no name", child.ID))
			}
			if child.ParentID != menu.ID {
				errs = append(errs, fmt.Errorf("entry %q has parentId %q but belongs to %q", child.ID, child.ParentID, menu.ID))
			}
			if child.DBConsoleValue == "" {
				errs = append(errs, fmt.Errorf("entry %q has no dbConsoleValue", child.ID))
			}
			if child.TicketType != "" && !child.TicketType.Valid() {
				errs = append(errs, fmt.Errorf("entry %q has unknown ticket type %q", child.ID, child.TicketType))
			}
		}
	}

	return errors.Join(errs...)
}

// DBTypes returns the db types having menus, sorted by name.
func (c *Catalog) DBTypes() []string {
	types := make([]string, 0, len(c.menus))
	for dbType := range c.menus {
		types = append(types, dbType)
	}
	slices.Sort(types)
	return types
}

// Menus returns the menus of the given db type.
func (c *Catalog) Menus(dbType string) ([]model.Menu, error) {
	menus, ok := c.menus[dbType]
	if !ok {
		return nil, errdef.NewNotFound("no menus for db type %q", dbType)
	}
	return menus, nil
}

// Find returns the entry with the given id of a db type's menus.
func (c *Catalog) Find(dbType, id string) (model.MenuChild, error) {
	menus, err := c.Menus(dbType)
	if err != nil {
		return model.MenuChild{}, err
	}

	for _, menu := range menus {
		for _, child := range menu.Children {
			if child.ID == id {
				return child, nil
			}
		}
	}
	return model.MenuChild{}, errdef.NewNotFound("no menu entry %q for db type %q", id, dbType)
}
