// Package dependency wires the toolbridge services together.
package dependency

import (
	"go.uber.org/dig"

	"github.com/toolbridge/toolbridge/internal/config"
	"github.com/toolbridge/toolbridge/internal/tools"
)

// ServiceContainer holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type ServiceContainer struct {
	cfg     *config.Config
	manager *tools.Manager
	list    *tools.ToolList
}

func (c *ServiceContainer) Config() *config.Config    { return c.cfg }
func (c *ServiceContainer) Manager() *tools.Manager   { return c.manager }
func (c *ServiceContainer) ToolList() *tools.ToolList { return c.list }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*ServiceContainer, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewManager); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *tools.ToolList { return tools.NewToolList() }); err != nil {
		return nil, err
	}

	var result *ServiceContainer
	err := d.Invoke(func(
		cfg *config.Config,
		manager *tools.Manager,
		list *tools.ToolList,
	) {
		result = &ServiceContainer{
			cfg:     cfg,
			manager: manager,
			list:    list,
		}
	})
	return result, err
}
