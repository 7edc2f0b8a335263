package webapp

import (
	"errors"
	"fmt"

	"github.com/ljpx/di"
)

var _ ControllerRegistry = &Controllers{}

var (
	// ErrControllerNotRegistered is returned when no controller is registered
	// under the requested name.
	ErrControllerNotRegistered = errors.New("controller is not registered")

	// ErrAmbiguousController is returned when a short name matches more than
	// one registered controller.
	ErrAmbiguousController = errors.New("controller name is ambiguous")
)

// ControllerRegistry resolves controllers by name.  *Controllers implements
// it, and it is the type the registry is held under in the container.
type ControllerRegistry interface {
	Resolve(c di.Container, name string) (Controller, error)
}

// ControllerFactory creates a controller, resolving its dependencies from c.
type ControllerFactory func(c di.Container) (Controller, error)

// Controllers is a registry of controller factories keyed by name.  Routes
// refer to controllers by name, and the registry is resolved from the
// container for every request.  Controllers is not thread-safe for
// registration; resolution may happen concurrently once registration is done.
type Controllers struct {
	names     []string
	factories map[string]ControllerFactory
}

// NewControllers creates a new, empty registry.
func NewControllers() *Controllers {
	return &Controllers{
		factories: make(map[string]ControllerFactory),
	}
}

// RegisterControllers makes cs resolvable from c as a singleton
// ControllerRegistry.
func RegisterControllers(c di.Container, cs *Controllers) {
	c.Register(di.Singleton, func(c di.Container) (ControllerRegistry, error) {
		return cs, nil
	})
}

// Register adds a factory under name.  It panics if name is empty or already
// registered.
func (cs *Controllers) Register(name string, factory ControllerFactory) {
	if name == "" {
		panic("a controller can not be registered without a name")
	}

	if _, exists := cs.factories[name]; exists {
		panic(fmt.Sprintf("a controller named '%v' has already been registered", name))
	}

	cs.names = append(cs.names, name)
	cs.factories[name] = factory
}

// Add registers controller under ControllerName(controller) and returns that
// name.
func (cs *Controllers) Add(controller Controller) string {
	name := ControllerName(controller)
	cs.Register(name, func(di.Container) (Controller, error) {
		return controller, nil
	})

	return name
}

// Names returns the registered names in registration order.
func (cs *Controllers) Names() []string {
	names := make([]string, len(cs.names))
	copy(names, cs.names)

	return names
}

// Resolve creates the controller registered under name.  An exact match is
// preferred; otherwise name is matched against the short names of the
// registered controllers and must identify exactly one.
func (cs *Controllers) Resolve(c di.Container, name string) (Controller, error) {
	factory, err := cs.lookup(name)
	if err != nil {
		return nil, err
	}

	controller, err := factory(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller '%v': %w", name, err)
	}

	if controller == nil {
		return nil, fmt.Errorf("%w: the factory for '%v' returned nil", ErrControllerNotRegistered, name)
	}

	return controller, nil
}

func (cs *Controllers) lookup(name string) (ControllerFactory, error) {
	if factory, ok := cs.factories[name]; ok {
		return factory, nil
	}

	short := ShortControllerName(name)
	matches := []string{}

	for _, registered := range cs.names {
		if ShortControllerName(registered) == short {
			matches = append(matches, registered)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: '%v'", ErrControllerNotRegistered, name)
	case 1:
		return cs.factories[matches[0]], nil
	default:
		return nil, fmt.Errorf("%w: '%v' matches %v", ErrAmbiguousController, name, matches)
	}
}
