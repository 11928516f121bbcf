package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-service"

	"github.com/farmhand/go-automate/internal/console"
	"github.com/farmhand/go-automate/internal/driver"
	"github.com/farmhand/go-automate/internal/engine"
	"github.com/farmhand/go-automate/internal/listener"
	"github.com/farmhand/go-automate/internal/messaging"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load definition data and the world
	lib, err := cfg.Storage.BuildLibrary()
	if err != nil {
		return nil, fmt.Errorf("building library: %w", err)
	}
	w, err := cfg.Storage.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	// Messaging server and event publisher
	msgServer, err := cfg.Nats.BuildServer()
	if err != nil {
		return nil, fmt.Errorf("creating messaging server: %w", err)
	}
	pub := messaging.NewPublisher(msgServer)

	// Automation engine, rebuilt on world changes
	var factoryOpts []engine.FactoryOpt
	if cfg.SearchRadius > 0 {
		factoryOpts = append(factoryOpts, engine.WithSearchRadius(cfg.SearchRadius))
	}
	factory := engine.NewFactory(w, lib.Kinds, lib.Items, lib.Recipes, factoryOpts...)
	eng := engine.New(factory, engine.WithEventSink(pub))

	w.OnLocationsChanged(eng.RebuildAll)
	w.OnContentsChanged(eng.RebuildOne)
	eng.RebuildAll()

	// Status console listeners
	cm := listener.NewConnectionManager(console.New(eng, w))
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Tick driver: advance machine timers, then run the automation pass
	tickLength, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	drv := driver.New(
		[]driver.Ticker{w, eng},
		driver.WithTickLength(tickLength),
	)

	return service.WorkerList{
		"messaging": msgServer,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}
