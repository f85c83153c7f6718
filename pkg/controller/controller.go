// Package controller owns the percentage shown by a gauge. The renderer
// never changes it; hosts mutate it here and receive it through the bus.
package controller

import (
	"log"
	"sync"

	"github.com/roffe/speedometer/pkg/ebus"
	"github.com/roffe/speedometer/pkg/gauge"
)

const DefaultStep = 10

type Controller struct {
	mu    sync.Mutex
	bus   *ebus.Bus
	topic string
	step  int
	value int
}

// New returns a controller publishing on topic. A nil bus is allowed.
func New(bus *ebus.Bus, topic string, step int) *Controller {
	if step <= 0 {
		step = DefaultStep
	}
	return &Controller{bus: bus, topic: topic, step: step}
}

func (c *Controller) Topic() string { return c.topic }

func (c *Controller) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores the clamped value, publishes it and returns it.
func (c *Controller) Set(value int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(value)
}

func (c *Controller) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(c.value + c.step)
}

func (c *Controller) Decrement() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(c.value - c.step)
}

func (c *Controller) setLocked(value int) int {
	c.value = gauge.Clamp(value)
	if c.bus != nil {
		if err := c.bus.Publish(c.topic, float64(c.value)); err != nil {
			log.Printf("publish %s: %v", c.topic, err)
		}
	}
	return c.value
}
