package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

var (
	ErrClosed = errors.New("bus closed")
	ErrFull   = errors.New("publish channel full")
)

type Message struct {
	Topic string
	Data  float64
}

// Bus delivers the latest value of a topic to its subscribers. New
// subscribers get the last published value replayed if it has not expired.
type Bus struct {
	in    chan Message
	done  chan struct{}
	once  sync.Once
	cache *ttlcache.Cache[string, float64]

	subsMutex sync.Mutex
	subs      map[string][]chan float64
}

func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = time.Minute
	}
	b := &Bus{
		in:   make(chan Message, 100),
		done: make(chan struct{}),
		subs: make(map[string][]chan float64),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.run()
	return b
}

func (b *Bus) run() {
	for {
		select {
		case <-b.done:
			return
		case msg := <-b.in:
			b.subsMutex.Lock()
			if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Data {
				b.subsMutex.Unlock()
				continue
			}
			b.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Data:
				default:
				}
			}
			b.subsMutex.Unlock()
		}
	}
}

func (b *Bus) Publish(topic string, data float64) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.in <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return ErrFull
	}
}

// Last returns the cached value of topic.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

func (b *Bus) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, 100)
	b.subsMutex.Lock()
	defer b.subsMutex.Unlock()
	select {
	case <-b.done:
		close(respChan)
		return respChan
	default:
	}
	b.subs[topic] = append(b.subs[topic], respChan)
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc calls f for every value published on topic and returns a
// function that unsubscribes it.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	b.subsMutex.Lock()
	defer b.subsMutex.Unlock()
	for topic, subz := range b.subs {
		for i, sub := range subz {
			if sub == channel {
				b.subs[topic] = append(subz[:i], subz[i+1:]...)
				close(channel)
				if len(b.subs[topic]) == 0 {
					delete(b.subs, topic)
				}
				return
			}
		}
	}
}

// Close stops the bus and closes every subscriber channel.
func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.done)
		b.subsMutex.Lock()
		defer b.subsMutex.Unlock()
		for topic, subz := range b.subs {
			for _, sub := range subz {
				close(sub)
			}
			delete(b.subs, topic)
		}
		b.cache.DeleteAll()
		log.Println("ebus closed")
	})
}
