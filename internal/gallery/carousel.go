package gallery

import (
	"sync"
	"time"
)

// Carousel auto-advances through an ordered image sequence on a fixed
// interval, wrapping at the end. With zero or one image it never starts a
// timer. Stop cancels the timer goroutine and is safe to call more than
// once; a stopped carousel keeps serving its last index.
type Carousel struct {
	mu     sync.Mutex
	images []Image
	index  int

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewCarousel(images []Image, interval time.Duration) *Carousel {
	c := &Carousel{
		images: images,
		done:   make(chan struct{}),
	}
	if len(images) <= 1 || interval <= 0 {
		return c
	}
	c.ticker = time.NewTicker(interval)
	go c.run()
	return c
}

func (c *Carousel) run() {
	for {
		select {
		case <-c.ticker.C:
			c.Advance()
		case <-c.done:
			return
		}
	}
}

// Advance moves to the next image, wrapping to the start.
func (c *Carousel) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) <= 1 {
		return
	}
	c.index = (c.index + 1) % len(c.images)
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the image under the cursor, false for an empty sequence.
func (c *Carousel) Current() (Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.images) == 0 {
		return Image{}, false
	}
	return c.images[c.index], true
}

// Stop cancels the recurring timer. Must be called on teardown so the
// goroutine does not keep firing against a discarded carousel.
func (c *Carousel) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
		if c.ticker != nil {
			c.ticker.Stop()
		}
	})
}
