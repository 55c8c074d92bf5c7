package contentdump

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pagemill/pagemill/internal/errors"
	"github.com/pagemill/pagemill/internal/util/sets"
)

// Context owns the set of source files already dumped during one build
// pipeline run. It is created at pipeline start and discarded at pipeline end;
// there is no ambient singleton. The set only gates a cosmetic optimization
// (skipping duplicate indexing), so racing invocations at worst trigger a
// redundant index write.
type Context struct {
	buildID   string
	index     *Index
	publisher *Publisher

	mu      sync.Mutex
	emitted sets.Set[string]
}

// NewContext creates a dump context around an index sink and an optional
// publisher (nil disables notifications).
func NewContext(index *Index, publisher *Publisher) *Context {
	return &Context{
		buildID:   uuid.NewString(),
		index:     index,
		publisher: publisher,
		emitted:   sets.New[string](),
	}
}

// BuildID identifies this pipeline run in index rows and events.
func (c *Context) BuildID() string { return c.buildID }

// Dump indexes one page unless its source file was already dumped in this
// run. Index write failures propagate; event publication is best-effort.
func (c *Context) Dump(ctx context.Context, page IndexedPage) error {
	c.mu.Lock()
	seen := c.emitted.Has(page.Path)
	if !seen {
		c.emitted.Add(page.Path)
	}
	c.mu.Unlock()
	if seen {
		return nil
	}

	page.BuildID = c.buildID
	if err := c.index.Put(ctx, page); err != nil {
		return errors.IndexWrite(page.Route, err)
	}
	c.publisher.Publish(PageIndexed{
		Route:   page.Route,
		Locale:  page.Locale,
		Title:   page.Title,
		BuildID: c.buildID,
	})
	return nil
}

// Reset clears the emitted set, forcing the next dump of every file to be
// indexed again. Used by the periodic full reindex.
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.emitted = sets.New[string]()
}
