package plex

import "context"

// Container binds one catalog endpoint. Nothing is cached: every call
// re-fetches the endpoint.
type Container struct {
	client    *Client
	endpoint  Endpoint
	entryKind string
}

func newContainer(client *Client, endpoint Endpoint, entryKind string) Container {
	return Container{client: client, endpoint: endpoint, entryKind: entryKind}
}

// Endpoint returns the bound catalog path.
func (c Container) Endpoint() Endpoint { return c.endpoint }

// Query fetches the raw response bytes.
func (c Container) Query(ctx context.Context) ([]byte, error) {
	return c.client.Query(ctx, c.endpoint, "")
}

// Document fetches and parses the endpoint.
func (c Container) Document(ctx context.Context) (*Document, error) {
	return c.client.Fetch(ctx, c.endpoint, "")
}

// JSON fetches the endpoint and renders it as JSON.
func (c Container) JSON(ctx context.Context) ([]byte, error) {
	return c.Render(ctx, FormatJSON)
}

// XML fetches the endpoint and re-encodes it.
func (c Container) XML(ctx context.Context) ([]byte, error) {
	return c.Render(ctx, FormatXML)
}

// Render fetches the endpoint and renders it in format.
func (c Container) Render(ctx context.Context, format Format) ([]byte, error) {
	doc, err := c.Document(ctx)
	if err != nil {
		return nil, err
	}
	return Render(doc, format)
}

// Entries materializes every direct child of a fresh fetch.
func (c Container) Entries(ctx context.Context) ([]*Entity, error) {
	doc, err := c.Document(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Entity, 0, len(doc.children))
	for _, child := range doc.children {
		out = append(out, Materialize(c.entryKind, child))
	}
	return out, nil
}

// Preferences is the server settings listing.
type Preferences struct{ Container }

// Servers is the local server list.
type Servers struct{ Container }

// NowPlaying is the active session listing.
type NowPlaying struct{ Container }

// OnDeck is the continue-watching listing.
type OnDeck struct{ Container }

// Channels is the installed channel listing.
type Channels struct{ Container }

// Items materializes each Directory child as a Channel.
func (c *Channels) Items(ctx context.Context) ([]*Channel, error) {
	doc, err := c.Document(ctx)
	if err != nil {
		return nil, err
	}
	nodes := doc.ChildrenByTag(tagDirectory)
	out := make([]*Channel, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, &Channel{Entity: Materialize("Channel", node)})
	}
	return out, nil
}

// Sections is the library section listing.
type Sections struct{ Container }

// Items materializes each Directory child as a Section.
func (s *Sections) Items(ctx context.Context) ([]*Section, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}
	nodes := doc.ChildrenByTag(tagDirectory)
	out := make([]*Section, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, &Section{Entity: Materialize("Section", node)})
	}
	return out, nil
}

// Section is one library section record.
type Section struct{ *Entity }

func (s *Section) Key() string   { return s.String("key") }
func (s *Section) Title() string { return s.String("title") }
func (s *Section) Type() string  { return s.String("type") }

// Channel is one installed channel record.
type Channel struct{ *Entity }

func (c *Channel) Key() string   { return c.String("key") }
func (c *Channel) Title() string { return c.String("title") }
