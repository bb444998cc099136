package plex

import "fmt"

// Media lists the encodings attached to one video node.
type Media struct {
	node *Document
}

// Items builds a File for every Media child in document order. A video with
// no Media children yields an empty slice. A Media node without a Part child
// is malformed and fails with ErrMissingPart.
func (m *Media) Items() ([]*File, error) {
	nodes := m.node.ChildrenByTag(tagMedia)
	out := make([]*File, 0, len(nodes))
	for i, node := range nodes {
		file, err := NewFile(node)
		if err != nil {
			return nil, fmt.Errorf("media entry %d: %w", i, err)
		}
		out = append(out, file)
	}
	return out, nil
}

// Len reports the number of Media children.
func (m *Media) Len() int {
	return len(m.node.ChildrenByTag(tagMedia))
}

// File mirrors one Media node and owns its Part.
type File struct {
	*Entity
	part *Part
}

// NewFile materializes a Media node and its first Part child.
func NewFile(node *Document) (*File, error) {
	partNode, ok := node.Child(tagPart)
	if !ok {
		return nil, wrap(ErrMissingPart, "media", "no Part child", nil)
	}
	return &File{
		Entity: Materialize("File", node),
		part:   &Part{Entity: Materialize("Part", partNode)},
	}, nil
}

func (f *File) Part() *Part             { return f.part }
func (f *File) VideoCodec() string      { return f.String("videoCodec") }
func (f *File) AudioCodec() string      { return f.String("audioCodec") }
func (f *File) VideoResolution() string { return f.String("videoResolution") }
func (f *File) Container() string       { return f.String("container") }

// Bitrate is in kbps as reported by the server.
func (f *File) Bitrate() (int64, bool) { return f.Int("bitrate") }

// Duration is in milliseconds.
func (f *File) Duration() (int64, bool) { return f.Int("duration") }

// Part is the on-disk file backing a Media entry.
type Part struct{ *Entity }

// Path returns the server-side file path.
func (p *Part) Path() string { return p.String("file") }

// Size is in bytes.
func (p *Part) Size() (int64, bool) { return p.Int("size") }

// Duration is in milliseconds.
func (p *Part) Duration() (int64, bool) { return p.Int("duration") }
