package plex

import "context"

// RecentlyAdded is the recently-added listing. Directory children are season
// summaries resolved into Episodes; Video children are Movies.
type RecentlyAdded struct{ Container }

// Items dispatches every child in document order. An unrecognised tag fails
// the whole call with ErrLibraryUndefinedType.
func (r *RecentlyAdded) Items(ctx context.Context) ([]Video, error) {
	return r.Filter(ctx, KindAny)
}

// Filter is Items restricted to one kind. Children of other kinds are not
// built, so filtering on KindMovie issues no season lookups. Unknown tags
// still fail the call.
func (r *RecentlyAdded) Filter(ctx context.Context, kind VideoKind) ([]Video, error) {
	doc, err := r.Document(ctx)
	if err != nil {
		return nil, err
	}
	return dispatchVideos(ctx, r.client, doc, kind)
}

func dispatchVideos(ctx context.Context, client *Client, doc *Document, kind VideoKind) ([]Video, error) {
	for _, child := range doc.children {
		if _, ok := videoKindForTag(child.tag); !ok {
			return nil, wrap(ErrLibraryUndefinedType, "dispatch", "tag "+child.tag, nil)
		}
	}

	out := make([]Video, 0, len(doc.children))
	for _, child := range doc.children {
		childKind, _ := videoKindForTag(child.tag)
		if kind != KindAny && kind != childKind {
			continue
		}
		switch childKind {
		case KindMovie:
			out = append(out, NewMovie(child))
		case KindEpisode:
			episode, err := NewEpisode(ctx, client, child)
			if err != nil {
				return nil, err
			}
			out = append(out, episode)
		}
	}
	return out, nil
}

func videoKindForTag(tag string) (VideoKind, bool) {
	switch tag {
	case tagVideo:
		return KindMovie, true
	case tagDirectory:
		return KindEpisode, true
	default:
		return KindAny, false
	}
}
