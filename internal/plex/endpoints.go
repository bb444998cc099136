package plex

// Endpoint is a path in the Plex Media Server HTTP API.
type Endpoint string

const (
	EndpointServerInfo      Endpoint = "/"
	EndpointNowPlaying      Endpoint = "/status/sessions"
	EndpointLibrarySections Endpoint = "/library/sections"
	EndpointPreferences     Endpoint = "/:/prefs"
	EndpointServers         Endpoint = "/servers"
	EndpointOnDeck          Endpoint = "/library/onDeck"
	EndpointChannels        Endpoint = "/channels/all"
	EndpointRecentlyAdded   Endpoint = "/library/recentlyAdded"

	// EndpointMetadata is a prefix; callers append a metadata key.
	EndpointMetadata Endpoint = "/library/metadata/"
)

func (e Endpoint) String() string { return string(e) }
