package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAbotsup/hindi-mapper/internal/models"
)

const searchFixture = `
<div class="film_list-wrap">
  <div class="flw-item">
    <a href="/watch/attack-on-titan" class="film-poster-ahref item-qtip" data-id="112" title="Attack on Titan"></a>
  </div>
  <div class="flw-item">
    <a href="/watch/attack-on-titan-season-2" class="film-poster-ahref item-qtip" data-id="113" title="Attack on Titan Season 2"></a>
  </div>
</div>`

const searchSplitFixture = `
<div class="film_list-wrap">
  <div class="flw-item">
    <a href="/watch/one-piece" class="film-poster-ahref item-qtip" data-id="21"></a>
    <a href="/watch/one-piece" title="One Piece" class="dynamic-name">One Piece</a>
  </div>
  <div class="flw-item">
    <a href="/watch/one-piece-film" class="film-poster-ahref item-qtip" data-id="22"></a>
    <a href="/watch/one-piece-film" title="One Piece Film" class="dynamic-name">One Piece Film</a>
  </div>
</div>`

const searchIDsOnlyFixture = `
<div class="film_list-wrap">
  <a href="/watch/mystery" class="film-poster-ahref item-qtip" data-id="31"></a>
  <a href="/watch/mystery-2" class="film-poster-ahref item-qtip" data-id="32"></a>
  <a href="/watch/mystery" title="Mystery" class="dynamic-name">Mystery</a>
</div>`

const episodeFixture = `
<div class="ss-list">
  <a title="To You, in 2000 Years" class="ssl-item ep-item" data-number="1" data-id="1001" href="/watch/attack-on-titan?ep=1001">
  <a title="That Day" class="ssl-item ep-item" data-number="2" data-id="1002" href="/watch/attack-on-titan?ep=1002">
  <a title="A Dim Light Amid Despair" class="ssl-item ep-item active" data-number="3" data-id="1003" href="/watch/attack-on-titan?ep=1003">
</div>`

const serverFixture = `
<div class="server-list">
  <div class="server-item" data-type="sub" data-id="401" data-server-id="4">
    <a href="#" class="btn">HD-1</a>
  </div>
  <div class="server-item" data-type="sub" data-id="402" data-server-id="1">
    <a href="#" class="btn"> HD-2 </a>
  </div>
</div>`

const redirectFixture = `
<html><body>
<script>
  const playerConfig = {};
  const mastreUrl = 'https://cdn.buycodeonline.com/stream/abc/master.m3u8';
  initPlayer(mastreUrl);
</script>
</body></html>`

func TestParseSearchListing(t *testing.T) {
	t.Run("PrimaryPattern", func(t *testing.T) {
		listing := ParseSearchListing(searchFixture)

		require.Len(t, listing.Candidates, 2)
		assert.Empty(t, listing.FallbackID)
		assert.Equal(t, models.Candidate{ID: "112", Title: "Attack on Titan"}, listing.Candidates[0])
		assert.Equal(t, models.Candidate{ID: "113", Title: "Attack on Titan Season 2"}, listing.Candidates[1])
	})

	t.Run("PositionalPairing", func(t *testing.T) {
		listing := ParseSearchListing(searchSplitFixture)

		require.Len(t, listing.Candidates, 2)
		assert.Equal(t, models.Candidate{ID: "21", Title: "One Piece"}, listing.Candidates[0])
		assert.Equal(t, models.Candidate{ID: "22", Title: "One Piece Film"}, listing.Candidates[1])
	})

	t.Run("UnpairableCountsFallBackToFirstID", func(t *testing.T) {
		// Two IDs but one title: positional pairing would misattribute, so
		// only the first ID survives, with no candidate to rank.
		listing := ParseSearchListing(searchIDsOnlyFixture)

		assert.Empty(t, listing.Candidates)
		assert.Equal(t, "31", listing.FallbackID)
	})

	t.Run("NoMatchesIsEmpty", func(t *testing.T) {
		listing := ParseSearchListing("<html><body>No results found.</body></html>")

		assert.Empty(t, listing.Candidates)
		assert.Empty(t, listing.FallbackID)
	})
}

func TestParseEpisodeList(t *testing.T) {
	episodes := ParseEpisodeList(episodeFixture)

	require.Len(t, episodes, 3)
	assert.Equal(t, models.Episode{
		Title:   "To You, in 2000 Years",
		Number:  "1",
		ID:      "1001",
		PageURL: "/watch/attack-on-titan?ep=1001",
	}, episodes[0])

	// Document order is preserved.
	assert.Equal(t, "2", episodes[1].Number)
	assert.Equal(t, "3", episodes[2].Number)

	assert.Empty(t, ParseEpisodeList("<div></div>"))
}

func TestParseServerList(t *testing.T) {
	servers := ParseServerList(serverFixture)

	require.Len(t, servers, 2)
	assert.Equal(t, models.Server{ID: "401", ServerID: "4", Name: "HD-1"}, servers[0])
	// Surrounding whitespace is trimmed from names.
	assert.Equal(t, models.Server{ID: "402", ServerID: "1", Name: "HD-2"}, servers[1])

	assert.Empty(t, ParseServerList("<html></html>"))
}

func TestParsePlaylistURL(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		url, ok := ParsePlaylistURL(redirectFixture)
		require.True(t, ok)
		assert.Equal(t, "https://cdn.buycodeonline.com/stream/abc/master.m3u8", url)
	})

	t.Run("DoubleQuotes", func(t *testing.T) {
		url, ok := ParsePlaylistURL(`const mastreUrl = "https://example.com/x.m3u8";`)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/x.m3u8", url)
	})

	t.Run("AbsentPattern", func(t *testing.T) {
		_, ok := ParsePlaylistURL(`<script>const otherUrl = 'https://example.com/video.mp4';</script>`)
		assert.False(t, ok)
	})

	t.Run("WrongExtension", func(t *testing.T) {
		_, ok := ParsePlaylistURL(`const mastreUrl = 'https://example.com/video.mp4';`)
		assert.False(t, ok)
	})
}
